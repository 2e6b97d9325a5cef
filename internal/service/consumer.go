package service

import (
	"context"
	"encoding/json"
	"log"

	"menuboard/internal/domain"

	"github.com/segmentio/kafka-go"
)

// ViewConsumer drains menu-view events and folds them into the view
// counters. It runs for the lifetime of the process.
type ViewConsumer struct {
	Reader *kafka.Reader
	Views  ViewStore
}

func NewViewConsumer(reader *kafka.Reader, views ViewStore) *ViewConsumer {
	return &ViewConsumer{
		Reader: reader,
		Views:  views,
	}
}

func (c *ViewConsumer) Start(ctx context.Context) {
	log.Println("Starting menu view consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.ViewEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessView(ctx, event)
	}
}

func (c *ViewConsumer) ProcessView(ctx context.Context, event domain.ViewEvent) {
	if event.Type != "menu_view" || event.RestaurantID == "" {
		return
	}

	day := event.Timestamp.Format("2006-01-02")
	if err := c.Views.IncrementView(ctx, event.RestaurantID, day); err != nil {
		log.Printf("Error recording view for restaurant %s: %v", event.RestaurantID, err)
		return
	}
}
