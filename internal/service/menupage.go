package service

import (
	"context"
	"log"
	"time"

	"menuboard/internal/domain"
)

// MenuPageService assembles the public, read-only menu view: one profile
// fetch plus one scoped item list per request, no retries. Cache and
// publisher are optional collaborators; their failures degrade silently.
type MenuPageService struct {
	profiles  ProfileRepository
	items     MenuItemRepository
	cache     PageCache
	publisher ViewPublisher
}

func NewMenuPageService(profiles ProfileRepository, items MenuItemRepository, cache PageCache, publisher ViewPublisher) *MenuPageService {
	return &MenuPageService{
		profiles:  profiles,
		items:     items,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *MenuPageService) Assemble(ctx context.Context, restaurantID string) (*domain.MenuPage, error) {
	if s.cache != nil {
		if page, err := s.cache.GetPage(ctx, restaurantID); err == nil && page != nil {
			s.recordView(ctx, restaurantID)
			return page, nil
		}
	}

	profile, err := s.profiles.GetProfile(restaurantID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	page := &domain.MenuPage{
		Restaurant: *profile,
		Items:      items,
		Categories: DeriveCategories(items),
	}

	if s.cache != nil {
		if err := s.cache.SetPage(ctx, restaurantID, page); err != nil {
			log.Printf("Warning: failed to cache menu page for %s: %v", restaurantID, err)
		}
	}

	s.recordView(ctx, restaurantID)
	return page, nil
}

func (s *MenuPageService) recordView(ctx context.Context, restaurantID string) {
	if s.publisher == nil {
		return
	}
	event := domain.ViewEvent{
		Type:         "menu_view",
		RestaurantID: restaurantID,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.PublishView(ctx, event); err != nil {
		log.Printf("Warning: failed to publish view event for %s: %v", restaurantID, err)
	}
}

var _ MenuPageServiceInterface = (*MenuPageService)(nil)
