package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"menuboard/config"
	httpapi "menuboard/internal/api/http"
	"menuboard/internal/identity"
	"menuboard/internal/service"
	"menuboard/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	cache := storage.NewRedisStore(rdb, 5*time.Minute)

	writer := config.NewKafkaWriter("menu-views")
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	reader := config.NewKafkaReader("menu-views", "menuboard-analytics")
	defer reader.Close()
	consumer := service.NewViewConsumer(reader, cache)
	go consumer.Start(context.Background())

	profileSvc := service.NewProfileService(repo)
	menuSvc := service.NewMenuService(repo)
	qrSvc := service.NewQRService(repo, service.DataURIGenerator{Size: 256})
	pageSvc := service.NewMenuPageService(repo, repo, cache, publisher)
	analyticsSvc := service.NewAnalyticsService(repo, cache)

	verifier := &identity.RemoteVerifier{
		VerifyURL: config.IdentityVerifyURL(),
		Client:    http.DefaultClient,
	}

	handler := httpapi.NewHandler(profileSvc, menuSvc, pageSvc, qrSvc, analyticsSvc, config.PublicBaseURL())
	router := httpapi.NewRouter(handler, verifier)

	httpapi.StartServer(":"+config.Port(), router)
}
