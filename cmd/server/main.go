package main

import (
	"context"
	"log"
	"net/http"

	"eventboard/config"
	"eventboard/internal/handler"
	"eventboard/internal/middleware"
	"eventboard/internal/service"
	"eventboard/internal/storage"
	"eventboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	defer logger.L.Sync()

	store, err := buildStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	eventService := service.NewEventService(store)
	eventHandler := handler.NewEventHandler(eventService)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	eventHandler.RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func buildStorage(cfg *config.Config) (storage.EventStorage, error) {
	ctx := context.Background()

	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		store := storage.NewFileStorage(cfg.Storage.FilePath)
		if cfg.Storage.Seed {
			events, err := store.Load(ctx)
			if err != nil {
				return nil, err
			}
			if len(events) == 0 {
				if err := store.Save(ctx, storage.SeedEvents()); err != nil {
					return nil, err
				}
			}
		}
		return store, nil
	default:
		if cfg.Storage.Seed {
			return storage.NewMemoryStorage(storage.SeedEvents()), nil
		}
		return storage.NewMemoryStorage(nil), nil
	}
}
