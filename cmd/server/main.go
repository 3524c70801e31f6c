package main

import (
	"log"

	"github.com/omerga/whereabouts-backend-go/internal/api"
	"github.com/omerga/whereabouts-backend-go/internal/config"
	"github.com/omerga/whereabouts-backend-go/internal/database"
	"github.com/omerga/whereabouts-backend-go/internal/handler"
	"github.com/omerga/whereabouts-backend-go/internal/nlquery"
	"github.com/omerga/whereabouts-backend-go/internal/render"
	"github.com/omerga/whereabouts-backend-go/internal/repository"
	"github.com/omerga/whereabouts-backend-go/internal/service"
	"github.com/omerga/whereabouts-backend-go/internal/session"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	queryClient := nlquery.NewClient(cfg.QueryServiceURL, cfg.QueryTimeout)

	sampleRepo := repository.NewSampleRepository(db)
	sampleService := service.NewSampleService(sampleRepo)
	directoryService := service.NewDirectoryService(sampleRepo, queryClient)
	queryService := service.NewQueryService(queryClient, session.New(), render.Options{
		ClusterThresholdMeters: cfg.ClusterThresholdMeters,
	})

	router := api.SetupRouter(cfg, api.Handlers{
		Query:  handler.NewQueryHandler(queryService),
		Person: handler.NewPersonHandler(directoryService),
		Sample: handler.NewSampleHandler(sampleService),
		Auth:   handler.NewAuthHandler(cfg),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
