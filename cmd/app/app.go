package app

import (
	"log"

	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/database"
	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/service"
	"github.com/Dwieght/deer-sub000/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
