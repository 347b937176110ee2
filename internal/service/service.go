package service

import (
	"github.com/Dwieght/deer-sub000/internal/config"
	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/storage"
)

type Service struct {
	Auth       AuthService
	Submission SubmissionService
	Shop       ShopService
	Content    ContentService
	Moderation ModerationService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:       NewAuthService(repo.Admin, cfg),
		Submission: NewSubmissionService(repo, cfg, storage),
		Shop:       NewShopService(repo.Order, repo.Product, repo.Payment),
		Content:    NewContentService(repo, cfg, storage),
		Moderation: NewModerationService(repo.Moderation),
	}
}
