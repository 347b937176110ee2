package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dwieght/deer-sub000/internal/repository"
)

// ErrUnknownKind is returned for a kind segment outside the moderation
// allow-set; handlers map it to 400.
var ErrUnknownKind = errors.New("unknown submission kind")

// moderationKinds maps the URL segment used by the admin routes to the
// table-level kind. Anything outside this map is rejected before any
// store access.
var moderationKinds = map[string]repository.Kind{
	"letters":          repository.KindLetters,
	"gallery":          repository.KindGalleryItems,
	"contact-messages": repository.KindContactMessages,
	"join-requests":    repository.KindJoinRequests,
	"feedback":         repository.KindProductFeedback,
}

type ModerationService interface {
	Approve(ctx context.Context, kind, id string) error
	Decline(ctx context.Context, kind, id string) error
}

type moderationService struct {
	moderationRepo repository.ModerationRepository
}

func NewModerationService(moderationRepo repository.ModerationRepository) ModerationService {
	return &moderationService{moderationRepo: moderationRepo}
}

func (s *moderationService) resolve(kind string) (repository.Kind, error) {
	k, ok := moderationKinds[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return k, nil
}

func (s *moderationService) Approve(ctx context.Context, kind, id string) error {
	k, err := s.resolve(kind)
	if err != nil {
		return err
	}
	return s.moderationRepo.Approve(ctx, k, id)
}

func (s *moderationService) Decline(ctx context.Context, kind, id string) error {
	k, err := s.resolve(kind)
	if err != nil {
		return err
	}
	return s.moderationRepo.Decline(ctx, k, id)
}
