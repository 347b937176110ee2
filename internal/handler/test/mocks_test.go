package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.AdminUser, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.AdminUser), args.String(1), args.Error(2)
}

func (m *MockAuthService) UpsertAdmin(ctx context.Context, email, password string) (*models.AdminUser, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitLetter(ctx context.Context, req service.SubmitLetterRequest) (*models.Letter, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Letter), args.Error(1)
}

func (m *MockSubmissionService) SubmitGalleryItem(ctx context.Context, req service.SubmitGalleryRequest) (*models.GalleryItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockSubmissionService) SubmitContact(ctx context.Context, req service.SubmitContactRequest) (*models.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockSubmissionService) SubmitJoin(ctx context.Context, req service.SubmitJoinRequest) (*models.JoinRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JoinRequest), args.Error(1)
}

func (m *MockSubmissionService) SubmitFeedback(ctx context.Context, req service.SubmitFeedbackRequest) (*models.ProductFeedback, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductFeedback), args.Error(1)
}

func (m *MockSubmissionService) SubmitPayment(ctx context.Context, req service.SubmitPaymentRequest) (*models.PaymentSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentSubmission), args.Error(1)
}

type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) Checkout(ctx context.Context, req service.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockShopService) LookupOrder(ctx context.Context, ref string) (*models.PublicOrder, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicOrder), args.Error(1)
}

func (m *MockShopService) UpdateOrder(ctx context.Context, req service.UpdateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockShopService) UpdatePaymentSubmission(ctx context.Context, req service.UpdatePaymentSubmissionRequest) (*models.PaymentSubmission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentSubmission), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) CreateLetter(ctx context.Context, req service.AdminLetterRequest) (*models.Letter, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Letter), args.Error(1)
}

func (m *MockContentService) UpdateLetter(ctx context.Context, req service.AdminLetterRequest) (*models.Letter, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Letter), args.Error(1)
}

func (m *MockContentService) CreateGalleryItem(ctx context.Context, req service.AdminGalleryRequest) (*models.GalleryItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockContentService) UpdateGalleryItem(ctx context.Context, req service.AdminGalleryRequest) (*models.GalleryItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockContentService) DeleteGalleryItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockContentService) CreateVideoItem(ctx context.Context, req service.VideoItemRequest) (*models.VideoItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VideoItem), args.Error(1)
}

func (m *MockContentService) UpdateVideoItem(ctx context.Context, req service.VideoItemRequest) (*models.VideoItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VideoItem), args.Error(1)
}

type MockModerationService struct {
	mock.Mock
}

func (m *MockModerationService) Approve(ctx context.Context, kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockModerationService) Decline(ctx context.Context, kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

var _ service.AuthService = (*MockAuthService)(nil)
var _ service.SubmissionService = (*MockSubmissionService)(nil)
var _ service.ShopService = (*MockShopService)(nil)
var _ service.ContentService = (*MockContentService)(nil)
var _ service.ModerationService = (*MockModerationService)(nil)
