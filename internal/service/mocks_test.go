package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
	"github.com/Dwieght/deer-sub000/internal/storage"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) FindPublicByRef(ctx context.Context, ref string) (*models.PublicOrder, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicOrder), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *models.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *models.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *models.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreateQRCode(ctx context.Context, qr *models.PaymentQRCode) error {
	args := m.Called(ctx, qr)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetQRCodeByID(ctx context.Context, qrCodeID string) (*models.PaymentQRCode, error) {
	args := m.Called(ctx, qrCodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentQRCode), args.Error(1)
}

func (m *MockPaymentRepository) ListQRCodes(ctx context.Context) ([]models.PaymentQRCode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PaymentQRCode), args.Error(1)
}

func (m *MockPaymentRepository) UpdateQRCode(ctx context.Context, qr *models.PaymentQRCode) error {
	args := m.Called(ctx, qr)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeleteQRCode(ctx context.Context, qrCodeID string) error {
	args := m.Called(ctx, qrCodeID)
	return args.Error(0)
}

func (m *MockPaymentRepository) CreateSubmission(ctx context.Context, sub *models.PaymentSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetSubmissionByID(ctx context.Context, submissionID string) (*models.PaymentSubmission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentSubmission), args.Error(1)
}

func (m *MockPaymentRepository) ListSubmissions(ctx context.Context) ([]models.PaymentSubmission, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PaymentSubmission), args.Error(1)
}

func (m *MockPaymentRepository) UpdateSubmission(ctx context.Context, sub *models.PaymentSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	args := m.Called(ctx, submissionID)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) Upsert(ctx context.Context, email, passwordHash string) (*models.AdminUser, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockGalleryRepository) GetByID(ctx context.Context, itemID string) (*models.GalleryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) ListApproved(ctx context.Context, category string) ([]models.GalleryItem, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) ListPending(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) Update(ctx context.Context, item *models.GalleryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) Approve(ctx context.Context, kind repository.Kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockModerationRepository) Decline(ctx context.Context, kind repository.Kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, folder, contentType string, data io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, folder, contentType, data, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)
var _ repository.ProductRepository = (*MockProductRepository)(nil)
var _ repository.PaymentRepository = (*MockPaymentRepository)(nil)
var _ repository.AdminRepository = (*MockAdminRepository)(nil)
var _ repository.GalleryRepository = (*MockGalleryRepository)(nil)
var _ repository.ModerationRepository = (*MockModerationRepository)(nil)
var _ storage.Storage = (*MockStorage)(nil)
