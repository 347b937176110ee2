package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Dwieght/deer-sub000/internal/models"
)

// ErrNotFound is returned when a row the caller named does not exist.
// Handlers map it to 404; store detail never reaches the client.
var ErrNotFound = errors.New("not found")

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Upsert(ctx context.Context, email, passwordHash string) (*models.AdminUser, error)
}

type LetterRepository interface {
	Create(ctx context.Context, letter *models.Letter) error
	GetByID(ctx context.Context, letterID string) (*models.Letter, error)
	ListApproved(ctx context.Context) ([]models.Letter, error)
	ListPending(ctx context.Context) ([]models.Letter, error)
	Update(ctx context.Context, letter *models.Letter) error
	Delete(ctx context.Context, letterID string) error
}

type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, itemID string) (*models.GalleryItem, error)
	ListApproved(ctx context.Context, category string) ([]models.GalleryItem, error)
	ListPending(ctx context.Context) ([]models.GalleryItem, error)
	Update(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, itemID string) error
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	List(ctx context.Context) ([]models.Announcement, error)
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, announcementID string) error
}

type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	ListPending(ctx context.Context) ([]models.ContactMessage, error)
}

type JoinRepository interface {
	Create(ctx context.Context, req *models.JoinRequest) error
	ListPending(ctx context.Context) ([]models.JoinRequest, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.ProductFeedback) error
	ListApprovedByProduct(ctx context.Context, productID string) ([]models.ProductFeedback, error)
	ListPending(ctx context.Context) ([]models.ProductFeedback, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, productID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	FindPublicByRef(ctx context.Context, ref string) (*models.PublicOrder, error)
	List(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, orderID string) error
}

type PaymentRepository interface {
	CreateQRCode(ctx context.Context, qr *models.PaymentQRCode) error
	GetQRCodeByID(ctx context.Context, qrCodeID string) (*models.PaymentQRCode, error)
	ListQRCodes(ctx context.Context) ([]models.PaymentQRCode, error)
	UpdateQRCode(ctx context.Context, qr *models.PaymentQRCode) error
	DeleteQRCode(ctx context.Context, qrCodeID string) error
	CreateSubmission(ctx context.Context, sub *models.PaymentSubmission) error
	GetSubmissionByID(ctx context.Context, submissionID string) (*models.PaymentSubmission, error)
	ListSubmissions(ctx context.Context) ([]models.PaymentSubmission, error)
	UpdateSubmission(ctx context.Context, sub *models.PaymentSubmission) error
	DeleteSubmission(ctx context.Context, submissionID string) error
}

type VideoRepository interface {
	CreateCollection(ctx context.Context, c *models.VideoCollection) error
	ListCollections(ctx context.Context) ([]models.VideoCollection, error)
	UpdateCollection(ctx context.Context, c *models.VideoCollection) error
	DeleteCollection(ctx context.Context, collectionID string) error
	CreateItem(ctx context.Context, v *models.VideoItem) error
	UpdateItem(ctx context.Context, v *models.VideoItem) error
	DeleteItem(ctx context.Context, videoID string) error
}

type ModerationRepository interface {
	Approve(ctx context.Context, kind Kind, id string) error
	Decline(ctx context.Context, kind Kind, id string) error
}

type StatsRepository interface {
	CountRows(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	Admin        AdminRepository
	Letter       LetterRepository
	Gallery      GalleryRepository
	Announcement AnnouncementRepository
	Contact      ContactRepository
	Join         JoinRepository
	Feedback     FeedbackRepository
	Product      ProductRepository
	Order        OrderRepository
	Payment      PaymentRepository
	Video        VideoRepository
	Moderation   ModerationRepository
	Stats        StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admin:        NewAdminRepository(db),
		Letter:       NewLetterRepository(db),
		Gallery:      NewGalleryRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Contact:      NewContactRepository(db),
		Join:         NewJoinRepository(db),
		Feedback:     NewFeedbackRepository(db),
		Product:      NewProductRepository(db),
		Order:        NewOrderRepository(db),
		Payment:      NewPaymentRepository(db),
		Video:        NewVideoRepository(db),
		Moderation:   NewModerationRepository(db),
		Stats:        NewStatsRepository(db),
	}
}
