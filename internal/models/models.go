package models

import (
	"time"

	"github.com/lib/pq"
)

// Moderation statuses shared by all submission kinds.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
)

// Order statuses.
const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

var OrderStatuses = []string{OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled}

// Gallery categories.
const (
	CategoryPhotos = "PHOTOS"
	CategoryVideos = "VIDEOS"
	CategoryArt    = "ART"
)

var GalleryCategories = []string{CategoryPhotos, CategoryVideos, CategoryArt}

type AdminUser struct {
	AdminID      string    `json:"adminId" db:"admin_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Letter struct {
	LetterID       string     `json:"letterId" db:"letter_id"`
	Name           string     `json:"name" db:"name"`
	EnglishMessage string     `json:"englishMessage" db:"english_message"`
	ArabicMessage  string     `json:"arabicMessage" db:"arabic_message"`
	TiktokLink     string     `json:"tiktokLink" db:"tiktok_link"`
	Status         string     `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	ReviewedAt     *time.Time `json:"reviewedAt" db:"reviewed_at"`
}

type GalleryItem struct {
	ItemID     string     `json:"itemId" db:"item_id"`
	Name       string     `json:"name" db:"name"`
	Caption    string     `json:"caption" db:"caption"`
	Category   string     `json:"category" db:"category"`
	ImageURL   string     `json:"imageUrl" db:"image_url"`
	VideoURL   string     `json:"videoUrl" db:"video_url"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	ReviewedAt *time.Time `json:"reviewedAt" db:"reviewed_at"`
}

type Announcement struct {
	AnnouncementID string    `json:"announcementId" db:"announcement_id"`
	Title          string    `json:"title" db:"title"`
	Body           string    `json:"body" db:"body"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type ContactMessage struct {
	MessageID  string     `json:"messageId" db:"message_id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Type       string     `json:"type" db:"type"`
	Message    string     `json:"message" db:"message"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	ReviewedAt *time.Time `json:"reviewedAt" db:"reviewed_at"`
}

type JoinRequest struct {
	RequestID  string     `json:"requestId" db:"request_id"`
	Name       string     `json:"name" db:"name"`
	Email      string     `json:"email" db:"email"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	ReviewedAt *time.Time `json:"reviewedAt" db:"reviewed_at"`
}

type ProductFeedback struct {
	FeedbackID string     `json:"feedbackId" db:"feedback_id"`
	ProductID  string     `json:"productId" db:"product_id"`
	FullName   string     `json:"fullName" db:"full_name"`
	Message    string     `json:"message" db:"message"`
	Rating     int        `json:"rating" db:"rating"`
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	ReviewedAt *time.Time `json:"reviewedAt" db:"reviewed_at"`
}

type Product struct {
	ProductID   string         `json:"productId" db:"product_id"`
	Name        string         `json:"name" db:"name"`
	Category    string         `json:"category" db:"category"`
	Price       float64        `json:"price" db:"price"`
	ImageURL    string         `json:"imageUrl" db:"image_url"`
	ImageURLs   pq.StringArray `json:"imageUrls" db:"image_urls"`
	Sizes       pq.StringArray `json:"sizes" db:"sizes"`
	Description string         `json:"description" db:"description"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type Order struct {
	OrderID        string    `json:"orderId" db:"order_id"`
	Name           string    `json:"name" db:"name"`
	Phone          string    `json:"phone" db:"phone"`
	ProductID      string    `json:"productId" db:"product_id"`
	Quantity       int       `json:"quantity" db:"quantity"`
	Total          float64   `json:"total" db:"total"`
	Region         string    `json:"region" db:"region"`
	Province       string    `json:"province" db:"province"`
	City           string    `json:"city" db:"city"`
	Barangay       string    `json:"barangay" db:"barangay"`
	PostalCode     string    `json:"postalCode" db:"postal_code"`
	Street         string    `json:"street" db:"street"`
	HouseNumber    string    `json:"houseNumber" db:"house_number"`
	AddressLabel   string    `json:"addressLabel" db:"address_label"`
	GcashReference string    `json:"gcashReference" db:"gcash_reference"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// PublicOrder is the reduced view returned to anonymous order lookups.
type PublicOrder struct {
	OrderID   string    `json:"orderId" db:"order_id"`
	Name      string    `json:"name" db:"name"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Total     float64   `json:"total" db:"total"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type PaymentQRCode struct {
	QRCodeID  string    `json:"qrCodeId" db:"qr_code_id"`
	Label     string    `json:"label" db:"label"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type PaymentSubmission struct {
	SubmissionID    string     `json:"submissionId" db:"submission_id"`
	SenderName      string     `json:"senderName" db:"sender_name"`
	ReferenceNumber string     `json:"referenceNumber" db:"reference_number"`
	Amount          *float64   `json:"amount" db:"amount"`
	QRCodeID        *string    `json:"qrCodeId" db:"qr_code_id"`
	Matched         bool       `json:"matched" db:"matched"`
	MatchedAt       *time.Time `json:"matchedAt" db:"matched_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

type VideoCollection struct {
	CollectionID string      `json:"collectionId" db:"collection_id"`
	Title        string      `json:"title" db:"title"`
	Description  string      `json:"description" db:"description"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	Videos       []VideoItem `json:"videos" db:"-"`
}

type VideoItem struct {
	VideoID      string    `json:"videoId" db:"video_id"`
	CollectionID string    `json:"collectionId" db:"collection_id"`
	Title        string    `json:"title" db:"title"`
	VideoURL     string    `json:"videoUrl" db:"video_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
