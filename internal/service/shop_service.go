package service

import (
	"context"
	"time"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
)

type CheckoutRequest struct {
	Name           string
	Phone          string
	ProductID      string
	Quantity       int
	Region         string
	Province       string
	City           string
	Barangay       string
	PostalCode     string
	Street         string
	HouseNumber    string
	AddressLabel   string
	GcashReference string
}

type UpdateOrderRequest struct {
	OrderID        string
	Name           string
	Phone          string
	Quantity       int
	Status         string
	Region         string
	Province       string
	City           string
	Barangay       string
	PostalCode     string
	Street         string
	HouseNumber    string
	AddressLabel   string
	GcashReference string
}

type UpdatePaymentSubmissionRequest struct {
	SubmissionID    string
	SenderName      string
	ReferenceNumber string
	Amount          *float64
	Matched         bool
}

type ShopService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error)
	LookupOrder(ctx context.Context, ref string) (*models.PublicOrder, error)
	UpdateOrder(ctx context.Context, req UpdateOrderRequest) (*models.Order, error)
	UpdatePaymentSubmission(ctx context.Context, req UpdatePaymentSubmissionRequest) (*models.PaymentSubmission, error)
}

type shopService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	paymentRepo repository.PaymentRepository
}

func NewShopService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, paymentRepo repository.PaymentRepository) ShopService {
	return &shopService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
	}
}

// Checkout creates an order. The total always comes from the authoritative
// product price, never from the client.
func (s *shopService) Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Name:           req.Name,
		Phone:          req.Phone,
		ProductID:      product.ProductID,
		Quantity:       req.Quantity,
		Total:          product.Price * float64(req.Quantity),
		Region:         req.Region,
		Province:       req.Province,
		City:           req.City,
		Barangay:       req.Barangay,
		PostalCode:     req.PostalCode,
		Street:         req.Street,
		HouseNumber:    req.HouseNumber,
		AddressLabel:   req.AddressLabel,
		GcashReference: req.GcashReference,
		Status:         models.OrderPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *shopService) LookupOrder(ctx context.Context, ref string) (*models.PublicOrder, error) {
	return s.orderRepo.FindPublicByRef(ctx, ref)
}

// UpdateOrder applies admin edits. A quantity change recomputes the total
// from the product's price at edit time, not the price at order time.
func (s *shopService) UpdateOrder(ctx context.Context, req UpdateOrderRequest) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != order.Quantity {
		product, err := s.productRepo.GetByID(ctx, order.ProductID)
		if err != nil {
			return nil, err
		}
		order.Quantity = req.Quantity
		order.Total = product.Price * float64(req.Quantity)
	}

	order.Name = req.Name
	order.Phone = req.Phone
	order.Status = req.Status
	order.Region = req.Region
	order.Province = req.Province
	order.City = req.City
	order.Barangay = req.Barangay
	order.PostalCode = req.PostalCode
	order.Street = req.Street
	order.HouseNumber = req.HouseNumber
	order.AddressLabel = req.AddressLabel
	order.GcashReference = req.GcashReference

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// UpdatePaymentSubmission toggles matching; matched_at follows the flag.
func (s *shopService) UpdatePaymentSubmission(ctx context.Context, req UpdatePaymentSubmissionRequest) (*models.PaymentSubmission, error) {
	sub, err := s.paymentRepo.GetSubmissionByID(ctx, req.SubmissionID)
	if err != nil {
		return nil, err
	}

	sub.SenderName = req.SenderName
	sub.ReferenceNumber = req.ReferenceNumber
	sub.Amount = req.Amount

	if req.Matched && !sub.Matched {
		now := time.Now()
		sub.MatchedAt = &now
	}
	if !req.Matched {
		sub.MatchedAt = nil
	}
	sub.Matched = req.Matched

	if err := s.paymentRepo.UpdateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}
