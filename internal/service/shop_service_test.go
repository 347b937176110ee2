package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dwieght/deer-sub000/internal/models"
	"github.com/Dwieght/deer-sub000/internal/repository"
)

func TestShopService_Checkout(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New().String()

	t.Run("total comes from the product price", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewShopService(orderRepo, productRepo, new(MockPaymentRepository))

		productRepo.On("GetByID", ctx, productID).
			Return(&models.Product{ProductID: productID, Price: 250}, nil)
		orderRepo.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil)

		order, err := svc.Checkout(ctx, CheckoutRequest{
			Name:      "Juan",
			Phone:     "+639171234567",
			ProductID: productID,
			Quantity:  3,
		})

		require.NoError(t, err)
		assert.Equal(t, 750.0, order.Total)
		assert.Equal(t, models.OrderPending, order.Status)
		orderRepo.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewShopService(orderRepo, productRepo, new(MockPaymentRepository))

		productRepo.On("GetByID", ctx, productID).Return(nil, repository.ErrNotFound)

		order, err := svc.Checkout(ctx, CheckoutRequest{ProductID: productID, Quantity: 1})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, order)
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestShopService_UpdateOrder(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New().String()
	productID := uuid.New().String()

	existing := func() *models.Order {
		return &models.Order{
			OrderID:   orderID,
			Name:      "Juan",
			ProductID: productID,
			Quantity:  2,
			Total:     500, // 2 x 250 at order time
			Status:    models.OrderPending,
		}
	}

	t.Run("quantity change recomputes total at the current price", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewShopService(orderRepo, productRepo, new(MockPaymentRepository))

		orderRepo.On("GetByID", ctx, orderID).Return(existing(), nil)
		// the price has gone up since the order was placed
		productRepo.On("GetByID", ctx, productID).
			Return(&models.Product{ProductID: productID, Price: 300}, nil)
		orderRepo.On("Update", ctx, mock.AnythingOfType("*models.Order")).Return(nil)

		order, err := svc.UpdateOrder(ctx, UpdateOrderRequest{
			OrderID:  orderID,
			Name:     "Juan",
			Quantity: 4,
			Status:   models.OrderPending,
		})

		require.NoError(t, err)
		assert.Equal(t, 4, order.Quantity)
		assert.Equal(t, 1200.0, order.Total)
	})

	t.Run("unchanged quantity keeps the original total", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		productRepo := new(MockProductRepository)
		svc := NewShopService(orderRepo, productRepo, new(MockPaymentRepository))

		orderRepo.On("GetByID", ctx, orderID).Return(existing(), nil)
		orderRepo.On("Update", ctx, mock.AnythingOfType("*models.Order")).Return(nil)

		order, err := svc.UpdateOrder(ctx, UpdateOrderRequest{
			OrderID:  orderID,
			Name:     "Juan D.",
			Quantity: 2,
			Status:   "SHIPPED",
		})

		require.NoError(t, err)
		assert.Equal(t, 500.0, order.Total)
		assert.Equal(t, "SHIPPED", order.Status)
		// no price lookup happened
		productRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		svc := NewShopService(orderRepo, new(MockProductRepository), new(MockPaymentRepository))

		orderRepo.On("GetByID", ctx, orderID).Return(nil, repository.ErrNotFound)

		order, err := svc.UpdateOrder(ctx, UpdateOrderRequest{OrderID: orderID, Quantity: 1})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, order)
	})
}

func TestShopService_UpdatePaymentSubmission(t *testing.T) {
	ctx := context.Background()
	subID := uuid.New().String()
	amount := 250.0

	t.Run("matching stamps matched_at", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		svc := NewShopService(new(MockOrderRepository), new(MockProductRepository), paymentRepo)

		paymentRepo.On("GetSubmissionByID", ctx, subID).
			Return(&models.PaymentSubmission{SubmissionID: subID, Matched: false}, nil)
		paymentRepo.On("UpdateSubmission", ctx, mock.AnythingOfType("*models.PaymentSubmission")).Return(nil)

		sub, err := svc.UpdatePaymentSubmission(ctx, UpdatePaymentSubmissionRequest{
			SubmissionID:    subID,
			SenderName:      "Juan",
			ReferenceNumber: "REF-0001",
			Amount:          &amount,
			Matched:         true,
		})

		require.NoError(t, err)
		assert.True(t, sub.Matched)
		require.NotNil(t, sub.MatchedAt)
	})

	t.Run("unmatching clears matched_at", func(t *testing.T) {
		paymentRepo := new(MockPaymentRepository)
		svc := NewShopService(new(MockOrderRepository), new(MockProductRepository), paymentRepo)

		matchedAt := time.Now()
		paymentRepo.On("GetSubmissionByID", ctx, subID).
			Return(&models.PaymentSubmission{SubmissionID: subID, Matched: true, MatchedAt: &matchedAt}, nil)
		paymentRepo.On("UpdateSubmission", ctx, mock.AnythingOfType("*models.PaymentSubmission")).Return(nil)

		sub, err := svc.UpdatePaymentSubmission(ctx, UpdatePaymentSubmissionRequest{
			SubmissionID: subID,
			Matched:      false,
		})

		require.NoError(t, err)
		assert.False(t, sub.Matched)
		assert.Nil(t, sub.MatchedAt)
	})
}
