package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
)

func validCreateRequest() model.CreateOrderRequest {
	return model.CreateOrderRequest{
		OrderNumber:  42,
		CustomerID:   "cust-1",
		RestaurantID: "1",
		OrderItems: []model.OrderItem{
			{ID: "item-1", Name: "Kottu", Price: 14.47, Quantity: 1},
		},
		SubTotal:    14.47,
		DeliveryFee: 4.5,
		TotalAmount: 18.97,
		OrderStatus: "PENDING",
		PaymentID:   "pay-1",
	}
}

func TestValidateCreateOrderAccepts(t *testing.T) {
	if err := ValidateCreateOrder(validCreateRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCreateOrderRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.CreateOrderRequest)
		wantErr error
	}{
		{"zero order number", func(r *model.CreateOrderRequest) { r.OrderNumber = 0 }, domainErrors.ErrInvalidOrder},
		{"no items", func(r *model.CreateOrderRequest) { r.OrderItems = nil }, domainErrors.ErrInvalidOrder},
		{"zero quantity", func(r *model.CreateOrderRequest) { r.OrderItems[0].Quantity = 0 }, domainErrors.ErrInvalidOrder},
		{"negative price", func(r *model.CreateOrderRequest) { r.OrderItems[0].Price = -1 }, domainErrors.ErrInvalidOrder},
		{"negative fee", func(r *model.CreateOrderRequest) { r.DeliveryFee = -1 }, domainErrors.ErrInvalidOrder},
		{"total mismatch", func(r *model.CreateOrderRequest) { r.TotalAmount = 99 }, domainErrors.ErrInvalidOrder},
		{"unknown status", func(r *model.CreateOrderRequest) { r.OrderStatus = "SHIPPED" }, domainErrors.ErrUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			err := ValidateCreateOrder(req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCreateOrderToleratesRounding(t *testing.T) {
	req := validCreateRequest()
	req.SubTotal = 10.10
	req.DeliveryFee = 2.20
	req.TotalAmount = 12.300000001
	if err := ValidateCreateOrder(req); err != nil {
		t.Fatalf("rounding noise must pass: %v", err)
	}
}
