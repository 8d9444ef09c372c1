package usecase

import (
	"fmt"
	"math"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
)

// moneyEpsilon absorbs float rounding when checking the total.
const moneyEpsilon = 0.005

// ValidateCreateOrder enforces the order invariants at the create boundary:
// positive quantities, non-negative prices, and totalAmount equal to
// subTotal plus deliveryFee. Orders fetched from the service are trusted
// as-is; only creation rejects malformed input.
func ValidateCreateOrder(req model.CreateOrderRequest) error {
	if req.OrderNumber <= 0 {
		return fmt.Errorf("%w: order number must be positive", domainErrors.ErrInvalidOrder)
	}
	if len(req.OrderItems) == 0 {
		return fmt.Errorf("%w: at least one item is required", domainErrors.ErrInvalidOrder)
	}
	for _, item := range req.OrderItems {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %q has non-positive quantity", domainErrors.ErrInvalidOrder, item.Name)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: item %q has negative price", domainErrors.ErrInvalidOrder, item.Name)
		}
	}
	if req.SubTotal < 0 || req.DeliveryFee < 0 {
		return fmt.Errorf("%w: negative amount", domainErrors.ErrInvalidOrder)
	}
	if math.Abs(req.TotalAmount-(req.SubTotal+req.DeliveryFee)) > moneyEpsilon {
		return fmt.Errorf("%w: totalAmount %.2f does not equal subTotal %.2f + deliveryFee %.2f",
			domainErrors.ErrInvalidOrder, req.TotalAmount, req.SubTotal, req.DeliveryFee)
	}
	if req.OrderStatus != "" && !model.OrderStatus(req.OrderStatus).Valid() {
		return fmt.Errorf("%w: %q", domainErrors.ErrUnknownStatus, req.OrderStatus)
	}
	return nil
}
