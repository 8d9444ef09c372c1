package usecase

import (
	"time"

	"github.com/flooeats/tracking/internal/domain/model"
)

// Adapt projects a canonical order onto its display form. The clock is passed
// in explicitly: synthesized milestone stamps are the only non-idempotent part
// of the projection, and tests pin them with a fixed now.
func Adapt(order model.Order, now time.Time) model.TrackedOrder {
	return model.TrackedOrder{
		ID:                    order.Key(),
		OrderNumber:           order.OrderNumber,
		CustomerID:            order.CustomerID,
		RestaurantID:          order.RestaurantID,
		RestaurantName:        restaurantName(order),
		RestaurantAddress:     order.RestaurantAddress,
		Items:                 adaptItems(order.OrderItems),
		Stage:                 model.StageOf(order.OrderStatus),
		Subtotal:              order.SubTotal,
		DeliveryFee:           order.DeliveryFee,
		Total:                 order.TotalAmount,
		CreatedAt:             time.UnixMilli(order.OrderTime).UTC(),
		EstimatedDeliveryTime: time.UnixMilli(order.DeliveryTime).UTC(),
		Address:               order.DeliveryAddress,
		Timeline:              model.SynthesizeTimeline(order.OrderStatus, time.UnixMilli(order.OrderTime).UTC(), now),
		DriverID:              order.UserID,
	}
}

// AdaptWithHistory is Adapt with observed transition times substituted into
// the synthesized timeline.
func AdaptWithHistory(order model.Order, observed []model.Transition, now time.Time) model.TrackedOrder {
	tracked := Adapt(order, now)
	tracked.Timeline = model.OverlayTransitions(tracked.Timeline, observed)
	return tracked
}

func restaurantName(order model.Order) string {
	if order.RestaurantName != "" {
		return order.RestaurantName
	}
	return "Restaurant"
}

func adaptItems(items []model.OrderItem) []model.TrackedItem {
	out := make([]model.TrackedItem, 0, len(items))
	for _, item := range items {
		id := item.ID
		if id == "" {
			id = item.FoodItemID
		}
		image := item.ImageURL
		if image == "" {
			image = item.Image
		}
		out = append(out, model.TrackedItem{
			ID:       id,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Image:    image,
		})
	}
	return out
}
