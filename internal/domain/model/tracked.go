package model

import "time"

// TrackedItem is a line item in its display form.
type TrackedItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// TrackedOrder is the display projection of an order: simplified stage,
// resolved identifiers, and a progress timeline.
type TrackedOrder struct {
	ID                    string          `json:"id"`
	OrderNumber           int64           `json:"orderNumber"`
	CustomerID            string          `json:"customerId"`
	RestaurantID          string          `json:"restaurantId"`
	RestaurantName        string          `json:"restaurantName"`
	RestaurantAddress     string          `json:"restaurantAddress,omitempty"`
	Items                 []TrackedItem   `json:"items"`
	Stage                 Stage           `json:"status"`
	Subtotal              float64         `json:"subtotal"`
	DeliveryFee           float64         `json:"deliveryFee"`
	Total                 float64         `json:"total"`
	CreatedAt             time.Time       `json:"createdAt"`
	EstimatedDeliveryTime time.Time       `json:"estimatedDeliveryTime"`
	Address               string          `json:"address"`
	Timeline              []TimelineEntry `json:"timeline"`
	DriverID              string          `json:"driverId,omitempty"`
}
