package model

import "strconv"

// OrderItem is one line of an order.
type OrderItem struct {
	ID         string  `json:"id"`
	FoodItemID string  `json:"foodItemId,omitempty"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image,omitempty"`
	ImageURL   string  `json:"imageUrl,omitempty"`
}

// Order is the central entity as served by the order service.
type Order struct {
	ID                string      `json:"id,omitempty"`
	OrderNumber       int64       `json:"orderNumber"`
	CustomerID        string      `json:"customerId"`
	RestaurantID      string      `json:"restaurantId"`
	RestaurantName    string      `json:"restaurantName,omitempty"`
	OrderItems        []OrderItem `json:"orderItems"`
	SubTotal          float64     `json:"subTotal"`
	DeliveryFee       float64     `json:"deliveryFee"`
	TotalAmount       float64     `json:"totalAmount"`
	OrderTime         int64       `json:"orderTime"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	RestaurantAddress string      `json:"restaurantAddress"`
	DeliveryTime      int64       `json:"deliveryTime"`
	OrderStatus       OrderStatus `json:"orderStatus"`
	PaymentID         string      `json:"paymentId"`
	UserID            string      `json:"userId"`
}

// Key returns the stable identifier for an order: the internal id when the
// service supplied one, the order number otherwise.
func (o Order) Key() string {
	if o.ID != "" {
		return o.ID
	}
	return strconv.FormatInt(o.OrderNumber, 10)
}

// CreateOrderRequest is the full order creation payload.
type CreateOrderRequest struct {
	OrderNumber       int64       `json:"orderNumber"`
	CustomerID        string      `json:"customerId"`
	RestaurantID      string      `json:"restaurantId"`
	RestaurantName    string      `json:"restaurantName"`
	OrderItems        []OrderItem `json:"orderItems"`
	SubTotal          float64     `json:"subTotal"`
	DeliveryFee       float64     `json:"deliveryFee"`
	TotalAmount       float64     `json:"totalAmount"`
	OrderTime         int64       `json:"orderTime"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	RestaurantAddress string      `json:"restaurantAddress"`
	DeliveryTime      int64       `json:"deliveryTime"`
	OrderStatus       string      `json:"orderStatus"`
	PaymentID         string      `json:"paymentId"`
	UserID            string      `json:"userId"`
}
