package dto

// UpdateStatusRequest is the body of PATCH /api/orders/:id/status. The
// restaurant id scopes the update to the board that last saw the order.
type UpdateStatusRequest struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	OrderStatus  string `json:"orderStatus" binding:"required"`
}
