package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed order payload"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidOrder) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "order service unavailable"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "order service unavailable"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ByCustomer handles GET /api/customers/:id/orders.
func (h *OrderHandler) ByCustomer(c *gin.Context) {
	orders, err := h.facade.CustomerOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "order service unavailable"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Track handles GET /api/orders/number/:number.
func (h *OrderHandler) Track(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order number must be a positive integer"})
		return
	}

	tracked, err := h.facade.TrackOrder(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "order service unavailable"})
		return
	}

	c.JSON(http.StatusOK, tracked)
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId and orderStatus are required"})
		return
	}

	status := model.OrderStatus(req.OrderStatus)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	if !h.facade.UpdateOrderStatus(c.Request.Context(), req.RestaurantID, orderID, status) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "status update not confirmed"})
		return
	}

	c.Status(http.StatusOK)
}
