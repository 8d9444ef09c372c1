package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/server/http/dto"
)

// DriverHandler manages driver shift and roster endpoints.
type DriverHandler struct {
	facade DriverFacade
}

// NewDriverHandler constructs DriverHandler.
func NewDriverHandler(facade DriverFacade) *DriverHandler {
	return &DriverHandler{facade: facade}
}

// Online handles POST /api/drivers/:id/online.
func (h *DriverHandler) Online(c *gin.Context) {
	driverID := c.Param("id")
	if err := h.facade.DriverOnline(c.Request.Context(), driverID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	h.shift(c, driverID)
}

// Offline handles POST /api/drivers/:id/offline.
func (h *DriverHandler) Offline(c *gin.Context) {
	driverID := c.Param("id")
	if err := h.facade.DriverOffline(c.Request.Context(), driverID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	h.shift(c, driverID)
}

// Shift handles GET /api/drivers/:id/shift.
func (h *DriverHandler) Shift(c *gin.Context) {
	h.shift(c, c.Param("id"))
}

func (h *DriverHandler) shift(c *gin.Context, driverID string) {
	status, lastErr := h.facade.DriverShift(driverID)
	c.JSON(http.StatusOK, dto.ShiftResponse{DriverID: driverID, Status: status, Error: lastErr})
}

// Offer handles GET /api/drivers/:id/offer.
func (h *DriverHandler) Offer(c *gin.Context) {
	offer := h.facade.DriverOffer(c.Param("id"))
	if offer == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.OfferResponse{Order: offer})
}

// Accept handles POST /api/drivers/:id/offer/accept.
func (h *DriverHandler) Accept(c *gin.Context) {
	order, err := h.facade.AcceptOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrOrderClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "order already claimed by another driver"})
		case errors.Is(err, domainErrors.ErrNoOffer):
			c.JSON(http.StatusNotFound, gin.H{"error": "no pending offer"})
		case errors.Is(err, domainErrors.ErrDriverOffline):
			c.JSON(http.StatusConflict, gin.H{"error": "driver is not online"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.OfferResponse{Order: order})
}

// Decline handles POST /api/drivers/:id/offer/decline.
func (h *DriverHandler) Decline(c *gin.Context) {
	if err := h.facade.DeclineOffer(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending offer"})
		return
	}
	c.Status(http.StatusOK)
}

// List handles GET /api/drivers.
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.facade.Drivers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var driver model.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed driver payload"})
		return
	}

	created, err := h.facade.CreateDriver(c.Request.Context(), driver)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/drivers/:id.
func (h *DriverHandler) Update(c *gin.Context) {
	var driver model.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed driver payload"})
		return
	}

	updated, err := h.facade.UpdateDriver(c.Request.Context(), c.Param("id"), driver)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/drivers/:id.
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Location handles GET /api/drivers/:id/location.
func (h *DriverHandler) Location(c *gin.Context) {
	location, err := h.facade.DriverLocation(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	c.JSON(http.StatusOK, location)
}

// UpdateLocation handles PUT /api/drivers/:id/location.
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	var location model.GeoLocation
	if err := c.ShouldBindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed location payload"})
		return
	}

	updated, err := h.facade.UpdateDriverLocation(c.Request.Context(), c.Param("id"), location)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery service unavailable"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
