package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flooeats/tracking/internal/server/http/dto"
)

// BoardHandler serves restaurant order boards.
type BoardHandler struct {
	facade BoardFacade
}

// NewBoardHandler constructs BoardHandler.
func NewBoardHandler(facade BoardFacade) *BoardHandler {
	return &BoardHandler{facade: facade}
}

// Snapshot handles GET /api/restaurants/:id/orders.
func (h *BoardHandler) Snapshot(c *gin.Context) {
	snapshot, loading, lastErr := h.facade.Board(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, dto.BoardResponse{
		Active:      snapshot.Active,
		Completed:   snapshot.Completed,
		Cancelled:   snapshot.Cancelled,
		LastUpdated: snapshot.UpdatedAt,
		Loading:     loading,
		Error:       lastErr,
	})
}

// Refresh handles POST /api/restaurants/:id/orders/refresh.
func (h *BoardHandler) Refresh(c *gin.Context) {
	if err := h.facade.RefreshBoard(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "order service unavailable"})
		return
	}
	h.Snapshot(c)
}
