package handlers

import (
	"net/http"

	"sero-backend/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	chronotypeService *services.ChronotypeService
}

func NewUserHandler(chronotypeService *services.ChronotypeService) *UserHandler {
	return &UserHandler{
		chronotypeService: chronotypeService,
	}
}

// GetEnergyCurve returns the curve points of one of the caller's chronotype
// records, ordered by hour.
func (h *UserHandler) GetEnergyCurve(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	points, err := h.chronotypeService.GetEnergyCurve(c.Param("id"), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chronotype not found"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetFocusWindows returns the focus windows of one of the caller's chronotype
// records, ordered by start hour.
func (h *UserHandler) GetFocusWindows(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	windows, err := h.chronotypeService.GetFocusWindows(c.Param("id"), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chronotype not found"})
		return
	}

	c.JSON(http.StatusOK, windows)
}
