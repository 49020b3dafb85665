package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"sero-backend/services"

	"github.com/gin-gonic/gin"
)

type ChronotypeHandler struct {
	chronotypeService *services.ChronotypeService
	hub               *services.Hub
}

func NewChronotypeHandler(chronotypeService *services.ChronotypeService, hub *services.Hub) *ChronotypeHandler {
	return &ChronotypeHandler{
		chronotypeService: chronotypeService,
		hub:               hub,
	}
}

func (h *ChronotypeHandler) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.CreateChronotypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct, err := h.chronotypeService.Create(userID.(uint), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ct)
}

func (h *ChronotypeHandler) Get(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ct, err := h.chronotypeService.Get(c.Param("id"), userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chronotype not found"})
		return
	}

	c.JSON(http.StatusOK, ct)
}

// GetMine returns the caller's current chronotype record.
func (h *ChronotypeHandler) GetMine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ct, err := h.chronotypeService.GetByUser(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chronotype not found"})
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *ChronotypeHandler) Update(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.UpdateChronotypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct, err := h.chronotypeService.Update(c.Param("id"), userID.(uint), &req)
	if err != nil {
		if errors.Is(err, services.ErrChronotypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chronotype not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ct)
}

func (h *ChronotypeHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.chronotypeService.Delete(c.Param("id"), userID.(uint)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chronotype not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordEnergyFeedback stores an actual energy observation for one curve hour.
func (h *ChronotypeHandler) RecordEnergyFeedback(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil || hour < 0 || hour > 23 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hour"})
		return
	}

	var req services.EnergyFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	point, err := h.chronotypeService.RecordEnergyFeedback(c.Param("id"), userID.(uint), hour, &req, h.hub)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChronotypeNotFound), errors.Is(err, services.ErrCurvePointNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, point)
}
