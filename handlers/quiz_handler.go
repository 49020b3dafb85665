package handlers

import (
	"errors"
	"net/http"

	"sero-backend/chronotype"
	"sero-backend/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
	hub         *services.Hub
}

func NewQuizHandler(quizService *services.QuizService, hub *services.Hub) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		hub:         hub,
	}
}

// GetActiveQuiz returns the current questionnaire revision.
func (h *QuizHandler) GetActiveQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetActiveDefinition()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// SubmitQuiz scores a full answer set and persists the attempt and the
// derived chronotype artifacts.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quizService.Submit(userID.(uint), &req, h.hub)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrQuizNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrVersionMismatch):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrIncompleteSubmission), errors.Is(err, chronotype.ErrUnknownQuestion):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetResults returns the caller's most recent scored attempt.
func (h *QuizHandler) GetResults(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	attempt, err := h.quizService.GetLatestAttempt(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No quiz results found"})
		return
	}

	c.JSON(http.StatusOK, attempt)
}
