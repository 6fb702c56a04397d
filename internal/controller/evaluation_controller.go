package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starthobby-backend/internal/llm"
	"starthobby-backend/internal/model"
	"starthobby-backend/internal/service"
	"starthobby-backend/pkg/logging"
)

type EvaluationController struct {
	EvaluationService service.EvaluationService
	ReportService     service.ReportService
}

func NewEvaluationController(evaluationService service.EvaluationService, reportService service.ReportService) *EvaluationController {
	return &EvaluationController{
		EvaluationService: evaluationService,
		ReportService:     reportService,
	}
}

// EvaluateAnswers handles POST /api/quizzes/:quizId/evaluate
func (ec *EvaluationController) EvaluateAnswers(c *gin.Context) {
	quizID, ok := parseUintParam(c, "quizId")
	if !ok {
		return
	}

	var req struct {
		UserID  uint                    `json:"user_id" binding:"required"`
		Answers []model.SubmittedAnswer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result, err := ec.EvaluationService.EvaluateAnswers(c.Request.Context(), quizID, req.UserID, req.Answers)
	if err != nil {
		ec.writeEvaluationError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeEvaluationError maps pipeline error kinds to HTTP statuses:
// a transport problem with the engine is retryable (503), a content
// violation by a reachable engine is not (502).
func (ec *EvaluationController) writeEvaluationError(c *gin.Context, err error) {
	var upstream *llm.ErrUpstreamUnavailable
	var format *llm.ErrFormatInvalid

	switch {
	case errors.Is(err, service.ErrNoValidAnswers):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no submitted answer matched the quiz"})
	case errors.As(err, &upstream):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendation engine unavailable, try again later"})
	case errors.As(err, &format):
		logging.Error("engine reply failed validation: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "recommendation engine returned an unusable reply"})
	default:
		logging.Error("evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
	}
}

// SaveRecommendation handles POST /api/users/:userId/recommendations
func (ec *EvaluationController) SaveRecommendation(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	var req model.SaveRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := ec.EvaluationService.SaveRecommendation(userID, &req); err != nil {
		logging.Error("failed to save recommendation for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save recommendation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetRecommendations handles GET /api/users/:userId/recommendations
func (ec *EvaluationController) GetRecommendations(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}

	recs, err := ec.EvaluationService.GetRecommendations(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// DownloadReport handles GET /api/recommendations/:id/report
func (ec *EvaluationController) DownloadReport(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	pdfBytes, filename, err := ec.ReportService.GenerateReport(id)
	if err != nil {
		if errors.Is(err, service.ErrRecommendationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
			return
		}
		logging.Error("report generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
