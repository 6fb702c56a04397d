package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starthobby-backend/internal/service"
)

type QuizController struct {
	QuizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuizzes handles GET /api/quizzes
func (qc *QuizController) GetQuizzes(c *gin.Context) {
	quizzes, err := qc.QuizService.GetQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz handles GET /api/quizzes/:quizId and returns the nested
// quiz -> questions -> options structure.
func (qc *QuizController) GetQuiz(c *gin.Context) {
	quizID, ok := parseUintParam(c, "quizId")
	if !ok {
		return
	}

	tree, err := qc.QuizService.GetQuizTree(quizID)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, tree)
}

// UpdateQuestion handles PUT /api/questions/:questionId
func (qc *QuizController) UpdateQuestion(c *gin.Context) {
	questionID, ok := parseUintParam(c, "questionId")
	if !ok {
		return
	}
	var req struct {
		QuestionText string `json:"question_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := qc.QuizService.UpdateQuestionText(questionID, req.QuestionText); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateOption handles PUT /api/options/:optionId
func (qc *QuizController) UpdateOption(c *gin.Context) {
	optionID, ok := parseUintParam(c, "optionId")
	if !ok {
		return
	}
	var req struct {
		OptionText string `json:"option_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := qc.QuizService.UpdateOptionText(optionID, req.OptionText); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(parsed), true
}
