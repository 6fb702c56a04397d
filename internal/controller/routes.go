package controller

import (
	"github.com/gin-gonic/gin"

	"starthobby-backend/internal/config"
	"starthobby-backend/internal/service"
	"starthobby-backend/pkg/middleware"
	"starthobby-backend/utilities"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	cfg *config.APIConfig,
	authService service.AuthService,
	userService service.UserService,
	quizService service.QuizService,
	evaluationService service.EvaluationService,
	reportService service.ReportService,
) {
	authCtrl := NewAuthController(authService)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh", authCtrl.Refresh)
	}

	api := r.Group("/api")
	if cfg.Authentication.EnableTokenAuth {
		api.Use(utilities.AuthMiddleware())
	}

	quizCtrl := NewQuizController(quizService)
	evalCtrl := NewEvaluationController(evaluationService, reportService)
	userCtrl := NewUserController(userService)

	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("", quizCtrl.GetQuizzes)
		quizzes.GET("/:quizId", quizCtrl.GetQuiz)
		quizzes.POST("/:quizId/evaluate",
			middleware.EvaluationRateLimit(cfg.THIRD_PARTY.EvaluationRate, cfg.THIRD_PARTY.EvaluationBurst),
			evalCtrl.EvaluateAnswers)
	}

	api.PUT("/questions/:questionId", quizCtrl.UpdateQuestion)
	api.PUT("/options/:optionId", quizCtrl.UpdateOption)

	users := api.Group("/users")
	{
		users.GET("/:userId/profile", userCtrl.GetProfile)
		users.GET("/:userId/badges", userCtrl.GetBadges)
		users.POST("/:userId/recommendations", evalCtrl.SaveRecommendation)
		users.GET("/:userId/recommendations", evalCtrl.GetRecommendations)
	}

	api.GET("/recommendations/:id/report", evalCtrl.DownloadReport)
}
