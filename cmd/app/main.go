package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"starthobby-backend/internal/config"
	"starthobby-backend/internal/controller"
	"starthobby-backend/internal/db"
	"starthobby-backend/internal/llm"
	"starthobby-backend/internal/model"
	"starthobby-backend/internal/repository"
	"starthobby-backend/internal/service"
	"starthobby-backend/pkg/logging"
	"starthobby-backend/pkg/middleware"
	"starthobby-backend/utilities"
)

func main() {
	printStartUpBanner()

	// .env first so config can pick up secrets from the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Init(cfg.Context.LogDir, cfg.Context.LogLevel)
	utilities.InitJWT(cfg)

	db.InitDBFromConfig(cfg)
	err = db.GetDB().AutoMigrate(
		&model.User{}, &model.UserProgress{}, &model.Membership{},
		&model.Badge{}, &model.UserBadge{},
		&model.Quiz{}, &model.Question{}, &model.Option{},
		&model.Recommendation{},
	)
	if err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// The engine client is built once here and injected; its lifecycle
	// ends with the process.
	gemini, err := llm.NewGeminiGenerator(context.Background(), llm.Config{
		APIKey:      cfg.THIRD_PARTY.GeminiAPIKey,
		Model:       cfg.THIRD_PARTY.GeminiModel,
		Timeout:     time.Duration(cfg.THIRD_PARTY.GeminiTimeout) * time.Second,
		MaxAttempts: cfg.THIRD_PARTY.GeminiAttempts,
	})
	if err != nil {
		log.Fatalf("failed to init Gemini client: %v", err)
	}
	generator := llm.WithRetry(gemini, cfg.THIRD_PARTY.GeminiAttempts)

	userRepo := repository.NewUserRepository()
	quizRepo := repository.NewQuizRepository()
	recRepo := repository.NewRecommendationRepository()

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	quizService := service.NewQuizService(quizRepo)
	evaluationService := service.NewEvaluationService(quizRepo, recRepo, generator)
	reportService := service.NewReportService(recRepo)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	controller.RegisterRoutes(r, cfg, authService, userService, quizService, evaluationService, reportService)

	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	logging.Info("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("STARTHOBBY", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("STARTHOBBY API (v%s)\n\n", "1.0.0")
}
