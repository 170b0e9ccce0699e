package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coding-online/certexam/config"
	"github.com/coding-online/certexam/internal/controller"
	"github.com/coding-online/certexam/internal/logger"
	"github.com/coding-online/certexam/internal/middleware"
	"github.com/coding-online/certexam/internal/questionbank"
	"github.com/coding-online/certexam/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Certification Exam API
// @version 1.0
// @description Browser-based certification-exam backend: authentication, question sampling, grading and certificate data.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewGinEngine,
			NewQuestionBank,
			service.NewScoringService,
			service.NewCertificateService,
			NewExamDataService,
		),
		fx.Provide(
			controller.NewAuthController,
			controller.NewExamController,
		),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewQuestionBank(cfg *config.Config) *questionbank.Bank {
	client := &http.Client{Timeout: time.Duration(cfg.Backend.FetchTimeoutSecs) * time.Second}
	return questionbank.New(questionbank.NewHTTPFetcher(client))
}

// NewExamDataService picks the transport by configuration. All three
// implement the same contract; nothing else in the application knows which
// one is active.
func NewExamDataService(
	cfg *config.Config,
	bank *questionbank.Bank,
	scorer service.ScoringService,
	certs service.CertificateService,
) (service.ExamDataService, error) {
	switch cfg.Backend.Mode {
	case "mock":
		return service.NewMockService(scorer, certs)
	case "sheet":
		return service.NewSheetService(bank, cfg.Backend.QuestionSourceURL, scorer, certs), nil
	case "remote":
		if cfg.Backend.RemoteBaseURL == "" {
			return nil, fmt.Errorf("remote backend mode requires REMOTE_BASE_URL")
		}
		client := &http.Client{Timeout: time.Duration(cfg.Backend.FetchTimeoutSecs) * time.Second}
		return service.NewRemoteService(cfg.Backend.RemoteBaseURL, client), nil
	default:
		return nil, fmt.Errorf("unknown backend mode %q", cfg.Backend.Mode)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	examCtrl *controller.ExamController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/signup", authCtrl.Signup)

		api.GET("/organization", examCtrl.GetOrganization)
		api.GET("/exams/:exam_id/questions", examCtrl.GetExamQuestions)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(cfg.Auth.JWTSecret))
		authed.POST("/exams/:exam_id/submissions", examCtrl.SubmitTest)
		authed.GET("/results", examCtrl.ListTestResults)
		authed.GET("/results/:test_id", examCtrl.GetTestResult)
		authed.GET("/certificates/:test_id", examCtrl.GetCertificate)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Certification exam API starting on port %s (backend: %s)", cfg.Server.Port, cfg.Backend.Mode)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
