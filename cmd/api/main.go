package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"freelancehub/internal/activity"
	"freelancehub/internal/app"
	"freelancehub/internal/config"
	"freelancehub/internal/database"
	apphttp "freelancehub/internal/http"
	"freelancehub/internal/http/handlers"
	"freelancehub/internal/http/metrics"
	httpmw "freelancehub/internal/http/middleware"
	"freelancehub/internal/http/response"
	"freelancehub/internal/observability"
	"freelancehub/internal/repository/postgres"
	"freelancehub/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	contractRepo := postgres.NewContractRepository(db)
	submissionRepo := postgres.NewSubmissionRepository(db)
	inquiryRepo := postgres.NewInquiryRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	dismissals := activity.NewDismissalStore()

	jobService := app.NewJobService(jobRepo)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, contractRepo, logger)
	contractService := app.NewContractService(contractRepo, logger)
	submissionService := app.NewSubmissionService(submissionRepo, contractRepo)
	paymentService := app.NewPaymentService(paymentRepo, contractRepo, submissionRepo, logger)
	inquiryService := app.NewInquiryService(inquiryRepo, userRepo)
	dashboardService := app.NewDashboardService(userRepo, jobRepo, applicationRepo, contractRepo, inquiryRepo, dismissals)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("redis url parse failed", slog.String("error", err.Error()))
		} else {
			limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
		}
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, limiter, cfg.ApplyRateLimit, cfg.ApplyRateWindow),
		ContractHandler:    handlers.NewContractHandler(contractRepo, contractService, paymentService),
		SubmissionHandler:  handlers.NewSubmissionHandler(submissionService),
		InquiryHandler:     handlers.NewInquiryHandler(inquiryService, limiter, cfg.ApplyRateLimit, cfg.ApplyRateWindow),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider),
		Metrics:            collector,
		RequestTimeout:     cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started", slog.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
