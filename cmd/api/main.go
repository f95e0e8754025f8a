package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/config"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/database"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/handler"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/middleware"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/repository"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/router"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
	cloud "github.com/prakash-nitc/Student-Activity-Point-Management-Portal/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.PointsLedgerEntry{},
		&models.ActivityRequest{},
		&models.RequestComment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	uploader, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	auditService := service.NewAuditService(auditRepo, logger)
	ledgerService := service.NewLedgerService(ledgerRepo, requestRepo, redisClient, cfg.SummaryCacheTTL, logger)
	workflowService := service.NewWorkflowService(requestRepo, userRepo, categoryRepo, ledgerService, auditService, validate, logger)
	categoryService := service.NewCategoryService(categoryRepo, userRepo, validate, logger)
	directoryService := service.NewDirectoryService(userRepo, ledgerService, validate, logger)
	proofService := service.NewProofService(uploader, cfg.ProofMaxSizeMB, logger)

	requestHandler := handler.NewRequestHandler(workflowService, logger)
	advisorHandler := handler.NewAdvisorHandler(workflowService, logger)
	adminHandler := handler.NewAdminHandler(workflowService, directoryService, categoryService, auditService, validate, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	profileHandler := handler.NewProfileHandler(directoryService, logger)
	uploadHandler := handler.NewUploadHandler(proofService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		RequestHandler:  requestHandler,
		AdvisorHandler:  advisorHandler,
		AdminHandler:    adminHandler,
		CategoryHandler: categoryHandler,
		ProfileHandler:  profileHandler,
		UploadHandler:   uploadHandler,
		JWTMiddleware:   middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
