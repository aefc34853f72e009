package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servhub_backend/internal/auth"
	"servhub_backend/internal/config"
	"servhub_backend/internal/email"
	"servhub_backend/internal/handlers"
	"servhub_backend/internal/logger"
	"servhub_backend/internal/middleware"
	"servhub_backend/internal/models"
	"servhub_backend/internal/repositories"
	"servhub_backend/internal/routes"
	"servhub_backend/internal/services"
	"servhub_backend/internal/validator"
	"servhub_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin account", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	// Фоновая чистка журнала отозванных токенов
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	ledgerWorker := workers.NewLedgerWorker(repositories.NewInvalidatedTokenRepository(gormDB))
	ledgerWorker.Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()

	routes.Setup(ginRouter, appHandlers, routes.AuthMiddlewares{
		Client:   middleware.AuthMiddleware(serviceContainer.ClientAuth.AuthService),
		Business: middleware.AuthMiddleware(serviceContainer.BusinessAuth.AuthService),
		Admin:    middleware.AuthMiddleware(serviceContainer.AdminAuth),
	})

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var mailer email.Mailer
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, using in-memory mailer")
		mailer = email.NewMockMailer()
	} else {
		mailer = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
			Timeout:   30 * time.Second,
		})
	}

	// --- Репозитории ---
	clientRepo := repositories.NewClientRepository(gormDB)
	businessRepo := repositories.NewBusinessRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	branchRepo := repositories.NewBranchRepository(gormDB)
	serviceRepo := repositories.NewServiceRepository(gormDB)
	offeringRepo := repositories.NewOfferingRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	bookingRepo := repositories.NewBookingRepository(gormDB)
	ledgerRepo := repositories.NewInvalidatedTokenRepository(gormDB)

	// --- Подписанты токенов: по секрету на вид аккаунта ---
	clientSigner := auth.NewSigner(cfg.JWT.ClientSecret)
	businessSigner := auth.NewSigner(cfg.JWT.BusinessSecret)
	adminSigner := auth.NewSigner(cfg.JWT.AdminSecret)

	ttls := services.TokenTTLs{
		Login:   time.Duration(cfg.JWT.LoginTTLHours) * time.Hour,
		Confirm: time.Duration(cfg.JWT.ConfirmTTLHours) * time.Hour,
		Reset:   time.Duration(cfg.JWT.ResetTTLMinutes) * time.Minute,
	}
	hostname := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)

	// --- Сервисы ---
	clientAuth := services.NewClientAuthService(
		services.NewAuthService(clientRepo, clientSigner, ledgerRepo, mailer, ttls, hostname),
		clientRepo,
	)
	businessAuth := services.NewBusinessAuthService(
		services.NewAuthService(businessRepo, businessSigner, ledgerRepo, mailer, ttls, hostname),
		businessRepo,
		branchRepo,
		categoryRepo,
	)
	adminAuth := services.NewAuthService(adminRepo, adminSigner, ledgerRepo, mailer, ttls, hostname)

	return &services.ServiceContainer{
		ClientAuth:   clientAuth,
		BusinessAuth: businessAuth,
		AdminAuth:    adminAuth,
		Business:     services.NewBusinessService(businessRepo, branchRepo, categoryRepo, offeringRepo),
		Catalog:      services.NewCatalogService(serviceRepo, offeringRepo, branchRepo, categoryRepo),
		Visitor:      services.NewVisitorService(serviceRepo, categoryRepo),
		Review:       services.NewReviewService(reviewRepo, serviceRepo),
		Booking:      services.NewBookingService(bookingRepo, serviceRepo, offeringRepo),
		Admin:        services.NewAdminService(businessRepo, clientRepo, categoryRepo, businessSigner, mailer, ttls, hostname),
		Profile:      services.NewProfileService(clientRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		ClientAuthHandler:   handlers.NewClientAuthHandler(baseHandler, sc.ClientAuth),
		BusinessAuthHandler: handlers.NewBusinessAuthHandler(baseHandler, sc.BusinessAuth),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, sc.AdminAuth, sc.Admin),
		BusinessHandler:     handlers.NewBusinessHandler(baseHandler, sc.Business),
		CatalogHandler:      handlers.NewCatalogHandler(baseHandler, sc.Catalog),
		VisitorHandler:      handlers.NewVisitorHandler(baseHandler, sc.Visitor),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, sc.Review),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, sc.Profile, sc.Booking, sc.ClientAuth),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Business{},
		&models.Admin{},
		&models.Category{},
		&models.Branch{},
		&models.Service{},
		&models.Offering{},
		&models.Review{},
		&models.Booking{},
		&models.InvalidatedToken{},
	)
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.Admin
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin account already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin account: %w", result.Error)
	}

	logger.Warn("No admin account found with specified email. Creating first admin...", "email", adminEmail)

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.Admin{
		Credentials: models.Credentials{
			Email:        adminEmail,
			PasswordHash: hash,
		},
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("First admin account created", "email", adminEmail)
	return nil
}
