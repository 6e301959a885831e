package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/billfold/billfold-api/internal/application/service"
	"github.com/billfold/billfold-api/internal/config"
	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/infrastructure/memory"
	"github.com/billfold/billfold-api/internal/presentation/http/handler"
	"github.com/billfold/billfold-api/internal/presentation/http/routes"
	"github.com/billfold/billfold-api/pkg/printer"
	"github.com/billfold/billfold-api/pkg/session"
	"github.com/billfold/billfold-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize in-memory stores
	userRepo := memory.NewUserRepository()
	draftRepo := memory.NewDraftRepository()
	invoiceStore := memory.NewInvoiceStore()
	catalogRepo := memory.NewCatalogRepository(memory.DefaultCatalog())
	settingsStore := memory.NewSettingsStore(entity.ShopSettings{
		ShopName:    cfg.Shop.Name,
		ShopAddress: cfg.Shop.Address,
		ShopPhone:   cfg.Shop.Phone,
	})
	sessions := session.NewMemoryStore()

	// Seed the default admin account
	if err := memory.SeedDefaultAdmin(userRepo, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Printf("Warning: Failed to seed default admin: %v", err)
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.FromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NullPrinter{}
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, sessions)
	draftService := service.NewDraftService(draftRepo, catalogRepo)
	invoiceService := service.NewInvoiceService(draftRepo, invoiceStore, settingsStore)
	dashboardService := service.NewDashboardService(invoiceStore)
	settingsService := service.NewSettingsService(settingsStore)
	printerService := service.NewPrinterService(thermalPrinter, invoiceStore, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Draft:     handler.NewDraftHandler(draftService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Catalog:   handler.NewCatalogHandler(draftService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
