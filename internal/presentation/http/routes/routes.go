package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/billfold/billfold-api/internal/config"
	"github.com/billfold/billfold-api/internal/presentation/http/handler"
	"github.com/billfold/billfold-api/internal/presentation/http/middleware"
	"github.com/billfold/billfold-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Draft     *handler.DraftHandler
	Invoice   *handler.InvoiceHandler
	Catalog   *handler.CatalogHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(&deps.Cfg.RateLimit)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	// Catalog autocomplete
	protected.GET("/catalog/search", h.Catalog.Search)

	// Drafts
	registerDraftRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerDraftRoutes(protected *gin.RouterGroup, h *Handlers) {
	drafts := protected.Group("/drafts")
	{
		drafts.POST("", h.Draft.Create)
		drafts.GET("/:id", h.Draft.Get)
		drafts.PATCH("/:id", h.Draft.Update)
		drafts.DELETE("/:id", h.Draft.Delete)
		drafts.GET("/:id/totals", h.Draft.Totals)
		drafts.POST("/:id/items", h.Draft.AddItem)
		drafts.POST("/:id/items/catalog", h.Draft.AddCatalogItem)
		drafts.PATCH("/:id/items/:item_id", h.Draft.UpdateItem)
		drafts.DELETE("/:id/items/:item_id", h.Draft.RemoveItem)
		drafts.POST("/:id/items/:item_id/product", h.Draft.SelectProduct)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Build)
		invoices.GET("/register", h.Invoice.ExportRegister)
		invoices.GET("/:number", h.Invoice.Get)
		invoices.GET("/:number/render", h.Invoice.Render)
		invoices.GET("/:number/print", h.Invoice.PrintDocument)
		invoices.GET("/:number/export", h.Invoice.Export)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/receipt/:number", h.Printer.PrintReceipt)
	}
}
