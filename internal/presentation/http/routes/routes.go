package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kasirhub/kasir-pos/internal/config"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/handler"
	"github.com/kasirhub/kasir-pos/internal/presentation/http/middleware"
	"github.com/kasirhub/kasir-pos/pkg/logger"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Transaction *handler.TransactionHandler
	Product     *handler.ProductHandler
	Settings    *handler.SettingsHandler
	Receipt     *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
	Log *logger.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
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
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerTransactionRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerSettingsRoutes(v1, h)
		registerReceiptRoutes(v1, h)
	}

	return router
}

func registerTransactionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.DELETE("/:id", h.Transaction.Delete)

		transactions.POST("/:id/items", h.Transaction.AddItem)
		transactions.PUT("/:id/items/:item_id", h.Transaction.UpdateItem)
		transactions.DELETE("/:id/items/:item_id", h.Transaction.RemoveItem)

		transactions.PUT("/:id/discount", h.Transaction.SetDiscount)
		transactions.PUT("/:id/customer", h.Transaction.SetCustomer)
		transactions.POST("/:id/pay", h.Transaction.Pay)
		transactions.POST("/:id/cancel", h.Transaction.Cancel)
		transactions.DELETE("/:id/draft", h.Transaction.DeleteDraft)
		transactions.POST("/:id/return", h.Transaction.MarkReturn)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/code/:code", h.Product.GetByCode)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", h.Product.ListCategories)
		categories.POST("", h.Product.CreateCategory)
		categories.DELETE("/:id", h.Product.DeleteCategory)
	}
}

func registerSettingsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	settings := v1.Group("/settings")
	{
		settings.GET("/template", h.Settings.GetTemplate)
		settings.PUT("/template", h.Settings.UpdateTemplate)
		settings.GET("/display", h.Settings.GetDisplay)
		settings.PUT("/display", h.Settings.UpdateDisplay)
		settings.GET("/payment-cards", h.Settings.ListPaymentCards)
		settings.POST("/payment-cards", h.Settings.CreatePaymentCard)
		settings.DELETE("/payment-cards/:id", h.Settings.DeletePaymentCard)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Receipt.GetStatus)
		printerGroup.POST("/test", h.Receipt.TestPrint)
	}

	receipts := v1.Group("/receipts")
	{
		receipts.GET("/:id", h.Receipt.Get)
		receipts.GET("/:id/escpos", h.Receipt.Escpos)
		receipts.GET("/:id/html", h.Receipt.HTML)
		receipts.POST("/:id/print", h.Receipt.Print)
	}
}
