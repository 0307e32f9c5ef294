package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/api/handlers"
	"github.com/pupunkorvat/storefront/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps *handlers.Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		cartRoutes := v1.Group("/cart")
		{
			cartRoutes.GET("", handlers.HandleGetCart(deps, logger))
			cartRoutes.POST("/items", handlers.HandleAddItem(deps, logger))
			cartRoutes.PATCH("/items/quantity", handlers.HandleChangeQuantity(deps, logger))
			cartRoutes.POST("/items/remove", handlers.HandleRemoveItem(deps, logger))
			cartRoutes.POST("/validate", handlers.HandleValidateCart(deps, logger))
			cartRoutes.POST("/discount", handlers.HandleApplyDiscount(deps, logger))
			cartRoutes.DELETE("/discount", handlers.HandleRemoveDiscount(deps, logger))
		}

		checkoutRoutes := v1.Group("/checkout")
		{
			checkoutRoutes.POST("/start", handlers.HandleStartCheckout(deps, logger))
			checkoutRoutes.POST("/customer-data", handlers.HandleSubmitCustomerData(deps, logger))
			checkoutRoutes.POST("/shipment", handlers.HandleSelectShipment(deps, logger))
			checkoutRoutes.POST("/confirm", handlers.HandleConfirmCheckout(deps, logger))
			checkoutRoutes.POST("/back", handlers.HandleCheckoutBack(deps, logger))
			checkoutRoutes.DELETE("", handlers.HandleAbandonCheckout(deps, logger))
		}

		scannerRoutes := v1.Group("/scanner")
		{
			scannerRoutes.POST("/validate-pin", handlers.HandleValidatePin(deps, logger))
			scannerRoutes.GET("/tickets/:code", handlers.HandleGetTicket(deps, logger))
			scannerRoutes.POST("/tickets/use", handlers.HandleUseTicket(deps, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
