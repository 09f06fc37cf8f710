// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/product-api/internal/config"
	"github.com/javajoker/product-api/internal/handlers"
	"github.com/javajoker/product-api/internal/middleware"
)

func Initialize(products handlers.ProductGateway, db handlers.Pinger, cfg *config.Config) *gin.Engine {
	// Initialize handlers
	productHandler := handlers.NewProductHandler(products)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	if cfg.RateLimit.Enabled() {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}

	// Health check
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	return r
}
