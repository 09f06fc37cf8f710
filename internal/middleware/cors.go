// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-api/internal/config"
)

// CORS expects cfg to have passed config.Validate; cors.New panics otherwise.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	policy := cfg.Policy()
	policy.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	policy.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", RequestIDHeader}
	policy.ExposeHeaders = []string{"Location", RequestIDHeader}
	policy.MaxAge = 12 * time.Hour

	return cors.New(policy)
}
