// internal/config/cors.go
package config

import (
	"fmt"

	"github.com/gin-contrib/cors"
)

// Policy returns the origin half of the CORS setup. A lone "*" allows every
// origin.
func (c CORSConfig) Policy() cors.Config {
	if len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*" {
		return cors.Config{AllowAllOrigins: true}
	}
	return cors.Config{AllowOrigins: c.AllowedOrigins}
}

// Validate applies the checks cors.New would otherwise panic on.
func (c CORSConfig) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("invalid CORS_ALLOWED_ORIGINS: %w", err)
	}
	return nil
}
