// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductInvalidID  = "product.invalid_id"
	KeyProductIDMismatch = "product.id_mismatch"

	// Errors
	KeyInternalError = "error.internal"
	KeyRateLimited   = "error.rate_limited"

	// Health
	KeyHealthUnhealthy = "health.unhealthy"
)
