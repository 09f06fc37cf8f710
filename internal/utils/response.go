// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/javajoker/product-api/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Context keys set by middleware.
const (
	LangKey      = "lang"
	RequestIDKey = "request_id"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

// NotFoundResponse answers 404 with an empty body.
func NotFoundResponse(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// NoContentResponse answers 204 with an empty body.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func TooManyRequestsResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", i18n.T(lang, i18n.KeyRateLimited), nil)
}

func InternalErrorResponse(c *gin.Context) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", i18n.T(lang, i18n.KeyInternalError), nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get(LangKey); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return i18n.DefaultLang
}

func GetRequestIDFromContext(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if idStr, ok := id.(string); ok {
			return idStr
		}
	}
	return ""
}
