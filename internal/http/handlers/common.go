package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pokedex/internal/domain"
)

// BindJSONOrError ensures the body is present and parsable; on failure it
// writes a validation response and reports false.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondDomainError(c, domain.Validationf("body", "request body is required"))
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondDomainError(c, domain.Validationf("body", "malformed payload: %v", err))
		return false
	}
	return true
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
