package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokedex/internal/domain"
	"pokedex/internal/http/middleware"
)

// ErrorResponse is the uniform error payload. Errors carries the field to
// violations mapping for validation failures only.
type ErrorResponse struct {
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// RespondDomainError maps each taxonomy kind to exactly one HTTP status.
// Internal transport detail never reaches the body; unknown failures get a
// generic message while the classified text stays in the logs.
func RespondDomainError(c *gin.Context, err error) {
	resp := ErrorResponse{RequestID: middleware.GetRequestID(c)}

	var de *domain.Error
	if !errors.As(err, &de) {
		resp.Message = "internal error"
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	switch de.Kind {
	case domain.KindNotFound:
		resp.Message = de.Message
		c.JSON(http.StatusNotFound, resp)
	case domain.KindAlreadyExists:
		resp.Message = de.Message
		c.JSON(http.StatusConflict, resp)
	case domain.KindValidation:
		resp.Message = de.Message
		resp.Errors = de.Fields
		c.JSON(http.StatusBadRequest, resp)
	case domain.KindUnavailable:
		resp.Message = "backend unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
	default:
		resp.Message = "internal error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}
