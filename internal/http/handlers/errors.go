package handlers

import (
	"log"
	"net/http"

	"airline/internal/domain"
	"airline/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, detail string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Detail:    detail,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Business-rule
// conflicts are client errors and share 400 with validation failures.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, "conflict", err.Error())
	case domain.IsInternal(err):
		respondInternal(c, err, err.Error())
	default:
		respondInternal(c, err, "internal server error")
	}
}

func respondInternal(c *gin.Context, err error, detail string) {
	_ = c.Error(err)
	log.Printf("[HTTP] request_id=%s internal error: %v", middleware.GetRequestID(c), err)
	respondError(c, http.StatusInternalServerError, "internal_error", detail)
}
