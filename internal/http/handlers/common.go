package handlers

import (
	"context"
	"errors"
	"net/http"

	"airline/internal/domain"
	"airline/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies shared by every endpoint. Services are
// built per request from it so that each carries the request id.
type Handler struct {
	Store      repositories.Store
	FetchLimit int
	// Ping checks the backing database; nil means no database (memory store).
	Ping func(ctx context.Context) error
}

func New(store repositories.Store, fetchLimit int) *Handler {
	return &Handler{Store: store, FetchLimit: fetchLimit}
}

// BindJSONOrError decodes and validates the body into dst. It writes the 400
// response itself and reports false on failure.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondDomainError(c, domain.ValidationError{Msg: "request body is empty"})
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if !domain.IsValidation(err) {
			err = domain.ValidationError{Msg: "invalid JSON body: " + err.Error(), Err: err}
		}
		RespondDomainError(c, err)
		return false
	}
	return true
}

// requiredQuery reads a mandatory query parameter.
func requiredQuery(c *gin.Context, name string) (string, bool) {
	v := c.Query(name)
	if v == "" {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "query parameter is required"})
		return "", false
	}
	return v, true
}

func message(msg string) gin.H {
	return gin.H{"message": msg}
}

var errNoDatabase = errors.New("no database configured")

func okOrError(c *gin.Context, err error, body any) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
