package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	documentdomain "github.com/smallbiznis/docpress/internal/document/domain"
	"github.com/smallbiznis/docpress/internal/observability/logger"
	templatedomain "github.com/smallbiznis/docpress/internal/template/domain"
)

var (
	ErrNotFound           = errors.New("not_found")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

// ValidationError carries a field-level request problem.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Code }

func newValidationError(field, code, message string) error {
	return &ValidationError{Field: field, Code: code, Message: message}
}

func invalidRequestError() error {
	return newValidationError("body", "invalid_request", "request body could not be parsed")
}

// AbortWithError maps domain errors onto HTTP statuses and a consistent
// error envelope.
func AbortWithError(c *gin.Context, err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validation})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, templatedomain.ErrNotFound),
		errors.Is(err, templatedomain.ErrElementNotFound),
		errors.Is(err, templatedomain.ErrNoDefaultTemplate):
		status = http.StatusNotFound
	case errors.Is(err, templatedomain.ErrInvalidID),
		errors.Is(err, templatedomain.ErrInvalidName),
		errors.Is(err, templatedomain.ErrInvalidElement),
		errors.Is(err, templatedomain.ErrDuplicateElement),
		errors.Is(err, templatedomain.ErrUnknownKind),
		errors.Is(err, documentdomain.ErrMissingRecord):
		status = http.StatusBadRequest
	case errors.Is(err, ErrServiceUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": "internal_error"}})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": err.Error()}})
}
