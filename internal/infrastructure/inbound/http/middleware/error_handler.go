package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
)

const internalErrorMessage = "Internal Server Error"

// ErrorHandler turns the last error attached to the context into the JSON
// response. Handlers only call c.Error and return.
func ErrorHandler(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := Translate(err)

		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request.Context(), "Request failed",
				slog.String("path", c.Request.URL.Path),
				slog.String("request_id", RequestIDFrom(c)),
				slog.String("error", err.Error()))
		} else {
			log.DebugContext(c.Request.Context(), "Request rejected",
				slog.String("path", c.Request.URL.Path),
				slog.Int("status", status),
				slog.String("error", err.Error()))
		}

		c.AbortWithStatusJSON(status, gin.H{"message": message})
	}
}

// Translate maps an error kind to its HTTP status and caller-facing message.
func Translate(err error) (int, string) {
	var status int
	switch {
	case errors.Is(err, custom_errors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, custom_errors.ErrNotFound):
		status = http.StatusNotFound
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}

	if message, ok := custom_errors.PublicMessage(err); ok {
		return status, message
	}
	return status, http.StatusText(status)
}
