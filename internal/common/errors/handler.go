package errors

import (
	"github.com/gin-gonic/gin"
)

// ErrorHandler writes standardized error responses for HTTP handlers.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Respond normalizes err, logs it, and writes the JSON error body. The
// response never includes Details for 5xx codes to avoid leaking internals.
func (h *ErrorHandler) Respond(c *gin.Context, err error) {
	stdErr := Normalize(err)
	status := HTTPStatus(stdErr.Code)

	fields := map[string]interface{}{
		"code":    string(stdErr.Code),
		"status":  status,
		"path":    c.FullPath(),
		"details": stdErr.Details,
	}
	if status >= 500 {
		h.logger.Error("request failed", fields)
	} else {
		h.logger.Warn("request rejected", fields)
	}

	body := gin.H{"error": stdErr.Message, "code": string(stdErr.Code)}
	if status < 500 && stdErr.Details != "" {
		body["details"] = stdErr.Details
	}
	c.AbortWithStatusJSON(status, body)
}
