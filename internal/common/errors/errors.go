// Package errors provides standardized error handling for the giftwise API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigurationMissing ErrorCode = "CONFIGURATION_MISSING"
	ErrCodeGeminiAPIFailed      ErrorCode = "GEMINI_API_FAILED"
	ErrCodeEmptyResponse        ErrorCode = "EMPTY_RESPONSE"
	ErrCodePersistenceFailed    ErrorCode = "PERSISTENCE_FAILED"

	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeNotAuthenticated   ErrorCode = "NOT_AUTHENTICATED"
	ErrCodeNotAuthorized      ErrorCode = "NOT_AUTHORIZED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeDuplicateUser      ErrorCode = "DUPLICATE_USER"
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeGiftNotFound       ErrorCode = "GIFT_NOT_FOUND"
	ErrCodeInvalidResetToken  ErrorCode = "INVALID_RESET_TOKEN"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeSearchQueryFailed        ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeSessionStoreFailed       ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeNotificationSendFailed   ErrorCode = "NOTIFICATION_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigurationMissingError creates a fatal configuration error. It is
// surfaced to the operator at startup, never to an end user.
func NewConfigurationMissingError(setting string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationMissing,
		Message:   "Required configuration is missing",
		Details:   fmt.Sprintf("setting: %s", setting),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeminiAPIFailedError creates a recoverable upstream error. The
// recommendation path recovers by falling back to the static catalog.
func NewGeminiAPIFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGeminiAPIFailed,
		Message:   "Gemini API request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyResponseError indicates the model returned no usable text.
func NewEmptyResponseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyResponse,
		Message:   "No text generated by the model",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPersistenceFailedError is logged, never surfaced: persistence of a
// recommendation is best-effort.
func NewPersistenceFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePersistenceFailed,
		Message:   "Failed to persist recommendation",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable input validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotAuthenticatedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNotAuthenticated,
		Message:   "Not authenticated",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotAuthorizedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNotAuthorized,
		Message:   "Not authorized",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidCredentialsError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCredentials,
		Message:   "Invalid email or password",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewDuplicateUserError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateUser,
		Message:   "Email already in use",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewUserNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUserNotFound,
		Message:   "User not found",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewGiftNotFoundError(giftID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGiftNotFound,
		Message:   "Gift not found",
		Details:   fmt.Sprintf("giftId: %s", giftID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidResetTokenError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidResetToken,
		Message:   "Invalid or expired reset link",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchQueryFailedError creates a retryable document search error.
func NewSearchQueryFailedError(operation string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "Elasticsearch query error",
		Details:   fmt.Sprintf("operation: %s, error: %s", operation, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Session store error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// httpStatusMapping maps internal error codes to HTTP status codes.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeValidationFailed:   http.StatusBadRequest,
	ErrCodeInvalidResetToken:  http.StatusBadRequest,
	ErrCodeNotAuthenticated:   http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeNotAuthorized:      http.StatusForbidden,
	ErrCodeUserNotFound:       http.StatusNotFound,
	ErrCodeGiftNotFound:       http.StatusNotFound,
	ErrCodeDuplicateUser:      http.StatusConflict,

	ErrCodeDatabaseConnectionFailed: http.StatusServiceUnavailable,
	ErrCodeQueryExecutionFailed:     http.StatusInternalServerError,
	ErrCodeSearchQueryFailed:        http.StatusInternalServerError,
	ErrCodeSessionStoreFailed:       http.StatusInternalServerError,
	ErrCodeNotificationSendFailed:   http.StatusInternalServerError,

	// Recommendation-path codes never reach a client directly: the
	// orchestrator degrades to the catalog instead. Mapped anyway so a
	// misrouted error still produces a sane status.
	ErrCodeConfigurationMissing: http.StatusInternalServerError,
	ErrCodeGeminiAPIFailed:      http.StatusBadGateway,
	ErrCodeEmptyResponse:        http.StatusBadGateway,
	ErrCodePersistenceFailed:    http.StatusInternalServerError,

	ErrCodeInternal: http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, exists := httpStatusMapping[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// Normalize ensures any error is a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}

// IsCode reports whether err is a StandardError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	stdErr, ok := err.(*StandardError)
	return ok && stdErr.Code == code
}
