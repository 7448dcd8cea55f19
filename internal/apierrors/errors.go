package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput         = "INVALID_INPUT"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeCampaignNotFound     = "CAMPAIGN_NOT_FOUND"
	CodeCampaignNotEditable  = "CAMPAIGN_NOT_EDITABLE"
	CodeCampaignNotCancel    = "CAMPAIGN_NOT_CANCELLABLE"
	CodeEmptyAudience        = "EMPTY_AUDIENCE"
	CodeInvalidSchedule      = "INVALID_SCHEDULE"
	CodeEmailNotFound        = "SCHEDULED_EMAIL_NOT_FOUND"
	CodeEmailNotEditable     = "SCHEDULED_EMAIL_NOT_EDITABLE"
	CodeInvalidRecipient     = "INVALID_RECIPIENT"
	CodeInvalidBatchSize     = "INVALID_BATCH_SIZE"
	CodeTaskNotFound         = "TASK_NOT_FOUND"
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
	CodeMailAccountNotLinked = "MAIL_ACCOUNT_NOT_LINKED"
	CodeReconnectRequired    = "MAIL_ACCOUNT_RECONNECT_REQUIRED"
	CodeInvalidState         = "INVALID_STATE"
	CodeMailProviderRejected = "MAIL_PROVIDER_REJECTED"
	CodeMailProviderError    = "MAIL_PROVIDER_ERROR"
	CodeEmailServiceError    = "EMAIL_SERVICE_ERROR"
	CodeRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
)

// APIError is an error with the HTTP status and client-safe message it maps to
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newAPIError(statusCode int, code, message string, err error) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message, Err: err}
}

func NotFound(code, message string) *APIError {
	return newAPIError(http.StatusNotFound, code, message, nil)
}

func BadRequest(code, message string) *APIError {
	return newAPIError(http.StatusBadRequest, code, message, nil)
}

func Unauthorized(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func Forbidden(message string) *APIError {
	return newAPIError(http.StatusForbidden, CodeForbidden, message, nil)
}

func Conflict(code, message string) *APIError {
	return newAPIError(http.StatusConflict, code, message, nil)
}

// ServiceUnavailable keeps the cause for logging; it is never sent to the client
func ServiceUnavailable(code, message string, err error) *APIError {
	return newAPIError(http.StatusServiceUnavailable, code, message, err)
}

// InternalError is a sanitized 500 - never exposes internal details
func TooManyRequests(message string) *APIError {
	return newAPIError(http.StatusTooManyRequests, CodeRateLimitExceeded, message, nil)
}

func InternalError(err error) *APIError {
	return newAPIError(http.StatusInternalServerError, CodeInternalError, "An internal error occurred. Please try again later.", err)
}
