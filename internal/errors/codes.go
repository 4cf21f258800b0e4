package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidKind   ErrorCode = "TRANSACTION_003"
)

// Webhook error codes (WEBHOOK_*)
const (
	WebhookVerificationFailed ErrorCode = "WEBHOOK_001"
	WebhookMalformedPayload   ErrorCode = "WEBHOOK_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "A required field is missing",
	ValidationInvalidFormat: "A field has an invalid format",
	ValidationInvalidDate:   "Invalid date format, expected YYYY-MM-DD",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be a non-negative number",
	TransactionInvalidKind:   "Transaction kind must be 'income' or 'expense'",

	WebhookVerificationFailed: "Webhook verification failed",
	WebhookMalformedPayload:   "Webhook payload could not be parsed",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// httpStatusCodes maps error codes to HTTP status codes
var httpStatusCodes = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,

	TransactionNotFound:      http.StatusNotFound,
	TransactionInvalidAmount: http.StatusBadRequest,
	TransactionInvalidKind:   http.StatusBadRequest,

	WebhookVerificationFailed: http.StatusForbidden,
	WebhookMalformedPayload:   http.StatusBadRequest,

	SystemInternalError:      http.StatusInternalServerError,
	SystemDatabaseError:      http.StatusInternalServerError,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return "An unexpected error occurred"
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusCodes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
