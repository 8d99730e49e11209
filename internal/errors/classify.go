package errors

import "net/http"

// FromStatus maps an HTTP response status to an AppError.
// It is the single place where wire statuses become the client's error taxonomy.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusUnauthorized:
		return &AppError{Code: ErrCodeUnauthorized, Message: message, Status: status}
	case http.StatusForbidden:
		return &AppError{Code: ErrCodeForbidden, Message: message, Status: status}
	case http.StatusNotFound:
		return &AppError{Code: ErrCodeNotFound, Message: message, Status: status}
	case http.StatusConflict:
		return &AppError{Code: ErrCodeConflict, Message: message, Status: status}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &AppError{Code: ErrCodeValidation, Message: message, Status: status}
	default:
		return &AppError{Code: ErrCodeInternal, Message: message, Status: status}
	}
}
