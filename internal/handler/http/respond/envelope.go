package respond

import (
	"clinic-records/internal/common/apperror"
	"clinic-records/internal/common/pagination"
)

// ErrorBody is the structured error carried by error envelopes.
type ErrorBody struct {
	Code    apperror.Code `json:"code"`
	Details string        `json:"details"`
}

// APIResponse is the success envelope for single values and plain lists.
type APIResponse[T any] struct {
	Success   bool       `json:"success"`
	Status    int        `json:"status"`
	Message   string     `json:"message"`
	Data      T          `json:"data"`
	Error     *ErrorBody `json:"error,omitempty"`
	Timestamp string     `json:"timestamp"`
}

// PaginatedResponse is the success envelope for one page of a collection.
type PaginatedResponse[T any] struct {
	Success    bool                `json:"success"`
	Status     int                 `json:"status"`
	Message    string              `json:"message"`
	Data       []T                 `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
	Timestamp  string              `json:"timestamp"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// Success builds a success envelope. It never carries an error field.
func Success[T any](status int, message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success:   true,
		Status:    status,
		Message:   message,
		Data:      data,
		Timestamp: Timestamp(),
	}
}

// Paginated builds a paginated envelope. Data keeps the order it was given
// in; a nil slice is rendered as an empty array.
func Paginated[T any](status int, message string, data []T, meta pagination.Metadata) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Success:    true,
		Status:     status,
		Message:    message,
		Data:       data,
		Pagination: meta,
		Timestamp:  Timestamp(),
	}
}

// Failure builds an error envelope. When details is empty the message is
// used as details.
func Failure(status int, code apperror.Code, message, details string) ErrorResponse {
	if details == "" {
		details = message
	}
	return ErrorResponse{
		Success:   false,
		Status:    status,
		Message:   message,
		Error:     ErrorBody{Code: code, Details: details},
		Timestamp: Timestamp(),
	}
}
