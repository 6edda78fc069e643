package main

import "fmt"

type ErrorKind int

const (
	ErrorBadRequest ErrorKind = iota
	ErrorUnauthorized
	ErrorServiceUnavailable
	ErrorValidation
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the only error type the pipeline produces on purpose.
// Anything else reaching the boundary is treated as an internal error.
type AppError struct {
	Kind    ErrorKind
	Message string
	Code    string
	Details []FieldError
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case ErrorBadRequest:
		return 400
	case ErrorUnauthorized:
		return 401
	case ErrorValidation:
		return 422
	case ErrorServiceUnavailable:
		return 503
	}
	return 500
}

func badRequestError(message string) *AppError {
	return &AppError{Kind: ErrorBadRequest, Message: message, Code: "BAD_REQUEST"}
}

func unauthorizedError(message string, cause error) *AppError {
	return &AppError{Kind: ErrorUnauthorized, Message: message, Code: "UNAUTHORIZED", cause: cause}
}

func serviceUnavailableError(message string, cause error) *AppError {
	return &AppError{Kind: ErrorServiceUnavailable, Message: message, Code: "SERVICE_UNAVAILABLE", cause: cause}
}

func validationError(details []FieldError) *AppError {
	return &AppError{
		Kind:    ErrorValidation,
		Message: "Validation Error",
		Code:    "VALIDATION_ERROR",
		Details: details,
	}
}
