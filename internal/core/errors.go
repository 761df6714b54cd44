// Package core provides shared types and the error taxonomy for the
// profile evaluation service.
package core

import (
	"fmt"
	"net/http"
)

// ErrorType classifies an error for HTTP mapping and logging.
type ErrorType string

const (
	// ErrorTypeValidation indicates a malformed or incomplete request (400).
	ErrorTypeValidation ErrorType = "validation_error"
	// ErrorTypeAuthentication indicates failed admin credentials (401).
	ErrorTypeAuthentication ErrorType = "authentication_error"
	// ErrorTypeNotFound indicates a missing cache entry or submission (404).
	ErrorTypeNotFound ErrorType = "not_found_error"
	// ErrorTypeGeneration indicates the narrative generation step failed (502).
	ErrorTypeGeneration ErrorType = "generation_error"
	// ErrorTypeStorage indicates a backing-store failure that could not be
	// absorbed by the cache layer (500).
	ErrorTypeStorage ErrorType = "storage_error"
	// ErrorTypeConfiguration indicates invalid startup configuration (500).
	ErrorTypeConfiguration ErrorType = "configuration_error"
)

// AppError is the base error type for all service errors.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	// Field names the offending request field for validation errors.
	Field string `json:"field,omitempty"`
	// Original error for debugging (not exposed to clients)
	Err error `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.Type, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the appropriate HTTP status code for this error
func (e *AppError) HTTPStatusCode() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeAuthentication:
		return http.StatusUnauthorized
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON converts the error to the wire shape. Backing-store detail is never
// included; end users see only the type and message.
func (e *AppError) ToJSON() map[string]interface{} {
	inner := map[string]interface{}{
		"type":    e.Type,
		"message": e.Message,
	}
	if e.Field != "" {
		inner["field"] = e.Field
	}
	return map[string]interface{}{"error": inner}
}

// NewValidationError creates a validation error naming the failed field.
func NewValidationError(field, message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, Field: field}
}

// NewAuthenticationError creates an authentication error (401).
func NewAuthenticationError(message string) *AppError {
	return &AppError{Type: ErrorTypeAuthentication, Message: message}
}

// NewNotFoundError creates a not found error (404).
func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

// NewGenerationError creates an error for a failed narrative generation step.
func NewGenerationError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeGeneration, Message: message, Err: err}
}

// NewStorageError creates an error for an unabsorbed backing-store failure.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeStorage, Message: message, Err: err}
}

// NewConfigurationError creates a fatal startup configuration error.
func NewConfigurationError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeConfiguration, Message: message, Err: err}
}
