package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of launcher errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"   // Configuration could not be loaded, permanent
	ErrorTypeSpawn      ErrorType = "spawn"    // Terminal emulator missing or not startable
	ErrorTypeKill       ErrorType = "kill"     // Termination signal rejected by the OS
	ErrorTypeLiveness   ErrorType = "liveness" // Liveness query failed, handle lost
	ErrorTypeInternal   ErrorType = "internal"
)

// DomainError represents a structured error with type and context
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError of the same type
func (e *DomainError) Is(target error) bool {
	if other, ok := target.(*DomainError); ok {
		return e.Type == other.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func NewDomainError(errorType ErrorType, message string, cause error) *DomainError {
	return &DomainError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

func NewValidationError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeValidation, message, cause)
}

func NewIOError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeIO, message, cause)
}

// NewConfigLoadError marks a configuration that could not be read or parsed.
// It disables every launch request for the lifetime of the application.
func NewConfigLoadError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeConfig, message, cause)
}

func NewSpawnError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeSpawn, message, cause)
}

func NewKillError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeKill, message, cause)
}

func NewLivenessCheckError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeLiveness, message, cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewDomainError(ErrorTypeInternal, message, cause)
}

// isType reports whether any DomainError in the chain has the given type
func isType(err error, errorType ErrorType) bool {
	return errors.Is(err, &DomainError{Type: errorType})
}

func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsIOError(err error) bool {
	return isType(err, ErrorTypeIO)
}

func IsConfigLoadError(err error) bool {
	return isType(err, ErrorTypeConfig)
}

func IsSpawnError(err error) bool {
	return isType(err, ErrorTypeSpawn)
}

func IsKillError(err error) bool {
	return isType(err, ErrorTypeKill)
}

func IsLivenessCheckError(err error) bool {
	return isType(err, ErrorTypeLiveness)
}

func IsInternalError(err error) bool {
	return isType(err, ErrorTypeInternal)
}

// ContextValue returns a context value from the outermost DomainError in the chain
func ContextValue(err error, key string) (interface{}, bool) {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Context == nil {
		return nil, false
	}
	value, ok := domainErr.Context[key]
	return value, ok
}
