package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap adds multiple metadata entries
func (e *Error) WithMetaMap(meta map[string]interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	for k, v := range meta {
		e.Meta[k] = v
	}
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error.
// Foreign errors surface as the calculation catch-all with the original
// message preserved in the cause chain.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeCalculationFailed,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]interface{})
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		for k, v := range existingErr.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// Constructor functions for the closed taxonomy

// InvalidInput creates an invalid input error
func InvalidInput(message string) *Error {
	return New(CodeInvalidInput, message)
}

// InvalidInputf creates an invalid input error with formatted message
func InvalidInputf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidInput, format, args...)
}

// LimitExceeded creates a limit exceeded error
func LimitExceeded(message string) *Error {
	return New(CodeLimitExceeded, message)
}

// LimitExceededf creates a limit exceeded error with formatted message
func LimitExceededf(format string, args ...interface{}) *Error {
	return Newf(CodeLimitExceeded, format, args...)
}

// PresetNotFound creates a preset not found error
func PresetNotFound(message string) *Error {
	return New(CodePresetNotFound, message)
}

// PresetNotFoundf creates a preset not found error with formatted message
func PresetNotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodePresetNotFound, format, args...)
}

// DiceRollFailed creates a dice roll failure error
func DiceRollFailed(message string) *Error {
	return New(CodeDiceRollFailed, message)
}

// DiceRollFailedf creates a dice roll failure error with formatted message
func DiceRollFailedf(format string, args ...interface{}) *Error {
	return Newf(CodeDiceRollFailed, format, args...)
}

// CalculationFailed creates a calculation failure error
func CalculationFailed(message string) *Error {
	return New(CodeCalculationFailed, message)
}

// CalculationFailedf creates a calculation failure error with formatted message
func CalculationFailedf(format string, args ...interface{}) *Error {
	return Newf(CodeCalculationFailed, format, args...)
}
