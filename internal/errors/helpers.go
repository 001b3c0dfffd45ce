package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeCalculationFailed
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsInvalidInput checks if an error is an invalid input error
func IsInvalidInput(err error) bool {
	return GetCode(err) == CodeInvalidInput
}

// IsLimitExceeded checks if an error is a limit exceeded error
func IsLimitExceeded(err error) bool {
	return GetCode(err) == CodeLimitExceeded
}

// IsPresetNotFound checks if an error is a preset not found error
func IsPresetNotFound(err error) bool {
	return GetCode(err) == CodePresetNotFound
}

// IsDiceRollFailed checks if an error is a dice roll failure error
func IsDiceRollFailed(err error) bool {
	return GetCode(err) == CodeDiceRollFailed
}

// IsCalculationFailed checks if an error is a calculation failure error
func IsCalculationFailed(err error) bool {
	return GetCode(err) == CodeCalculationFailed
}
