package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes. The set is closed: every failure the damage service can
// surface carries exactly one of these.
const (
	// CodeOK is the sentinel for a nil error.
	CodeOK Code = "OK"
	// CodeInvalidInput marks a field that failed a type, shape, or sign check.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeLimitExceeded marks a field that exceeded a configured bound.
	CodeLimitExceeded Code = "LIMIT_EXCEEDED"
	// CodePresetNotFound marks a preset name absent from the catalog.
	CodePresetNotFound Code = "PRESET_NOT_FOUND"
	// CodeDiceRollFailed marks a failure of the roll primitive itself.
	CodeDiceRollFailed Code = "DICE_ROLL_FAILED"
	// CodeCalculationFailed is the catch-all wrapping unexpected failures.
	CodeCalculationFailed Code = "CALCULATION_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeLimitExceeded:
		return http.StatusBadRequest
	case CodePresetNotFound:
		return http.StatusNotFound
	case CodeDiceRollFailed:
		return http.StatusInternalServerError
	case CodeCalculationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
