package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		// Add metadata if present
		if len(customErr.Meta) > 0 {
			details := &ErrorDetails{
				Code:    string(customErr.Code),
				Message: customErr.Message,
				Meta:    customErr.Meta,
			}
			st, _ = st.WithDetails(details)
		}

		return st.Err()
	}

	// Default to unknown error
	return status.Error(codes.Unknown, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	// Map gRPC code to our code
	code := grpcCodeToCode(st.Code())

	// Create base error
	customErr := &Error{
		Code:    code,
		Message: st.Message(),
	}

	// Extract details if present
	for _, detail := range st.Details() {
		if errDetails, ok := detail.(*ErrorDetails); ok {
			customErr.Meta = errDetails.Meta
			break
		}
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	// Check if it's already a gRPC status
	if st, ok := status.FromError(err); ok {
		return st
	}

	// Check if it's our custom error
	var customErr *Error
	if As(err, &customErr) {
		return status.New(customErr.Code.GRPCCode(), customErr.Message)
	}

	// Default to unknown error
	return status.New(codes.Unknown, err.Error())
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeInvalidInput:
		return codes.InvalidArgument
	case CodeLimitExceeded:
		return codes.OutOfRange
	case CodePresetNotFound:
		return codes.NotFound
	case CodeDiceRollFailed:
		return codes.Internal
	case CodeCalculationFailed:
		return codes.Unknown
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.InvalidArgument:
		return CodeInvalidInput
	case codes.OutOfRange:
		return CodeLimitExceeded
	case codes.NotFound:
		return CodePresetNotFound
	case codes.Internal:
		return CodeDiceRollFailed
	default:
		return CodeCalculationFailed
	}
}

// ErrorDetails is a protobuf-compatible structure for error metadata
// This would typically be generated from a .proto file
type ErrorDetails struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Reset implements proto.Message (stub for now)
func (e *ErrorDetails) Reset() {}

// String implements proto.Message (stub for now)
func (e *ErrorDetails) String() string {
	return e.Message
}

// ProtoMessage implements proto.Message (stub for now)
func (e *ErrorDetails) ProtoMessage() {}
