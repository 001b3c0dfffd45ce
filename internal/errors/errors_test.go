package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "preset not found error",
			code:     errors.CodePresetNotFound,
			message:  "preset not found",
			expected: "PRESET_NOT_FOUND: preset not found",
		},
		{
			name:     "invalid input error",
			code:     errors.CodeInvalidInput,
			message:  "invalid dice count",
			expected: "INVALID_INPUT: invalid dice count",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.PresetNotFound("preset not found").
		WithMeta("preset_name", "longsword").
		WithMeta("calculation_id", "calc-456")

	s.Assert().Equal("longsword", err.Meta["preset_name"])
	s.Assert().Equal("calc-456", err.Meta["calculation_id"])

	// Test WithMetaMap
	err2 := errors.CalculationFailed("calculation error").
		WithMetaMap(map[string]interface{}{
			"dice_count": 4,
			"die_type":   "d6",
		})

	s.Assert().Equal(4, err2.Meta["dice_count"])
	s.Assert().Equal("d6", err2.Meta["die_type"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection failed")
	wrapped := errors.Wrap(baseErr, "failed to get preset")

	s.Assert().Equal(errors.CodeCalculationFailed, wrapped.Code)
	s.Assert().Equal("failed to get preset", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.PresetNotFound("record not found")
	wrapped := errors.Wrap(baseErr, "preset not found")

	s.Assert().Equal(errors.CodePresetNotFound, wrapped.Code)
	s.Assert().Equal("preset not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("roller exhausted")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeDiceRollFailed, "dice roll failed")

	s.Assert().Equal(errors.CodeDiceRollFailed, wrapped.Code)
	s.Assert().Equal("dice roll failed", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodePresetNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"InvalidInput", func() *errors.Error { return errors.InvalidInput("test") }, errors.CodeInvalidInput},
		{"LimitExceeded", func() *errors.Error { return errors.LimitExceeded("test") }, errors.CodeLimitExceeded},
		{"PresetNotFound", func() *errors.Error { return errors.PresetNotFound("test") }, errors.CodePresetNotFound},
		{"DiceRollFailed", func() *errors.Error { return errors.DiceRollFailed("test") }, errors.CodeDiceRollFailed},
		{"CalculationFailed", func() *errors.Error { return errors.CalculationFailed("test") }, errors.CodeCalculationFailed},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.PresetNotFoundf("preset %q not found", "flamestrike")
	s.Assert().Equal(errors.CodePresetNotFound, err.Code)
	s.Assert().Equal(`preset "flamestrike" not found`, err.Message)

	err2 := errors.InvalidInputf("invalid dice count: %d", -3)
	s.Assert().Equal(errors.CodeInvalidInput, err2.Code)
	s.Assert().Equal("invalid dice count: -3", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.PresetNotFound("test")
	err2 := errors.PresetNotFound("test")
	err3 := errors.InvalidInput("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.PresetNotFound("test")
	invalidErr := errors.InvalidInput("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsPresetNotFound(notFoundErr))
	s.Assert().True(errors.IsPresetNotFound(wrappedErr))
	s.Assert().False(errors.IsPresetNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidInput(invalidErr))
	s.Assert().False(errors.IsInvalidInput(notFoundErr))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.PresetNotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodePresetNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodePresetNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeCalculationFailed, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.PresetNotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.PresetNotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeInvalidInput, 400},
		{errors.CodeLimitExceeded, 400},
		{errors.CodePresetNotFound, 404},
		{errors.CodeDiceRollFailed, 500},
		{errors.CodeCalculationFailed, 400},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	// Test ToGRPCError
	err := errors.PresetNotFound("preset not found").
		WithMeta("preset_name", "longsword")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("preset not found", st.Message())

	// Test FromGRPCError
	grpcErr2 := status.Error(codes.InvalidArgument, "invalid input")
	err2 := errors.FromGRPCError(grpcErr2)
	s.Assert().Equal(errors.CodeInvalidInput, errors.GetCode(err2))
	s.Assert().Equal("invalid input", errors.GetMessage(err2))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeInvalidInput, codes.InvalidArgument},
		{errors.CodeLimitExceeded, codes.OutOfRange},
		{errors.CodePresetNotFound, codes.NotFound},
		{errors.CodeDiceRollFailed, codes.Internal},
		{errors.CodeCalculationFailed, codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
