package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
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
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "profile not found",
			expected: "NOT_FOUND: profile not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "run is not in intermission",
			expected: "FAILED_PRECONDITION: run is not in intermission",
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

func (s *ErrorsTestSuite) TestWithMetaAndLogArgs() {
	err := errors.ResourceExhausted("not enough currency").
		WithMeta("cost", 12).
		WithMeta("balance", 7)

	s.Assert().Equal(12, err.Meta["cost"])
	s.Assert().Equal(7, err.Meta["balance"])

	args := err.LogArgs()
	s.Require().Len(args, 8)
	s.Assert().Equal("code", args[0])
	s.Assert().Equal("RESOURCE_EXHAUSTED", args[1])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load profile")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load profile", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	notFound := errors.NotFoundf("run %s not found", "run_1")
	wrapped := errors.Wrapf(notFound, "select upgrade for %s", "run_1")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
	s.Assert().True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("boom"), errors.CodeUnavailable, "redis down")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().True(wrapped.Code.Retryable())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestConstructors() {
	testCases := []struct {
		name  string
		err   *errors.Error
		code  errors.Code
		check func(error) bool
	}{
		{"not found", errors.NotFound("x"), errors.CodeNotFound, errors.IsNotFound},
		{"invalid argument", errors.InvalidArgumentf("bad %d", 1), errors.CodeInvalidArgument, errors.IsInvalidArgument},
		{"already exists", errors.AlreadyExists("x"), errors.CodeAlreadyExists, errors.IsAlreadyExists},
		{"failed precondition", errors.FailedPreconditionf("x %s", "y"), errors.CodeFailedPrecondition, errors.IsFailedPrecondition},
		{"resource exhausted", errors.ResourceExhaustedf("x %d", 2), errors.CodeResourceExhausted, errors.IsResourceExhausted},
		{"internal", errors.Internalf("x %s", "y"), errors.CodeInternal, errors.IsInternal},
		{"unavailable", errors.Unavailable("x"), errors.CodeUnavailable, errors.IsUnavailable},
		{"canceled", errors.Canceled("x"), errors.CodeCanceled, errors.IsCanceled},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().True(tc.check(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
}

func (s *ErrorsTestSuite) TestGetMessageAndMeta() {
	err := errors.NotFound("profile missing").WithMeta("player_id", "p1")

	s.Assert().Equal("profile missing", errors.GetMessage(err))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("p1", errors.GetMeta(err)["player_id"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
}
