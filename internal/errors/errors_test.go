package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-apparel/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	s.Equal("NOT_FOUND: placement not found", errors.NotFound("placement not found").Error())

	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to load placement")
	s.Equal("INTERNAL: failed to load placement: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.DataLoss("unknown item").
		WithMeta("character_id", "char_1").
		WithMeta("item_id", "daedric_boots")

	s.Equal("char_1", err.Meta["character_id"])
	s.Equal("daedric_boots", err.Meta["item_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	testCases := []struct {
		name     string
		cause    error
		wantCode errors.Code
	}{
		{
			name:     "plain error becomes internal",
			cause:    fmt.Errorf("redis down"),
			wantCode: errors.CodeInternal,
		},
		{
			name:     "structured error keeps its code",
			cause:    errors.NotFound("no placement"),
			wantCode: errors.CodeNotFound,
		},
		{
			name:     "data loss survives wrapping",
			cause:    errors.DataLossf("unknown item %s", "x"),
			wantCode: errors.CodeDataLoss,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			wrapped := errors.Wrapf(tc.cause, "loading %s", "char_1")

			s.Equal(tc.wantCode, wrapped.Code)
			s.Equal("loading char_1", wrapped.Message)
			s.Equal(tc.cause, wrapped.Unwrap())
			s.Equal(tc.wantCode, errors.GetCode(wrapped))
		})
	}
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestHelpers() {
	notFound := errors.Wrap(errors.NotFound("x"), "wrapped")

	s.True(errors.IsNotFound(notFound))
	s.False(errors.IsInvalidArgument(notFound))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad %s", "position")))
	s.True(errors.IsDataLoss(errors.DataLoss("x")))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal("wrapped", errors.GetMessage(notFound))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{"not found", errors.NotFound("placement not found"), codes.NotFound, "placement not found"},
		{"invalid argument", errors.InvalidArgument("item_id is required"), codes.InvalidArgument, "item_id is required"},
		{"data loss", errors.DataLoss("corrupt"), codes.DataLoss, "corrupt"},
		{"plain error", fmt.Errorf("boom"), codes.Internal, "boom"},
		{"already a status", status.Error(codes.Unavailable, "down"), codes.Unavailable, "down"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.wantCode, st.Code())
			s.Equal(tc.wantMsg, st.Message())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid position"))

	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Equal("invalid position", errors.GetMessage(err))

	plain := fmt.Errorf("not grpc")
	s.Equal(plain, errors.FromGRPCError(plain))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeRoundTrip() {
	for _, code := range []errors.Code{
		errors.CodeNotFound,
		errors.CodeInvalidArgument,
		errors.CodeFailedPrecondition,
		errors.CodeInternal,
		errors.CodeUnavailable,
		errors.CodeDataLoss,
	} {
		s.Run(code.String(), func() {
			err := errors.FromGRPCError(status.Error(code.GRPCCode(), "x"))
			s.Equal(code, errors.GetCode(err))
		})
	}

	s.Equal(codes.Unknown, errors.Code("BOGUS").GRPCCode())
}
