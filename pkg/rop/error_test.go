package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFactories_Defaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  Error
		msg  string
		code Code
	}{
		{"failure", Failure(), "Operation failure.", CodeFailure},
		{"validation", Validation(), "Validation error.", CodeValidation},
		{"not found", NotFound(), "The requested resource was not found.", CodeNotFound},
		{"creation", Creation(), "Failed to create a resource.", CodeCreation},
		{"conflict", Conflict("dup"), "dup", CodeConflict},
		{"unauthorized", Unauthorized(), "The user is not logged in.", CodeUnauthorized},
		{"forbidden", Forbidden(), "Access is denied.", CodeForbidden},
		{"internal", InternalServerError(), "Internal server error", CodeInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.msg, tc.err.Message)
			assert.Equal(t, tc.code, tc.err.Code)
		})
	}
}

func TestError_CustomMessageAndEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "user 7", NotFound("user 7").Message)
	assert.Equal(t, NewError("x", CodeGone), NewError("x", CodeGone))
	assert.NotEqual(t, NewError("x"), NewError("x", CodeGone))
	assert.Equal(t, CodeFailure, NewError("x").Code)
	assert.Equal(t, "x", NewError("x").Error())
	assert.Equal(t, "NotFound: user 7", NotFound("user 7").String())
}

func TestCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ImATeapot", CodeImATeapot.String())
	assert.Equal(t, "Code(999)", Code(999).String())
	assert.True(t, CodeNetworkAuthenticationRequired.IsHTTP())
	assert.False(t, CodeValidation.IsHTTP())
	assert.False(t, Code(306).IsKnown())
}
