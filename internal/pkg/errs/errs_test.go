package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("truck_id", "17")

		assert.Equal(t, "truck_id", err.ParamName)
		assert.Equal(t, "17", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 17", err.Error())
	})

	t.Run("with cause includes param and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("package_id", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: package_id, ID is: 42 (cause: connection reset)",
			err.Error())
	})

	t.Run("unwraps to the sentinel, not the cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("package_id", "42", cause)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.NotErrorIs(t, err, cause)
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid value", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "value is invalid: weight", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("required value with cause", func(t *testing.T) {
		cause := errors.New("field absent in request body")
		err := errs.NewValueIsRequiredErrorWithCause("owner", cause)

		assert.Equal(t, "value is required: owner (cause: field absent in request body)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("out of range reports value and bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("length", 0, 1, 100)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: 0 is length, min value is 1, max value is 100", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestErrorsAs(t *testing.T) {
	t.Run("typed error survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading truck: %w", errs.NewObjectNotFoundError("truck_id", "17"))

		var notFoundErr *errs.ObjectNotFoundError
		require.ErrorAs(t, wrapped, &notFoundErr)
		assert.Equal(t, "truck_id", notFoundErr.ParamName)
	})

	t.Run("sentinel survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parsing weight: %w", errs.NewValueIsInvalidError("weight"))

		require.ErrorIs(t, wrapped, errs.ErrValueIsInvalid)
	})
}

func TestMessagesStayOnOneLine(t *testing.T) {
	t.Run("newlines in the cause collapse to spaces", func(t *testing.T) {
		cause := errors.New("syntax error\nat line 3\nnear SELECT")
		err := errs.NewValueIsInvalidErrorWithCause("query", cause)

		assert.Equal(t,
			"value is invalid: query (cause: syntax error at line 3 near SELECT)",
			err.Error())
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("carriage returns collapse too", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("truck_id", "17\r\n18")

		assert.Equal(t, "object not found: 17  18", err.Error())
		assert.NotContains(t, err.Error(), "\r")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("newlines in the parameter name collapse", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("owner\nauth_id")

		assert.Equal(t, "value is required: owner auth_id", err.Error())
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
