package errs_test

import (
	"errors"
	"testing"

	"schoollunch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "7d3c")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "7d3c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7d3c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("studentId", "user_42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: studentId, ID is: user_42 (cause: connection reset)",
			err.Error())
	})

	t.Run("non string ids are printed with their value", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("grade", 3)
		assert.Equal(t, "object not found: 3", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("deliveryDate")
	assert.Equal(t, "value is invalid: deliveryDate", err.Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())

	withCause := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not greater than 0"))
	assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", withCause.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("message lists bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("grade", 4, 1, 3)

		assert.Equal(t, 4, err.Value)
		assert.Equal(t, "value is invalid: 4 is grade, min value is 1, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("cause is appended", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("grade", 0, 1, 3, errors.New("bulk update"))
		assert.Equal(t, "value is invalid: 0 is grade, min value is 1, max value is 3 (cause: bulk update)", err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("className", "A\nB", 0, 10)
		assert.Contains(t, err.Error(), "A B")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("studentId")
	assert.Equal(t, "value is required: studentId", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("deliveryDate", errors.New("bulk delete by date"))
	assert.Equal(t, "value is required: deliveryDate (cause: bulk delete by date)", withCause.Error())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("user_42", "cancel order 7d3c")

	assert.Equal(t, "forbidden: user_42 may not cancel order 7d3c", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("lines"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("grade", 9, 1, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, errors.Join(errs.NewObjectNotFoundError("orderId", "x")), &notFound)
	assert.Equal(t, "orderId", notFound.ParamName)
}
