package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("EMAG_USERNAME")

		assert.Equal(t, "EMAG_USERNAME", err.ParamName)
		assert.Equal(t, "value is required: EMAG_USERNAME", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestTransportError(t *testing.T) {
	t.Run("NewTransportError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewTransportError("order/read", cause)

		assert.Equal(t, "order/read", err.Op)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "transport failure: order/read (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrTransport, err.Unwrap())
	})

	t.Run("nil cause", func(t *testing.T) {
		err := errs.NewTransportError("awb/save", nil)
		assert.Equal(t, "transport failure: awb/save", err.Error())
	})
}

func TestAuthError(t *testing.T) {
	err := errs.NewAuthError("order/read", 401)

	assert.Equal(t, 401, err.StatusCode)
	assert.Equal(t, "authentication failure: order/read (status: 401)", err.Error())
	assert.Equal(t, errs.ErrAuth, err.Unwrap())
	require.ErrorIs(t, err, errs.ErrAuth)
}

func TestValidationError(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := errs.NewValidationError("shipping_locality_id")

		assert.Equal(t, "shipping_locality_id", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "validation failure: shipping_locality_id", err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})

	t.Run("NewValidationErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid syntax")
		err := errs.NewValidationErrorWithCause("shipping_locality_id", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"validation failure: shipping_locality_id (cause: invalid syntax)",
			err.Error())
		assert.Equal(t, errs.ErrValidation, err.Unwrap())
	})
}

func TestUpstreamBusinessError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := errs.NewUpstreamBusinessError("403061234", "insufficient balance")

		assert.Equal(t, "403061234", err.OrderID)
		assert.Equal(t,
			"upstream business failure: order 403061234: insufficient balance",
			err.Error())
		assert.Equal(t, errs.ErrUpstreamBusiness, err.Unwrap())
	})

	t.Run("empty message defaults to unknown", func(t *testing.T) {
		err := errs.NewUpstreamBusinessError("403061234", "")
		assert.Equal(t, "unknown", err.Message)
		assert.Contains(t, err.Error(), "unknown")
	})

	t.Run("empty order id is omitted from the message", func(t *testing.T) {
		err := errs.NewUpstreamBusinessError("", "response flagged as error")
		assert.Equal(t, "upstream business failure: response flagged as error", err.Error())
	})
}

func TestUploadError(t *testing.T) {
	cause := errors.New("permission denied")
	err := errs.NewUploadErrorWithCause("/upload/403061234.pdf", cause)

	assert.Equal(t, "/upload/403061234.pdf", err.Path)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t,
		"upload failure: /upload/403061234.pdf (cause: permission denied)",
		err.Error())
	assert.Equal(t, errs.ErrUpload, err.Unwrap())
}

func TestUnexpectedError(t *testing.T) {
	cause := errors.New("boom")
	err := errs.NewUnexpectedErrorWithCause("archive upload", cause)

	assert.Equal(t, "unexpected failure: archive upload (cause: boom)", err.Error())
	assert.Equal(t, errs.ErrUnexpected, err.Unwrap())
}

func TestSanitizeNewlines(t *testing.T) {
	err := errs.NewTransportError("order/read", errors.New("hello\nworld"))
	assert.Contains(t, err.Error(), "hello world")
	assert.NotContains(t, err.Error(), "\n")
}
