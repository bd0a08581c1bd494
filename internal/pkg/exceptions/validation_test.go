package exceptions

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthsync-service/internal/pkg/constvars"
)

type contactFormInput struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=3"`
}

func validationErrorsFor(t *testing.T, input interface{}) error {
	t.Helper()
	err := validator.New().Struct(input)
	require.Error(t, err)
	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	return err
}

func TestFormatFirstValidationError(t *testing.T) {
	t.Run("reports only the first failing field", func(t *testing.T) {
		err := validationErrorsFor(t, contactFormInput{Email: "not-an-email", Name: "x"})
		assert.Equal(t, "email must be a valid email", FormatFirstValidationError(err))
	})

	t.Run("nil error falls back to the generic message", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(nil))
	})

	t.Run("non-validator error falls back to the generic message", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatFirstValidationError(errors.New("boom")))
	})
}

func TestFormatAllValidationErrors(t *testing.T) {
	t.Run("joins every failing field", func(t *testing.T) {
		err := validationErrorsFor(t, contactFormInput{Email: "not-an-email", Name: "x"})
		assert.Equal(t, "email must be a valid email, name must be at least 3 characters long", FormatAllValidationErrors(err))
	})

	t.Run("single failure reads like the first-error format", func(t *testing.T) {
		err := validationErrorsFor(t, contactFormInput{Email: "someone@example.com"})
		assert.Equal(t, "name is required", FormatAllValidationErrors(err))
	})

	t.Run("nil error falls back to the generic message", func(t *testing.T) {
		assert.Equal(t, constvars.ErrClientCannotProcessRequest, FormatAllValidationErrors(nil))
	})
}

func TestErrInputValidation(t *testing.T) {
	t.Run("client sees the first error and developers see them all", func(t *testing.T) {
		err := validationErrorsFor(t, contactFormInput{Email: "not-an-email", Name: "x"})
		customErr := ErrInputValidation(err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "email must be a valid email", customErr.ClientMessage)
		assert.Equal(t, "email must be a valid email, name must be at least 3 characters long", customErr.DevMessage)
	})
}
