package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSubmission(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateSubmission("user@example.com", "Great experience here!"))
		require.NoError(t, ValidateSubmission("user@example.com", strings.Repeat("a", MessageMinLength)))
		require.NoError(t, ValidateSubmission("user@example.com", strings.Repeat("a", MessageMaxLength)))
	})

	t.Run("invalid email", func(t *testing.T) {
		invalid := []string{"", "not-an-email", "user@", "@example.com"}
		for _, v := range invalid {
			err := ValidateSubmission(v, "Great experience here!")
			require.ErrorIs(t, err, ErrInvalidEmail, "expected invalid email: %q", v)
			require.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("message length", func(t *testing.T) {
		invalid := []string{"", "too short", strings.Repeat("a", MessageMaxLength+1)}
		for _, v := range invalid {
			err := ValidateSubmission("user@example.com", v)
			require.ErrorIs(t, err, ErrInvalidMessage, "expected invalid message of length %d", len(v))
		}
	})

	t.Run("length counts characters", func(t *testing.T) {
		// ten runes, twenty bytes
		require.NoError(t, ValidateSubmission("user@example.com", strings.Repeat("é", 10)))
	})
}

func TestValidatePage(t *testing.T) {
	require.NoError(t, ValidatePage(1, 1))
	require.NoError(t, ValidatePage(3, MaxPageSize))
	require.ErrorIs(t, ValidatePage(0, 10), ErrInvalidPage)
	require.ErrorIs(t, ValidatePage(-1, 10), ErrInvalidPage)
	require.ErrorIs(t, ValidatePage(1, 0), ErrInvalidPageSize)
	require.ErrorIs(t, ValidatePage(1, MaxPageSize+1), ErrInvalidPageSize)
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("A@B.com"))
	require.ErrorIs(t, ValidateEmail("nope"), ErrInvalidEmail)
}

func TestValidationErrorIs(t *testing.T) {
	require.True(t, errors.Is(ErrInvalidPageSize, ErrValidation))
	require.False(t, errors.Is(ErrUnauthorized, ErrValidation))
	require.Equal(t, "email: must be a valid email address", ErrInvalidEmail.Error())
}
