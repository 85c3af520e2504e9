package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_WrapsCause(t *testing.T) {
	err := apperrors.NewAppError(500, "failed to save preferences", apperrors.ErrValidation)

	assert.Equal(t, "failed to save preferences: validation error", err.Error())
	assert.ErrorIs(t, fmt.Errorf("service: %w", err), apperrors.ErrValidation)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(404, "preferences not set", nil)
	assert.Equal(t, "preferences not set", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
