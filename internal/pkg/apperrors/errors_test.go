package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsToKind(t *testing.T) {
	err := NewNotFoundError("teacher id not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrDBError))
	assert.Equal(t, "teacher id not found", err.Error())
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("error retrieving course: %w", NewDBError("unable to retrieve course"))

	assert.True(t, errors.Is(err, ErrDBError))
}

func TestEmptyMessageFallsBackToKind(t *testing.T) {
	err := &AppError{Err: ErrInvalidInput}

	assert.Equal(t, "invalid input", err.Error())
}
