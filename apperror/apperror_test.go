package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundUnwrapsToSentinel(t *testing.T) {
	err := NotFound("class", "42")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "class")
	assert.Contains(t, err.Error(), "42")
}

func TestValidationFailedCarriesField(t *testing.T) {
	err := ValidationFailed("seconds", "seconds must not be negative")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "seconds", err.Field)
}

func TestDependencyWrapsCause(t *testing.T) {
	cause := errors.New("queue unavailable")
	err := Dependency("publish failed", cause)

	assert.ErrorIs(t, err, ErrDependency)
	assert.Contains(t, err.Error(), "queue unavailable")
}

func TestSentinelSurvivesFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Forbidden("class belongs to another creator"))

	assert.ErrorIs(t, err, ErrForbidden)
}
