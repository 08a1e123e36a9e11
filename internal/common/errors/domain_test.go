package commonerrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/AlibekovAA/user-registry/internal/common/errors"
)

func TestDomainError_WithCauseKeepsIdentity(t *testing.T) {
	cause := errors.New("username already exists")
	err := commonerrors.ErrUsernameTaken.WithCause(cause)

	assert.ErrorIs(t, err, commonerrors.ErrUsernameTaken)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, commonerrors.ErrUserNotFound)
	assert.Equal(t, "Username already registered: username already exists", err.Error())
	assert.Nil(t, commonerrors.ErrUsernameTaken.Unwrap(), "sentinel must not be mutated")
}

func TestDomainError_WithDetails(t *testing.T) {
	err := commonerrors.ErrValidation.WithDetails([]string{"age"})

	assert.Equal(t, []string{"age"}, err.Details())
	assert.Nil(t, commonerrors.ErrValidation.Details())
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus())
}

func TestAsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", commonerrors.ErrUserNotFound)

	de, ok := commonerrors.AsDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "USER_NOT_FOUND", de.Code())
	assert.Equal(t, commonerrors.CategoryNotFound, de.Category())

	_, ok = commonerrors.AsDomainError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, commonerrors.IsDomainError(errors.New("plain")))
}
