package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validation("bad input")))
	assert.True(t, IsConflict(Conflict("duplicate")))
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.True(t, IsAuth(Auth("denied")))

	assert.False(t, IsValidation(Conflict("duplicate")))
	assert.False(t, IsAuth(nil))
}

func TestWrappedErrorKeepsKind(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFound("event not found"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestErrorMessage(t *testing.T) {
	assert.EqualError(t, Validation("artist name is required"), "artist name is required")
}
