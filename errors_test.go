package riboviz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeError(t *testing.T) {
	cause := errors.New("no such directory: /data/expected")
	err := NewRuntimeError(cause)

	assert.True(t, IsRuntimeError(err))
	assert.True(t, IsRuntimeError(fmt.Errorf("wrapped: %w", err)))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "runtime error")

	assert.False(t, IsRuntimeError(cause))
	assert.False(t, IsRuntimeError(nil))
}

func TestTestFailureError(t *testing.T) {
	err := NewTestFailureError("1/4 tests passed (3 failed, 0 skipped)")

	assert.True(t, IsTestFailureError(err))
	assert.True(t, IsTestFailureError(fmt.Errorf("wrapped: %w", err)))
	assert.Contains(t, err.Error(), "test failure")

	assert.False(t, IsTestFailureError(errors.New("other")))
	assert.False(t, IsTestFailureError(nil))
	assert.False(t, IsRuntimeError(err), "failure and runtime errors are distinct")
}
