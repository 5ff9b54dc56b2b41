package riboviz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasilab/riboviz/runner"
	"github.com/rasilab/riboviz/types"
)

// stubRunner implements runner.TestRunner for executor tests.
type stubRunner struct {
	result *runner.Result
	err    error
}

func (s *stubRunner) RunAllTests(ctx context.Context) (*runner.Result, error) {
	return s.result, s.err
}

func TestExecutorReturnsResult(t *testing.T) {
	want := &runner.Result{
		RunID:    "run-1",
		Status:   types.TestStatusPass,
		Duration: time.Second,
		Stats:    types.Stats{Total: 2, Passed: 2},
	}
	e := NewDefaultTestExecutor(&stubRunner{result: want}, log.New())

	got, err := e.RunTests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutorPropagatesError(t *testing.T) {
	wantErr := errors.New("go binary not found")
	e := NewDefaultTestExecutor(&stubRunner{err: wantErr}, log.New())

	_, err := e.RunTests(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
