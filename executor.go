package riboviz

import (
	"context"

	"github.com/ethereum/go-ethereum/log"

	"github.com/rasilab/riboviz/runner"
)

// TestExecutor is responsible for running the integration suite.
type TestExecutor interface {
	RunTests(ctx context.Context) (*runner.Result, error)
}

// DefaultTestExecutor implements the TestExecutor interface.
type DefaultTestExecutor struct {
	runner runner.TestRunner
	logger log.Logger
}

// NewDefaultTestExecutor creates a new DefaultTestExecutor.
func NewDefaultTestExecutor(runner runner.TestRunner, logger log.Logger) *DefaultTestExecutor {
	return &DefaultTestExecutor{
		runner: runner,
		logger: logger,
	}
}

// RunTests runs the suite and returns the results.
func (e *DefaultTestExecutor) RunTests(ctx context.Context) (*runner.Result, error) {
	e.logger.Info("Running integration tests...")
	result, err := e.runner.RunAllTests(ctx)
	if err != nil {
		e.logger.Error("Error running tests", "error", err)
		return nil, err
	}
	e.logger.Info("Test run completed", "run_id", result.RunID, "status", result.Status)
	return result, nil
}
