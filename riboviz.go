// Package riboviz implements the integration-test service for the
// riboviz ribosome-profiling pipeline: it loads a pipeline
// configuration, derives the test parametrization from it, runs the
// integration suite and reports the results.
package riboviz

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rasilab/riboviz/exitcodes"
	"github.com/rasilab/riboviz/fixtures"
	"github.com/rasilab/riboviz/metrics"
	"github.com/rasilab/riboviz/pipeline"
	"github.com/rasilab/riboviz/runner"
	"github.com/rasilab/riboviz/types"
)

// Tester drives integration test runs against a pipeline configuration.
type Tester struct {
	ctx      context.Context
	config   *Config
	version  string
	pipeline *pipeline.Config
	fixtures *fixtures.Set

	executor  TestExecutor
	scheduler TestScheduler
	formatter ResultFormatter
	reporter  MetricsReporter

	result *runner.Result
}

// New creates a Tester: it loads the pipeline configuration, derives
// the fixture set and prepares the test runner.
func New(ctx context.Context, config *Config, version string) (*Tester, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating tester with config",
		"expected", config.Expected,
		"configFile", config.ConfigFile,
		"skipWorkflow", config.SkipWorkflow,
		"checkIndexTmp", config.CheckIndexTmp,
		"runInterval", config.RunInterval,
		"runOnce", config.RunOnce)

	pipelineConfig, err := pipeline.Load(config.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline config: %w", err)
	}

	fixtureSet, err := fixtures.Derive(fixtures.Config{
		Pipeline: pipelineConfig,
		Log:      config.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive fixtures: %w", err)
	}

	testRunner, err := runner.NewTestRunner(runner.Config{
		TestDir:       config.TestDir,
		GoBinary:      config.GoBinary,
		Expected:      config.Expected,
		ConfigFile:    config.ConfigFile,
		SkipWorkflow:  config.SkipWorkflow,
		CheckIndexTmp: config.CheckIndexTmp,
		Log:           config.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test runner: %w", err)
	}

	return &Tester{
		ctx:       ctx,
		config:    config,
		version:   version,
		pipeline:  pipelineConfig,
		fixtures:  fixtureSet,
		executor:  NewDefaultTestExecutor(testRunner, config.Log),
		scheduler: NewDefaultTestScheduler(config.RunInterval, config.RunOnce, config.Log),
		formatter: NewConsoleResultFormatter(config.Log),
		reporter:  NewDefaultMetricsReporter(),
	}, nil
}

// Fixtures returns the derived fixture set.
func (t *Tester) Fixtures() *fixtures.Set {
	return t.fixtures
}

// Start runs the integration tests, once or periodically per the
// configured interval. In run-once mode it returns a TestFailureError
// when the run had failures, so callers map it to exit code 1.
func (t *Tester) Start(ctx context.Context) error {
	// Panics during a run are runtime errors, exit code 2.
	defer func() {
		if r := recover(); r != nil {
			t.config.Log.Error("Runtime error occurred", "error", r)
			os.Exit(exitcodes.RuntimeErr)
		}
	}()

	t.ctx = ctx

	if t.config.RunOnce {
		t.config.Log.Info("Starting integration tester in run-once mode")
	} else {
		t.config.Log.Info("Starting integration tester in continuous mode", "interval", t.config.RunInterval)
	}

	if err := t.formatter.FormatPlan(t.fixtures); err != nil {
		t.config.Log.Error("Error printing parametrization plan", "error", err)
	}

	t.scheduler.RegisterCallback(t.runTests)
	if err := t.scheduler.Start(ctx); err != nil {
		return NewRuntimeError(err)
	}

	if t.config.RunOnce {
		t.config.Log.Info("Tests completed, exiting (run-once mode)")
		if t.result != nil && t.result.Status == types.TestStatusFail {
			t.config.Log.Warn("Run-once test run completed with failures, returning exit code 1")
			return NewTestFailureError(t.result.String())
		}
	}
	return nil
}

// Stop stops the periodic scheduler and waits for it to drain.
func (t *Tester) Stop(ctx context.Context) error {
	if err := t.scheduler.Stop(); err != nil {
		return err
	}
	return t.scheduler.WaitForShutdown(ctx)
}

// runTests performs one full test run.
func (t *Tester) runTests() error {
	result, err := t.executor.RunTests(t.ctx)
	if err != nil {
		metrics.RecordErrorDetails("error running tests", err)
		return err
	}
	t.result = result

	if err := t.formatter.FormatResults(result); err != nil {
		t.config.Log.Error("Error formatting results", "error", err)
	}
	t.reporter.ReportResults(result)
	return nil
}
