// Package runner executes the integration test suite as a `go test`
// subprocess and aggregates the results.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"

	"github.com/rasilab/riboviz/types"
)

// BuildTag selects the integration test files; without it the suite
// compiles to an empty test binary.
const BuildTag = "integration"

// Go test2json (TestEvent) action constants for JSON test output
// See https://cs.opensource.google/go/go/+/master:src/cmd/test2json/main.go;l=34-60
const (
	ActionStart  = "start"
	ActionRun    = "run"
	ActionPass   = "pass"
	ActionFail   = "fail"
	ActionSkip   = "skip"
	ActionOutput = "output"
)

// TestEvent is one line of `go test -json` output.
type TestEvent struct {
	Time    time.Time
	Action  string
	Package string
	Test    string
	Elapsed float64
	Output  string
}

// Result captures the complete test run results.
type Result struct {
	RunID    string
	Status   types.TestStatus
	Duration time.Duration
	Stats    types.Stats
	Tests    map[string]*types.TestResult
}

// String returns a one-line summary of the run.
func (r *Result) String() string {
	return fmt.Sprintf("%d/%d tests passed (%d failed, %d skipped)",
		r.Stats.Passed, r.Stats.Total, r.Stats.Failed, r.Stats.Skipped)
}

// TestRunner defines the interface for running the integration suite.
type TestRunner interface {
	RunAllTests(ctx context.Context) (*Result, error)
}

// Config holds configuration for creating a new runner.
type Config struct {
	TestDir       string // Package path of the integration suite
	WorkDir       string // Directory for running tests, "" for the current one
	GoBinary      string // Path to the Go binary
	Expected      string // Directory with expected data files
	ConfigFile    string // Pipeline configuration file
	SkipWorkflow  bool
	CheckIndexTmp bool
	Log           log.Logger
}

// runner struct implements TestRunner interface
type runner struct {
	cfg   Config
	runID string
}

// NewTestRunner creates a new test runner instance.
func NewTestRunner(cfg Config) (TestRunner, error) {
	if cfg.TestDir == "" {
		return nil, fmt.Errorf("test directory is required")
	}
	if cfg.Expected == "" {
		return nil, fmt.Errorf("expected-data directory is required")
	}
	if cfg.GoBinary == "" {
		cfg.GoBinary = "go"
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}
	return &runner{cfg: cfg}, nil
}

// buildArgs assembles the `go test` invocation. The four option
// switches travel to the test binary after the -args separator.
func (r *runner) buildArgs() []string {
	args := []string{
		"test", "-count=1", "-json", "-tags", BuildTag, r.cfg.TestDir,
		"-args", "-expected", r.cfg.Expected,
	}
	if r.cfg.ConfigFile != "" {
		args = append(args, "-config-file", r.cfg.ConfigFile)
	}
	if r.cfg.SkipWorkflow {
		args = append(args, "-skip-workflow")
	}
	if r.cfg.CheckIndexTmp {
		args = append(args, "-check-index-tmp")
	}
	return args
}

// RunAllTests runs the integration suite once and aggregates results
// per test function and subtest.
func (r *runner) RunAllTests(ctx context.Context) (*Result, error) {
	r.runID = uuid.New().String()
	start := time.Now()

	args := r.buildArgs()
	r.cfg.Log.Info("Running integration tests",
		"run_id", r.runID,
		"go", r.cfg.GoBinary,
		"args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.cfg.GoBinary, args...)
	if r.cfg.WorkDir != "" {
		cmd.Dir = r.cfg.WorkDir
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("creating stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", r.cfg.GoBinary, err)
	}

	tests := make(map[string]*types.TestResult)
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		r.processLine(scanner.Bytes(), tests)
	}
	scanErr := scanner.Err()

	waitErr := cmd.Wait()
	duration := time.Since(start)

	if scanErr != nil {
		return nil, fmt.Errorf("reading test output: %w", scanErr)
	}

	result := &Result{
		RunID:    r.runID,
		Duration: duration,
		Tests:    tests,
		Stats:    foldStats(tests),
	}
	result.Status = result.Stats.Status()

	// `go test` exits non-zero for test failures; that is a result, not
	// a runner error. Anything else (build failure, bad package path)
	// aborts the run.
	if waitErr != nil && result.Stats.Failed == 0 {
		return nil, fmt.Errorf("running tests: %w: %s", waitErr, strings.TrimSpace(stderr.String()))
	}

	r.cfg.Log.Info("Integration test run complete",
		"run_id", r.runID,
		"status", result.Status,
		"duration", duration,
		"summary", result.String())

	return result, nil
}

// foldStats aggregates per-test results into run statistics. Only leaf
// entries count: a parametrized test emits events for the parent and
// for each subtest, and a failing subtest also fails its parent, so
// counting both would double every parametrized invocation.
func foldStats(tests map[string]*types.TestResult) types.Stats {
	var stats types.Stats
	for name, test := range tests {
		if hasSubtests(name, tests) {
			continue
		}
		stats.Record(test.Status)
	}
	return stats
}

// hasSubtests reports whether any other recorded test is a subtest of
// name.
func hasSubtests(name string, tests map[string]*types.TestResult) bool {
	prefix := name + "/"
	for other := range tests {
		if strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

// processLine folds one test2json line into the per-test results.
// Lines that are not JSON events (e.g. build chatter) are ignored.
func (r *runner) processLine(line []byte, tests map[string]*types.TestResult) {
	var event TestEvent
	if err := json.Unmarshal(line, &event); err != nil {
		return
	}
	if event.Test == "" {
		return // package-level event
	}

	test, ok := tests[event.Test]
	if !ok {
		test = &types.TestResult{Name: event.Test, Package: event.Package}
		tests[event.Test] = test
	}

	switch event.Action {
	case ActionPass:
		test.Status = types.TestStatusPass
		test.Duration = time.Duration(event.Elapsed * float64(time.Second))
	case ActionFail:
		test.Status = types.TestStatusFail
		test.Duration = time.Duration(event.Elapsed * float64(time.Second))
	case ActionSkip:
		test.Status = types.TestStatusSkip
		test.Duration = time.Duration(event.Elapsed * float64(time.Second))
	case ActionOutput:
		test.Output += event.Output
	}
}
