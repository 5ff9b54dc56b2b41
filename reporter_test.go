package riboviz

import (
	"testing"
	"time"

	"github.com/rasilab/riboviz/runner"
	"github.com/rasilab/riboviz/types"
)

func TestDefaultMetricsReporter_ReportResults(t *testing.T) {
	result := &runner.Result{
		RunID:    "test-run-1",
		Status:   types.TestStatusPass,
		Duration: 100 * time.Millisecond,
		Stats: types.Stats{
			Total:  5,
			Passed: 5,
		},
	}

	// Mostly checking this doesn't panic; the metrics package has its
	// own tests.
	reporter := NewDefaultMetricsReporter()
	reporter.ReportResults(result)
}

func TestDefaultMetricsReporter_ReportResults_FailedTests(t *testing.T) {
	result := &runner.Result{
		RunID:    "test-run-2",
		Status:   types.TestStatusFail,
		Duration: 150 * time.Millisecond,
		Stats: types.Stats{
			Total:  10,
			Passed: 7,
			Failed: 3,
		},
	}

	reporter := NewDefaultMetricsReporter()
	reporter.ReportResults(result)
}
