package riboviz

import (
	"github.com/rasilab/riboviz/metrics"
	"github.com/rasilab/riboviz/runner"
)

// MetricsReporter is responsible for reporting metrics from test results.
type MetricsReporter interface {
	ReportResults(result *runner.Result)
}

// DefaultMetricsReporter implements the MetricsReporter interface.
type DefaultMetricsReporter struct{}

// NewDefaultMetricsReporter creates a new DefaultMetricsReporter.
func NewDefaultMetricsReporter() *DefaultMetricsReporter {
	return &DefaultMetricsReporter{}
}

// ReportResults records the aggregated run outcome.
func (r *DefaultMetricsReporter) ReportResults(result *runner.Result) {
	metrics.RecordRun(result.RunID, result.Status, result.Stats, result.Duration)
}
