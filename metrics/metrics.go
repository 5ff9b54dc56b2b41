// Package metrics records integration run outcomes to Prometheus.
package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rasilab/riboviz/types"
)

const (
	MetricsNamespace = "riboviz"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	integrationRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "integration_runs_total",
		Help:      "Count of integration test runs",
	}, []string{
		"run_id",
		"result",
	})

	integrationTestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "integration_tests_total",
		Help:      "Total number of integration tests",
	}, []string{
		"run_id",
	})

	integrationTestsPassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "integration_tests_passed",
		Help:      "Number of passed integration tests",
	}, []string{
		"run_id",
	})

	integrationTestsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "integration_tests_failed",
		Help:      "Number of failed integration tests",
	}, []string{
		"run_id",
	})

	integrationTestsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "integration_tests_skipped",
		Help:      "Number of skipped integration tests",
	}, []string{
		"run_id",
	})

	integrationRunDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "integration_run_duration",
		Help:      "Duration of integration test runs in seconds",
	}, []string{
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordRun records the aggregated outcome of one integration run.
func RecordRun(runID string, status types.TestStatus, stats types.Stats, duration time.Duration) {
	if Debug {
		log.Debug("metric inc",
			"m", "integration_runs_total",
			"run_id", runID,
			"result", status,
			"total", stats.Total,
			"passed", stats.Passed,
			"failed", stats.Failed,
			"skipped", stats.Skipped)
	}
	integrationRunsTotal.WithLabelValues(runID, string(status)).Inc()
	integrationTestsTotal.WithLabelValues(runID).Add(float64(stats.Total))
	integrationTestsPassed.WithLabelValues(runID).Add(float64(stats.Passed))
	integrationTestsFailed.WithLabelValues(runID).Add(float64(stats.Failed))
	integrationTestsSkipped.WithLabelValues(runID).Add(float64(stats.Skipped))
	integrationRunDuration.WithLabelValues(runID).Set(duration.Seconds())
}
