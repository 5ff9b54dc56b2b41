package riboviz

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rasilab/riboviz/fixtures"
	"github.com/rasilab/riboviz/runner"
	"github.com/rasilab/riboviz/types"
)

// ResultFormatter is responsible for formatting and displaying the
// parametrization plan and the test results.
type ResultFormatter interface {
	FormatPlan(set *fixtures.Set) error
	FormatResults(result *runner.Result) error
}

// ConsoleResultFormatter implements the ResultFormatter interface.
type ConsoleResultFormatter struct {
	logger log.Logger
}

// NewConsoleResultFormatter creates a new ConsoleResultFormatter.
func NewConsoleResultFormatter(logger log.Logger) *ConsoleResultFormatter {
	return &ConsoleResultFormatter{
		logger: logger,
	}
}

// FormatPlan displays the derived fixture lists: one row per fixture
// with its value count and values. Single-value fixtures from the
// default-parameter table are summarised at the end.
func (f *ConsoleResultFormatter) FormatPlan(set *fixtures.Set) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Test Parametrization Plan")

	t.AppendHeader(table.Row{"Fixture", "Values", "Invocations"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Fixture", WidthMax: 30},
		{Name: "Values", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Invocations", Align: text.AlignRight},
	})

	defaulted := 0
	for _, name := range set.Names() {
		values := set.Values(name)
		if len(values) == 1 &&
			name != fixtures.IsMultiplexed && name != fixtures.Sample {
			defaulted++
			continue
		}
		rendered := make([]string, 0, len(values))
		for _, v := range values {
			rendered = append(rendered, fmt.Sprint(v))
		}
		t.AppendRow(table.Row{name, strings.Join(rendered, ", "), len(values)})
	}
	t.AppendFooter(table.Row{"single-value parameters", "", defaulted})
	t.Render()
	return nil
}

// FormatResults formats and displays the test results.
func (f *ConsoleResultFormatter) FormatResults(result *runner.Result) error {
	f.logger.Info("Printing results...")
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Integration Test Results (%s)", formatDuration(result.Duration)))

	t.AppendHeader(table.Row{"Test", "Duration", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Test", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})

	names := make([]string, 0, len(result.Tests))
	for name := range result.Tests {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		test := result.Tests[name]
		t.AppendRow(table.Row{
			name,
			formatDuration(test.Duration),
			getResultString(test.Status),
		})
	}

	t.AppendFooter(table.Row{
		fmt.Sprintf("%d passed, %d failed, %d skipped",
			result.Stats.Passed, result.Stats.Failed, result.Stats.Skipped),
		formatDuration(result.Duration),
		getResultString(result.Status),
	})
	t.Render()

	// Surface captured output of failing tests after the table.
	for _, name := range names {
		test := result.Tests[name]
		if test.Status != types.TestStatusFail || test.Output == "" {
			continue
		}
		fmt.Printf("\n--- output: %s ---\n%s", name, test.Output)
	}
	return nil
}

// formatDuration renders a duration with millisecond precision.
func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
