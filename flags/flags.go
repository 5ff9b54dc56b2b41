// Package flags defines the command-line flags of the riboviz
// integration runner.
package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "RIBOVIZ"

// prefixEnvVars adds the application prefix to an environment
// variable name.
func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	Expected = &cli.StringFlag{
		Name:     "expected",
		Value:    "",
		Required: true,
		EnvVars:  prefixEnvVars("EXPECTED"),
		Usage:    "Directory with expected data files",
	}
	SkipWorkflow = &cli.BoolFlag{
		Name:    "skip-workflow",
		Value:   false,
		EnvVars: prefixEnvVars("SKIP_WORKFLOW"),
		Usage:   "Do not run the workflow before checking data files",
	}
	CheckIndexTmp = &cli.BoolFlag{
		Name:    "check-index-tmp",
		Value:   false,
		EnvVars: prefixEnvVars("CHECK_INDEX_TMP"),
		Usage:   "Check index and temporary files (default: only output files are checked)",
	}
	ConfigFile = &cli.StringFlag{
		Name:    "config-file",
		Value:   "",
		EnvVars: prefixEnvVars("CONFIG_FILE"),
		Usage:   "Pipeline configuration file (default: the vignette configuration)",
	}
	TestDir = &cli.StringFlag{
		Name:    "testdir",
		Value:   "./integration",
		EnvVars: prefixEnvVars("TESTDIR"),
		Usage:   "Package path of the integration test suite",
	}
	GoBinary = &cli.StringFlag{
		Name:    "go-binary",
		Value:   "go",
		EnvVars: prefixEnvVars("GO_BINARY"),
		Usage:   "Path to the Go binary to use for running tests",
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: prefixEnvVars("RUN_INTERVAL"),
		Usage:   "Interval between test runs (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Log level (trace, debug, info, warn, error, crit)",
	}
)

var requiredFlags = []cli.Flag{
	Expected,
}

var optionalFlags = []cli.Flag{
	SkipWorkflow,
	CheckIndexTmp,
	ConfigFile,
	TestDir,
	GoBinary,
	RunInterval,
	LogLevel,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
