package riboviz

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/log"

	"github.com/rasilab/riboviz/flags"
	"github.com/rasilab/riboviz/vignette"
)

// Config holds the application configuration
type Config struct {
	Expected      string        // Directory with expected data files
	SkipWorkflow  bool          // Do not run the workflow before checking data files
	CheckIndexTmp bool          // Check index and temporary files
	ConfigFile    string        // Pipeline configuration file
	TestDir       string        // Package path of the integration test suite
	GoBinary      string        // Path to the Go binary used for running tests
	RunInterval   time.Duration // Interval between test runs
	RunOnce       bool          // Indicates if the service should exit after one test run
	Log           log.Logger
}

// NewConfig creates a new Config from cli context. The expected-data
// directory and the configuration file are hard preconditions: a
// missing one invalidates the entire test run, so resolution fails
// immediately instead of deferring to individual tests.
func NewConfig(ctx *cli.Context, logger log.Logger) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}

	expected := ctx.String(flags.Expected.Name)
	info, err := os.Stat(expected)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("no such directory: %s", expected)
	}
	absExpected, err := filepath.Abs(expected)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for expected directory '%s': %w", expected, err)
	}

	configFile := ctx.String(flags.ConfigFile.Name)
	if configFile == "" {
		configFile = vignette.ConfigFile
	}
	info, err = os.Stat(configFile)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("no such file: %s", configFile)
	}
	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for config file '%s': %w", configFile, err)
	}

	runInterval := ctx.Duration(flags.RunInterval.Name)
	runOnce := runInterval == 0

	return &Config{
		Expected:      absExpected,
		SkipWorkflow:  ctx.Bool(flags.SkipWorkflow.Name),
		CheckIndexTmp: ctx.Bool(flags.CheckIndexTmp.Name),
		ConfigFile:    absConfigFile,
		TestDir:       ctx.String(flags.TestDir.Name),
		GoBinary:      ctx.String(flags.GoBinary.Name),
		RunInterval:   runInterval,
		RunOnce:       runOnce,
		Log:           logger,
	}, nil
}
