// Package integration parametrizes the riboviz integration test suite
// from a pipeline configuration file.
//
// The test binary accepts additional command-line options after the
// `-args` separator:
//
//   - `-expected=<DIRECTORY>`: directory with expected data files,
//     against which files specified in the configuration file will be
//     checked.
//   - `-skip-workflow`: the workflow will not be run prior to checking
//     data files. This can be used to check existing files generated by
//     a run of the workflow.
//   - `-check-index-tmp`: check index and temporary files (default is
//     that only the output files are checked).
//   - `-config-file`: configuration file. If not provided, the vignette
//     configuration is used. Sample names are extracted from the
//     fq_files parameter. If multiplex_fq_files is provided instead,
//     sample names are deduced from the entries of the output directory
//     cross-referenced with the configured sample sheet.
package integration

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/rasilab/riboviz/fixtures"
	"github.com/rasilab/riboviz/pipeline"
	"github.com/rasilab/riboviz/vignette"
)

var (
	expectedFlag      = flag.String("expected", "", "Directory with expected data files")
	skipWorkflowFlag  = flag.Bool("skip-workflow", false, "Do not run workflow")
	checkIndexTmpFlag = flag.Bool("check-index-tmp", false, "Check index and temporary files")
	configFileFlag    = flag.String("config-file", "", "Configuration file")
)

// Env is the resolved test environment: option values, the loaded
// pipeline configuration and the derived fixture set. It is loaded
// once per test binary and immutable thereafter.
type Env struct {
	Expected      string
	ConfigFile    string
	SkipWorkflow  bool
	CheckIndexTmp bool
	Config        *pipeline.Config
	Fixtures      *fixtures.Set
}

var (
	loadOnce sync.Once
	env      *Env
	loadErr  error
)

// Load resolves the test environment on first use. A missing
// expected-data directory or configuration file invalidates the whole
// run, so Load fails the test fatally rather than skipping.
func Load(t *testing.T) *Env {
	t.Helper()
	loadOnce.Do(load)
	if loadErr != nil {
		t.Fatal(loadErr)
	}
	return env
}

func load() {
	if *expectedFlag == "" {
		loadErr = fmt.Errorf("-expected is required")
		return
	}
	info, err := os.Stat(*expectedFlag)
	if err != nil || !info.IsDir() {
		loadErr = fmt.Errorf("no such directory: %s", *expectedFlag)
		return
	}

	configFile := *configFileFlag
	if configFile == "" {
		configFile = vignette.ConfigFile
	}
	info, err = os.Stat(configFile)
	if err != nil || !info.Mode().IsRegular() {
		loadErr = fmt.Errorf("no such file: %s", configFile)
		return
	}

	config, err := pipeline.Load(configFile)
	if err != nil {
		loadErr = err
		return
	}

	// The workflow must run before fixture derivation: multiplexed
	// sample names are read from the output directory it populates.
	if !*skipWorkflowFlag {
		if err := runWorkflow(configFile); err != nil {
			loadErr = err
			return
		}
	}

	set, err := fixtures.Derive(fixtures.Config{Pipeline: config})
	if err != nil {
		loadErr = err
		return
	}

	env = &Env{
		Expected:      *expectedFlag,
		ConfigFile:    configFile,
		SkipWorkflow:  *skipWorkflowFlag,
		CheckIndexTmp: *checkIndexTmpFlag,
		Config:        config,
		Fixtures:      set,
	}
}

// SkipUnlessIndexTmp skips the calling test when index and temporary
// file checks were not requested. This is a deliberate suite-level
// skip, never a failure.
func (e *Env) SkipUnlessIndexTmp(t *testing.T) {
	t.Helper()
	if !e.CheckIndexTmp {
		t.Skip("Skipped index and temporary files tests")
	}
}

// EachSample runs fn once per derived sample name.
func (e *Env) EachSample(t *testing.T, fn func(t *testing.T, sample string)) {
	t.Helper()
	e.Fixtures.ParametrizeStrings(t, fixtures.Sample, fn)
}

// EachIndexPrefix runs fn once per index prefix (ORF, then rRNA).
func (e *Env) EachIndexPrefix(t *testing.T, fn func(t *testing.T, prefix string)) {
	t.Helper()
	e.Fixtures.ParametrizeStrings(t, fixtures.IndexPrefix, fn)
}

// EachMultiplexName runs fn once per multiplexed file name. For
// configurations without multiplexed files there are no invocations,
// so the calling test effectively does not run.
func (e *Env) EachMultiplexName(t *testing.T, fn func(t *testing.T, name string)) {
	t.Helper()
	e.Fixtures.ParametrizeStrings(t, fixtures.MultiplexName, fn)
}

// Param returns the single derived value of a configuration parameter
// fixture as a string.
func (e *Env) Param(name string) string {
	values := e.Fixtures.Values(name)
	if len(values) != 1 {
		return ""
	}
	return fmt.Sprint(values[0])
}

// BoolParam returns the single derived value of a boolean parameter
// fixture.
func (e *Env) BoolParam(name string) bool {
	values := e.Fixtures.Values(name)
	if len(values) != 1 {
		return false
	}
	b, _ := values[0].(bool)
	return b
}
