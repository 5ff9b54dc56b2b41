package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasilab/riboviz/types"
)

func TestNewTestRunnerValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				TestDir:  "./integration",
				Expected: "/data/expected",
			},
			wantErr: false,
		},
		{
			name: "missing test directory",
			cfg: Config{
				Expected: "/data/expected",
			},
			wantErr: true,
		},
		{
			name: "missing expected directory",
			cfg: Config{
				TestDir: "./integration",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewTestRunner(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, r)
		})
	}
}

func TestBuildArgs(t *testing.T) {
	r := &runner{cfg: Config{
		TestDir:    "./integration",
		Expected:   "/data/expected",
		ConfigFile: "/data/config.yaml",
	}}
	args := r.buildArgs()
	assert.Equal(t, []string{
		"test", "-count=1", "-json", "-tags", BuildTag, "./integration",
		"-args", "-expected", "/data/expected", "-config-file", "/data/config.yaml",
	}, args)
}

func TestBuildArgsBooleanSwitches(t *testing.T) {
	r := &runner{cfg: Config{
		TestDir:       "./integration",
		Expected:      "/data/expected",
		SkipWorkflow:  true,
		CheckIndexTmp: true,
	}}
	args := r.buildArgs()
	assert.Contains(t, args, "-skip-workflow")
	assert.Contains(t, args, "-check-index-tmp")
	assert.NotContains(t, args, "-config-file")
}

func TestProcessLine(t *testing.T) {
	r := &runner{}
	tests := make(map[string]*types.TestResult)

	lines := []string{
		`{"Action":"run","Package":"github.com/rasilab/riboviz/integration","Test":"TestSampleOutputFiles"}`,
		`{"Action":"output","Package":"github.com/rasilab/riboviz/integration","Test":"TestSampleOutputFiles","Output":"=== RUN   TestSampleOutputFiles\n"}`,
		`{"Action":"pass","Package":"github.com/rasilab/riboviz/integration","Test":"TestSampleOutputFiles","Elapsed":1.5}`,
		`{"Action":"fail","Package":"github.com/rasilab/riboviz/integration","Test":"TestIndexFiles","Elapsed":0.1}`,
		`{"Action":"skip","Package":"github.com/rasilab/riboviz/integration","Test":"TestSampleTmpFiles"}`,
		`{"Action":"pass","Package":"github.com/rasilab/riboviz/integration","Elapsed":2.0}`,
		`not json at all`,
	}
	for _, line := range lines {
		r.processLine([]byte(line), tests)
	}

	require.Len(t, tests, 3, "package-level and malformed lines are ignored")
	assert.Equal(t, types.TestStatusPass, tests["TestSampleOutputFiles"].Status)
	assert.Contains(t, tests["TestSampleOutputFiles"].Output, "=== RUN")
	assert.Equal(t, types.TestStatusFail, tests["TestIndexFiles"].Status)
	assert.Equal(t, types.TestStatusSkip, tests["TestSampleTmpFiles"].Status)

	stats := foldStats(tests)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, types.TestStatusFail, stats.Status())
}

func TestFoldStatsCountsLeavesOnly(t *testing.T) {
	r := &runner{}
	tests := make(map[string]*types.TestResult)

	// A failing subtest fails its parent too; the parent entry must not
	// count a second failure.
	lines := []string{
		`{"Action":"pass","Test":"TestSampleOutputFiles/sample=WTnone","Elapsed":1.2}`,
		`{"Action":"fail","Test":"TestSampleOutputFiles/sample=WT3AT","Elapsed":0.4}`,
		`{"Action":"fail","Test":"TestSampleOutputFiles","Elapsed":1.6}`,
		`{"Action":"pass","Test":"TestReadCounts","Elapsed":0.2}`,
	}
	for _, line := range lines {
		r.processLine([]byte(line), tests)
	}
	require.Len(t, tests, 4)

	stats := foldStats(tests)
	assert.Equal(t, types.Stats{Total: 3, Passed: 2, Failed: 1}, stats)
	assert.Equal(t, types.TestStatusFail, stats.Status())
}

func TestResultString(t *testing.T) {
	result := &Result{
		Stats: types.Stats{Total: 4, Passed: 2, Failed: 1, Skipped: 1},
	}
	assert.Equal(t, "2/4 tests passed (1 failed, 1 skipped)", result.String())
}
