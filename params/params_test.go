package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValuesTypes(t *testing.T) {
	// Every default is a string, bool, int or nil; fixture lists must
	// hold values of a single semantic type.
	for name, value := range DefaultValues {
		switch value.(type) {
		case string, bool, int, nil:
		default:
			t.Errorf("default for %s has unexpected type %T", name, value)
		}
	}
}

func TestDefaultValuesCoverDirectories(t *testing.T) {
	assert.Contains(t, DefaultValues, IndexDir)
	assert.Contains(t, DefaultValues, TmpDir)
	assert.Contains(t, DefaultValues, OutputDir)
	// The input directory has no default: input data must be configured.
	assert.NotContains(t, DefaultValues, InputDir)
}

func TestEnvParamsArePathValued(t *testing.T) {
	// Sample mappings and index prefixes never carry environment
	// variable tokens.
	assert.NotContains(t, EnvParams, FqFiles)
	assert.NotContains(t, EnvParams, MultiplexFqFiles)
	assert.NotContains(t, EnvParams, OrfIndexPrefix)
	assert.Contains(t, EnvParams, InputDir)
	assert.Contains(t, EnvParams, SampleSheet)
}
