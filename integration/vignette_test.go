//go:build integration

package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasilab/riboviz/params"
)

// hisat2 builds eight index files per prefix.
const indexFileCount = 8

// Per-sample temporary files produced by the workflow.
var sampleTmpFiles = []string{
	"trim.fq",
	"nonrRNA.fq",
	"unaligned.fq",
	"rRNA_map.sam",
	"orf_map.sam",
	"orf_map_clean.bam",
}

// expectedDir maps a configured directory to its counterpart under the
// expected-data directory, which mirrors the configured layout by base
// name.
func expectedDir(env *Env, configured string) string {
	return filepath.Join(env.Expected, filepath.Base(configured))
}

// requireSameFile asserts that actual exists and matches the size of
// its expected counterpart.
func requireSameFile(t *testing.T, expectedPath, actualPath string) {
	t.Helper()
	expectedInfo, err := os.Stat(expectedPath)
	require.NoError(t, err, "missing expected data file: %s", expectedPath)
	actualInfo, err := os.Stat(actualPath)
	require.NoError(t, err, "missing data file: %s", actualPath)
	assert.Equal(t, expectedInfo.Size(), actualInfo.Size(),
		"%s and %s differ in size", expectedPath, actualPath)
}

func TestIndexFiles(t *testing.T) {
	env := Load(t)
	env.SkipUnlessIndexTmp(t)

	indexDir := env.Param(params.IndexDir)
	env.EachIndexPrefix(t, func(t *testing.T, prefix string) {
		for i := 1; i <= indexFileCount; i++ {
			fileName := fmt.Sprintf("%s.%d.ht2", prefix, i)
			requireSameFile(t,
				filepath.Join(expectedDir(env, indexDir), fileName),
				filepath.Join(indexDir, fileName))
		}
	})
}

func TestSampleTmpFiles(t *testing.T) {
	env := Load(t)
	env.SkipUnlessIndexTmp(t)

	tmpDir := env.Param(params.TmpDir)
	env.EachSample(t, func(t *testing.T, sample string) {
		for _, fileName := range sampleTmpFiles {
			requireSameFile(t,
				filepath.Join(expectedDir(env, tmpDir), sample, fileName),
				filepath.Join(tmpDir, sample, fileName))
		}
	})
}

func TestSampleOutputFiles(t *testing.T) {
	env := Load(t)

	outputDir := env.Param(params.OutputDir)
	makeBedgraph := env.BoolParam(params.MakeBedgraph)
	env.EachSample(t, func(t *testing.T, sample string) {
		fileNames := []string{
			sample + ".bam",
			sample + ".bam.bai",
			sample + ".h5",
		}
		if makeBedgraph {
			fileNames = append(fileNames, "plus.bedgraph", "minus.bedgraph")
		}
		for _, fileName := range fileNames {
			requireSameFile(t,
				filepath.Join(expectedDir(env, outputDir), sample, fileName),
				filepath.Join(outputDir, sample, fileName))
		}
	})
}

func TestMultiplexTmpFiles(t *testing.T) {
	env := Load(t)
	env.SkipUnlessIndexTmp(t)

	// Zero invocations for non-multiplexed configurations.
	tmpDir := env.Param(params.TmpDir)
	env.EachMultiplexName(t, func(t *testing.T, name string) {
		deplexDir := filepath.Join(tmpDir, name+"_deplex")
		requireSameFile(t,
			filepath.Join(expectedDir(env, tmpDir), name+"_deplex", "num_reads.tsv"),
			filepath.Join(deplexDir, "num_reads.tsv"))
	})
}

func TestReadCounts(t *testing.T) {
	env := Load(t)

	if !env.BoolParam(params.CountReads) {
		t.Skip("read counting is disabled in the configuration")
	}
	outputDir := env.Param(params.OutputDir)
	requireSameFile(t,
		filepath.Join(expectedDir(env, outputDir), "read_counts.tsv"),
		filepath.Join(outputDir, "read_counts.tsv"))
}
