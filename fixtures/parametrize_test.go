package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParametrize(t *testing.T) {
	set := derive(t, `
fq_files:
  WTnone: SRR1042855_s1mi.fastq.gz
  WT3AT: SRR1042864_s1mi.fastq.gz
`)

	var seen []string
	set.ParametrizeStrings(t, Sample, func(t *testing.T, sample string) {
		seen = append(seen, sample)
	})
	assert.Equal(t, []string{"WTnone", "WT3AT"}, seen)

	var values []interface{}
	set.Parametrize(t, IsMultiplexed, func(t *testing.T, value interface{}) {
		values = append(values, value)
	})
	assert.Equal(t, []interface{}{true}, values)
}

func TestParametrizeEmptyFixtureRunsNothing(t *testing.T) {
	set := derive(t, `
orf_index_prefix: YAL_CDS_w_250
rrna_index_prefix: yeast_rRNA
`)

	invocations := 0
	set.ParametrizeStrings(t, MultiplexName, func(t *testing.T, name string) {
		invocations++
	})
	assert.Zero(t, invocations, "empty fixture must yield no invocations")

	set.Parametrize(t, "no_such_fixture", func(t *testing.T, value interface{}) {
		invocations++
	})
	assert.Zero(t, invocations, "unknown fixture must yield no invocations")
}
