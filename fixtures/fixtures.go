// Package fixtures derives the named value lists that expand each
// integration test into one invocation per value, from a loaded
// pipeline configuration. Derivation happens once per collection pass;
// the resulting Set is immutable.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ethereum/go-ethereum/log"

	"github.com/rasilab/riboviz/fastq"
	"github.com/rasilab/riboviz/params"
	"github.com/rasilab/riboviz/pipeline"
	"github.com/rasilab/riboviz/samplesheets"
	"github.com/rasilab/riboviz/vignette"
)

// Fixture names derived beyond the default-parameter table.
const (
	Sample        = "sample"
	IndexPrefix   = "index_prefix"
	IsMultiplexed = "is_multiplexed"
	MultiplexName = "multiplex_name"
)

// Config holds configuration for deriving a fixture set.
type Config struct {
	Pipeline *pipeline.Config
	Log      log.Logger
}

// Set is a derived collection of named fixture value lists. Every list
// holds values of a single type: string, bool, int or string pair.
type Set struct {
	values map[string][]interface{}
}

// Derive computes the fixture value lists for a pipeline configuration:
//
//   - one single-element list per default-parameter table entry, holding
//     the configured value if present, the default otherwise;
//   - index_prefix: the ORF and rRNA index prefixes, two values;
//   - is_multiplexed: a single bool, true unless one or more multiplexed
//     FASTQ files are declared;
//   - multiplex_name: one name per declared multiplexed file with FASTQ
//     extensions stripped, empty when none are declared;
//   - sample: the single-sample FASTQ mapping keys in document order,
//     or, for multiplexed runs, the sample-sheet identifiers for which
//     an entry exists in the output directory. The known-missing
//     vignette sample is removed if present.
func Derive(cfg Config) (*Set, error) {
	if cfg.Pipeline == nil {
		return nil, fmt.Errorf("pipeline configuration is required")
	}
	if cfg.Log == nil {
		cfg.Log = log.New()
		cfg.Log.Error("No logger provided, using default")
	}

	values := make(map[string][]interface{})
	for name, defaultValue := range params.DefaultValues {
		if v, ok := cfg.Pipeline.Value(name); ok {
			values[name] = []interface{}{v}
		} else {
			values[name] = []interface{}{defaultValue}
		}
	}

	values[IndexPrefix] = []interface{}{
		cfg.Pipeline.String(params.OrfIndexPrefix),
		cfg.Pipeline.String(params.RrnaIndexPrefix),
	}

	multiplexed := cfg.Pipeline.NonEmpty(params.MultiplexFqFiles)
	values[IsMultiplexed] = []interface{}{!multiplexed}

	multiplexNames := []interface{}{}
	if multiplexed {
		for _, fileName := range cfg.Pipeline.StringSlice(params.MultiplexFqFiles) {
			multiplexNames = append(multiplexNames, fastq.SampleName(fileName))
		}
	}
	values[MultiplexName] = multiplexNames

	samples, err := deriveSamples(cfg, multiplexed)
	if err != nil {
		return nil, err
	}
	values[Sample] = samples

	cfg.Log.Debug("Fixtures derived",
		"fixtures", len(values),
		"samples", len(samples),
		"multiplexed", multiplexed)

	return &Set{values: values}, nil
}

// deriveSamples computes the sample fixture list. For single-sample
// runs the names are the FASTQ mapping keys. For multiplexed runs the
// names are the sample-sheet identifiers that have an entry in the
// output directory, in sample-sheet order. The known-missing vignette
// sample is dropped either way.
func deriveSamples(cfg Config, multiplexed bool) ([]interface{}, error) {
	var names []string
	switch {
	case cfg.Pipeline.NonEmpty(params.FqFiles):
		names = cfg.Pipeline.MappingKeys(params.FqFiles)
	case multiplexed:
		sheetPath := filepath.Join(
			cfg.Pipeline.String(params.InputDir),
			cfg.Pipeline.String(params.SampleSheet))
		sheet, err := samplesheets.Load(sheetPath)
		if err != nil {
			return nil, fmt.Errorf("loading sample sheet: %w", err)
		}

		outputDir := cfg.Pipeline.String(params.OutputDir)
		entries, err := os.ReadDir(outputDir)
		if err != nil {
			return nil, fmt.Errorf("listing output directory %s: %w", outputDir, err)
		}
		demultiplexed := make(map[string]bool, len(entries))
		for _, entry := range entries {
			demultiplexed[entry.Name()] = true
		}

		// Keep only samples with output, in sample-sheet order.
		for _, id := range sheet.SampleIDs() {
			if demultiplexed[id] {
				names = append(names, id)
			}
		}
	}

	samples := make([]interface{}, 0, len(names))
	for _, name := range names {
		if name == vignette.MissingSample {
			continue
		}
		samples = append(samples, name)
	}
	return samples, nil
}

// Has reports whether a fixture with the given name was derived.
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Values returns the value list for name, or nil for unknown names.
func (s *Set) Values(name string) []interface{} {
	return s.values[name]
}

// Len returns the number of values derived for name.
func (s *Set) Len(name string) int {
	return len(s.values[name])
}

// Strings returns the value list for name as strings. Non-string
// values are omitted.
func (s *Set) Strings(name string) []string {
	values := s.values[name]
	strings := make([]string, 0, len(values))
	for _, v := range values {
		if str, ok := v.(string); ok {
			strings = append(strings, str)
		}
	}
	return strings
}

// Bool returns the single boolean value for name. It is false for
// unknown names, lists of other types and lists longer than one.
func (s *Set) Bool(name string) bool {
	values := s.values[name]
	if len(values) != 1 {
		return false
	}
	b, ok := values[0].(bool)
	return ok && b
}

// String returns the single string value for name, or "" when name
// does not hold exactly one string.
func (s *Set) String(name string) string {
	values := s.values[name]
	if len(values) != 1 {
		return ""
	}
	str, _ := values[0].(string)
	return str
}

// Names returns all derived fixture names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
