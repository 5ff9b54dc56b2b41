// Package samplesheets loads demultiplexing sample sheets: tab-separated
// tables mapping sample identifiers to the tags used to split a
// multiplexed sequencing file.
package samplesheets

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Required sample-sheet column headers.
const (
	SampleID = "SampleID"
	TagRead  = "TagRead"
)

// Entry is one sample-sheet row.
type Entry struct {
	SampleID string
	TagRead  string
}

// SampleSheet is a loaded sample sheet. Entries preserve file order.
type SampleSheet struct {
	Entries []Entry
}

// Load reads a tab-separated sample sheet from path. The first row
// must be a header containing the SampleID and TagRead columns; extra
// columns are ignored. Rows with an empty sample ID are dropped.
func Load(path string) (*SampleSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample sheet: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing sample sheet %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sample sheet %s is empty", path)
	}

	header := records[0]
	sampleIdx, tagIdx := -1, -1
	for i, column := range header {
		switch column {
		case SampleID:
			sampleIdx = i
		case TagRead:
			tagIdx = i
		}
	}
	if sampleIdx < 0 {
		return nil, fmt.Errorf("sample sheet %s is missing column %s", path, SampleID)
	}
	if tagIdx < 0 {
		return nil, fmt.Errorf("sample sheet %s is missing column %s", path, TagRead)
	}

	sheet := &SampleSheet{}
	for _, record := range records[1:] {
		if sampleIdx >= len(record) || record[sampleIdx] == "" {
			continue
		}
		entry := Entry{SampleID: record[sampleIdx]}
		if tagIdx < len(record) {
			entry.TagRead = record[tagIdx]
		}
		sheet.Entries = append(sheet.Entries, entry)
	}
	return sheet, nil
}

// SampleIDs returns the sample identifiers in file order.
func (s *SampleSheet) SampleIDs() []string {
	ids := make([]string, 0, len(s.Entries))
	for _, entry := range s.Entries {
		ids = append(ids, entry.SampleID)
	}
	return ids
}
