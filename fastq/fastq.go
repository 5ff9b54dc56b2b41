// Package fastq handles FASTQ file-name conventions: recognised
// extensions, GZIP suffix stripping and sample-name derivation for
// multiplexed files.
package fastq

import (
	"path/filepath"
	"strings"
)

// Recognised FASTQ file extensions, without the leading dot.
const (
	FastqExt = "fastq"
	FqExt    = "fq"
	GzExt    = "gz"
)

// Extensions lists the recognised FASTQ extensions, longest first so
// that suffix matching strips the GZIP-compressed forms whole.
var Extensions = []string{
	"." + FastqExt + "." + GzExt,
	"." + FqExt + "." + GzExt,
	"." + FastqExt,
	"." + FqExt,
}

// StripGz removes a trailing ".gz" from a GZIP-compressed FASTQ file
// name, e.g. "sample.fastq.gz" becomes "sample.fastq". Names that are
// not compressed FASTQ files are returned unchanged. Matching is
// case-insensitive; the returned name keeps the original casing.
func StripGz(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "."+FastqExt+"."+GzExt) ||
		strings.HasSuffix(lower, "."+FqExt+"."+GzExt) {
		return name[:len(name)-len("."+GzExt)]
	}
	return name
}

// IsFastq reports whether name has a recognised FASTQ extension,
// compressed or not.
func IsFastq(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// SampleName returns the sample name for a FASTQ file name: the name
// with any ".gz" suffix and remaining extension removed, so both
// "multiplex.fastq.gz" and "multiplex.fq" yield "multiplex".
func SampleName(name string) string {
	stripped := StripGz(name)
	return strings.TrimSuffix(stripped, filepath.Ext(stripped))
}
