package fastq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripGz(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "fastq.gz", in: "sample.fastq.gz", want: "sample.fastq"},
		{name: "fq.gz", in: "sample.fq.gz", want: "sample.fq"},
		{name: "uppercase", in: "sample.FASTQ.GZ", want: "sample.FASTQ"},
		{name: "uncompressed", in: "sample.fastq", want: "sample.fastq"},
		{name: "not fastq", in: "sample.tar.gz", want: "sample.tar.gz"},
		{name: "no extension", in: "sample", want: "sample"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripGz(tt.in))
		})
	}
}

func TestIsFastq(t *testing.T) {
	assert.True(t, IsFastq("sample.fastq"))
	assert.True(t, IsFastq("sample.fq"))
	assert.True(t, IsFastq("sample.fastq.gz"))
	assert.True(t, IsFastq("sample.FQ.GZ"))
	assert.False(t, IsFastq("sample.sam"))
	assert.False(t, IsFastq("sample.gz"))
}

func TestSampleName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "fastq.gz", in: "multiplex_umi_barcode_adaptor.fastq.gz", want: "multiplex_umi_barcode_adaptor"},
		{name: "fq.gz", in: "multiplex.fq.gz", want: "multiplex"},
		{name: "fastq", in: "multiplex.fastq", want: "multiplex"},
		{name: "dots in name", in: "run.1.fastq.gz", want: "run.1"},
		{name: "no extension", in: "multiplex", want: "multiplex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleName(tt.in))
		})
	}
}
