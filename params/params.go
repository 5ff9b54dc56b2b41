// Package params defines the riboviz pipeline configuration parameter
// names and the fixed default values used when a parameter is absent
// from a configuration file.
package params

// Parameter names as they appear in the pipeline YAML configuration.
const (
	// Directories.
	InputDir  = "dir_in"
	IndexDir  = "dir_index"
	OutputDir = "dir_out"
	TmpDir    = "dir_tmp"

	// Input files.
	FqFiles          = "fq_files"
	MultiplexFqFiles = "multiplex_fq_files"
	SampleSheet      = "sample_sheet"
	OrfFastaFile     = "orf_fasta_file"
	OrfGffFile       = "orf_gff_file"
	RrnaFastaFile    = "rrna_fasta_file"

	// Indexing.
	BuildIndices    = "build_indices"
	OrfIndexPrefix  = "orf_index_prefix"
	RrnaIndexPrefix = "rrna_index_prefix"

	// Adapter trimming and read constraints.
	Adapters      = "adapters"
	MinReadLength = "min_read_length"
	MaxReadLength = "max_read_length"

	// UMI handling.
	ExtractUmis = "extract_umis"
	DedupUmis   = "dedup_umis"
	DedupStats  = "dedup_stats"
	GroupUmis   = "group_umis"
	UmiRegexp   = "umi_regexp"

	// Analysis.
	Buffer              = "buffer"
	CountReads          = "count_reads"
	CountThreshold      = "count_threshold"
	Dataset             = "dataset"
	FeaturesFile        = "features_file"
	IsRibovizGff        = "is_riboviz_gff"
	MakeBedgraph        = "make_bedgraph"
	PrimaryID           = "primary_id"
	SecondaryID         = "secondary_id"
	Rpf                 = "rpf"
	TRnaFile            = "t_rna_file"
	CodonPositionsFile  = "codon_positions_file"
	AsiteDispLengthFile = "asite_disp_length_file"

	// Execution.
	NumProcesses = "num_processes"
	ValidateOnly = "validate_only"
)

// DefaultValues maps parameter names to the value assumed when the
// parameter is not set in a configuration file. Parameters without an
// entry here have no default and must be configured explicitly.
var DefaultValues = map[string]interface{}{
	Buffer:         250,
	BuildIndices:   true,
	CountReads:     true,
	CountThreshold: 64,
	Dataset:        "dataset",
	DedupStats:     true,
	DedupUmis:      false,
	ExtractUmis:    false,
	FeaturesFile:   nil,
	GroupUmis:      false,
	IndexDir:       "index",
	IsRibovizGff:   true,
	MakeBedgraph:   true,
	MaxReadLength:  50,
	MinReadLength:  10,
	NumProcesses:   1,
	OutputDir:      "output",
	PrimaryID:      "Name",
	Rpf:            true,
	SecondaryID:    nil,
	TmpDir:         "tmp",
}

// EnvParams lists the path-valued parameters whose configured values
// may reference riboviz environment variables.
var EnvParams = []string{
	InputDir,
	IndexDir,
	OutputDir,
	TmpDir,
	OrfFastaFile,
	OrfGffFile,
	RrnaFastaFile,
	FeaturesFile,
	TRnaFile,
	CodonPositionsFile,
	AsiteDispLengthFile,
	SampleSheet,
}
