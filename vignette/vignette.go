// Package vignette holds constants for the vignette dataset shipped
// with riboviz, the default subject of the integration tests.
package vignette

const (
	// Dir is the directory holding the vignette dataset.
	Dir = "vignette"

	// ConfigFile is the pipeline configuration used when no explicit
	// configuration file is given.
	ConfigFile = "vignette/vignette_config.yaml"

	// MissingSample names the sample deliberately absent from the
	// vignette input data. It is removed from derived sample lists.
	MissingSample = "NotHere"
)
