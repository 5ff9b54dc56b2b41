// Package environment resolves riboviz environment-variable tokens in
// configuration parameter values. A value such as
// "${RIBOVIZ_SAMPLES}/input" is rewritten using the current process
// environment; unset variables resolve to the current directory.
package environment

import (
	"os"
	"strings"
)

// Environment variables recognised in configuration values.
const (
	EnvData      = "RIBOVIZ_DATA"
	EnvOrganisms = "RIBOVIZ_ORGANISMS"
	EnvSamples   = "RIBOVIZ_SAMPLES"
)

// DefaultValue is substituted for a recognised variable that is unset
// or empty.
const DefaultValue = "."

// Vars lists the recognised environment variables.
var Vars = []string{EnvData, EnvOrganisms, EnvSamples}

// Values returns the current values of the recognised environment
// variables, substituting DefaultValue for any that are unset or empty.
func Values() map[string]string {
	values := make(map[string]string, len(Vars))
	for _, name := range Vars {
		value := os.Getenv(name)
		if value == "" {
			value = DefaultValue
		}
		values[name] = value
	}
	return values
}

// Apply substitutes environment-variable tokens in value using the
// given variable values. Both ${VAR} and $VAR token forms are
// recognised. Tokens for variables not present in values are left
// untouched.
func Apply(value string, values map[string]string) string {
	for name, v := range values {
		value = strings.ReplaceAll(value, "${"+name+"}", v)
		value = strings.ReplaceAll(value, "$"+name, v)
	}
	return value
}
