package riboviz

import (
	"github.com/rasilab/riboviz/types"
)

// getResultString returns a symbol-prefixed string for a test result
func getResultString(status types.TestStatus) string {
	switch status {
	case types.TestStatusPass:
		return "✓ pass"
	case types.TestStatusSkip:
		return "- skip"
	default:
		return "✗ fail"
	}
}
