package fixtures

import (
	"fmt"
	"testing"
)

// Parametrize runs fn as a subtest once per derived value of the named
// fixture. A fixture with no values yields no invocations, which
// effectively skips the calling test. Tests that request no fixture
// simply run once, outside this helper.
func (s *Set) Parametrize(t *testing.T, name string, fn func(t *testing.T, value interface{})) {
	t.Helper()
	for _, value := range s.values[name] {
		value := value
		t.Run(fmt.Sprintf("%s=%v", name, value), func(t *testing.T) {
			fn(t, value)
		})
	}
}

// ParametrizeStrings is Parametrize for string-valued fixtures.
// Non-string values are skipped.
func (s *Set) ParametrizeStrings(t *testing.T, name string, fn func(t *testing.T, value string)) {
	t.Helper()
	for _, value := range s.values[name] {
		str, ok := value.(string)
		if !ok {
			continue
		}
		t.Run(name+"="+str, func(t *testing.T) {
			fn(t, str)
		})
	}
}
