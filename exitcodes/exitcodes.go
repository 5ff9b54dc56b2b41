// Package exitcodes defines the standard exit codes used by the
// riboviz integration runner.
package exitcodes

// Exit code constants used by the application:
//
// * Success (0): all integration tests passed
// * TestFailure (1): one or more tests failed
// * RuntimeErr (2): runtime errors such as missing inputs or panics
const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)
