// Package types contains shared types used across the riboviz
// integration-testing framework.
package types

import "time"

// TestStatus represents the possible states of a test execution.
type TestStatus string

const (
	TestStatusPass  TestStatus = "pass"
	TestStatusFail  TestStatus = "fail"
	TestStatusSkip  TestStatus = "skip"
	TestStatusError TestStatus = "error"
)

// String implements the Stringer interface for TestStatus.
func (s TestStatus) String() string {
	return string(s)
}

// TestResult captures the outcome of a single test invocation.
type TestResult struct {
	Name     string
	Package  string
	Status   TestStatus
	Duration time.Duration
	Output   string // Captured output, kept for failing tests
}

// Stats tracks test counts for a run.
type Stats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// Record counts one result.
func (s *Stats) Record(status TestStatus) {
	s.Total++
	switch status {
	case TestStatusPass:
		s.Passed++
	case TestStatusFail, TestStatusError:
		s.Failed++
	case TestStatusSkip:
		s.Skipped++
	}
}

// Status derives the overall status from the counts: fail if anything
// failed, skip if everything was skipped, pass otherwise.
func (s Stats) Status() TestStatus {
	if s.Failed > 0 {
		return TestStatusFail
	}
	if s.Total > 0 && s.Skipped == s.Total {
		return TestStatusSkip
	}
	return TestStatusPass
}
