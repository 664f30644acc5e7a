package framework

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the record of a single step. It is created once, when the step finishes, and
// is not modified afterward.
type TestResult struct {
	TestID      TestID
	Message     string
	Errors      []error
	Skipped     bool
	Payload     ldvalue.Value
	Duration    time.Duration
	DebugOutput CapturedOutput
}

func (r TestResult) Passed() bool {
	return !r.Skipped && len(r.Errors) == 0
}

// Kind classifies the first error of a failed result, or returns "" if the result did not fail.
func (r TestResult) Kind() ErrorKind {
	if len(r.Errors) == 0 {
		return ""
	}
	return KindOf(r.Errors[0])
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) PassedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Passed() {
			n++
		}
	}
	return n
}

func (r Results) FailedCount() int {
	return len(r.Failures)
}

func (r Results) SkippedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

// SuccessRate is the percentage of executed steps that passed. Skipped steps are not counted.
func (r Results) SuccessRate() float64 {
	executed := r.PassedCount() + r.FailedCount()
	if executed == 0 {
		return 0
	}
	return float64(r.PassedCount()) / float64(executed) * 100
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
