package framework

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Step is one action against the system under test with its own pass/fail verdict.
//
// Reads lists the slots that must have been captured for the step to run at all. Peeks lists
// slots that the step will use if they are available but does not require. Writes lists the
// slots that the step may capture.
type Step struct {
	Name   string
	Reads  []Slot
	Peeks  []Slot
	Writes []Slot
	Action func(*Context) Verdict
}

// Scenario is an ordered list of steps. The order is fixed; the runner never reorders steps
// based on their dependencies.
type Scenario []Step

// Verify checks the dependency declarations of the scenario: every slot that a step reads or
// peeks must be written by an earlier step, and every slot has at most one writer.
func (s Scenario) Verify() error {
	if len(s) == 0 {
		return errors.New("scenario has no steps")
	}
	writers := make(map[Slot]string)
	names := make(map[string]bool)
	var problems []string
	for _, step := range s {
		if step.Name == "" {
			problems = append(problems, "a step has no name")
		} else if names[step.Name] {
			problems = append(problems, fmt.Sprintf("step name %q is used more than once", step.Name))
		}
		names[step.Name] = true
		if step.Action == nil {
			problems = append(problems, fmt.Sprintf("step %q has no action", step.Name))
		}
		for _, slot := range append(append([]Slot(nil), step.Reads...), step.Peeks...) {
			if _, ok := writers[slot]; !ok {
				problems = append(problems, fmt.Sprintf("step %q reads %s before any step writes it", step.Name, slot))
			}
		}
		for _, slot := range step.Writes {
			if previous, ok := writers[slot]; ok {
				problems = append(problems, fmt.Sprintf("steps %q and %q both write %s", previous, step.Name, slot))
				continue
			}
			writers[slot] = step.Name
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return &InvalidScenarioError{Problems: problems}
	}
	return nil
}

// InvalidScenarioError is returned by Verify and Run for a scenario whose declared dependencies
// are inconsistent.
type InvalidScenarioError struct {
	Problems []string
}

func (e *InvalidScenarioError) Error() string {
	msg := "invalid scenario:"
	for _, p := range e.Problems {
		msg += "\n  " + p
	}
	return msg
}

// Verdict is the outcome of a step action. A verdict with a nil Err is a pass.
type Verdict struct {
	Err      error
	Message  string
	Payload  ldvalue.Value
	Captures map[Slot]string
}

// Pass returns a passing verdict.
func Pass(message string, payload ldvalue.Value) Verdict {
	return Verdict{Message: message, Payload: payload}
}

// Fail returns a failing verdict whose message is the error text.
func Fail(err error) Verdict {
	if err == nil {
		err = errors.New("step failed with no failure message")
	}
	return Verdict{Err: err, Message: err.Error()}
}

// Failf is a shortcut for Fail(fmt.Errorf(format, args...)).
func Failf(format string, args ...interface{}) Verdict {
	return Fail(fmt.Errorf(format, args...))
}

// WithPayload returns a copy of the verdict that carries the given response payload.
func (v Verdict) WithPayload(payload ldvalue.Value) Verdict {
	v.Payload = payload
	return v
}

// Capture returns a copy of the verdict that will store a value in a slot if the step passes.
func (v Verdict) Capture(slot Slot, value string) Verdict {
	captures := make(map[Slot]string, len(v.Captures)+1)
	for k, existing := range v.Captures {
		captures[k] = existing
	}
	captures[slot] = value
	v.Captures = captures
	return v
}
