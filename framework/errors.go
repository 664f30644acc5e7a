package framework

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorKind is the broad category of a step failure, used in summaries and reports.
type ErrorKind string

const (
	KindTransport  ErrorKind = "transport"
	KindProtocol   ErrorKind = "protocol"
	KindContract   ErrorKind = "contract"
	KindDependency ErrorKind = "dependency"
	KindUnexpected ErrorKind = "unexpected"
)

// ClassifiedError is implemented by errors that know which ErrorKind they belong to.
type ClassifiedError interface {
	error
	ErrorKind() ErrorKind
}

// KindOf returns the ErrorKind of the first ClassifiedError in err's chain, or KindUnexpected.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var c ClassifiedError
	if errors.As(err, &c) {
		return c.ErrorKind()
	}
	return KindUnexpected
}

// DependencyError means that a step could not run because an earlier step did not capture a
// value that it needs. No request is made for that step.
type DependencyError struct {
	Step    string
	Missing []Slot
}

func (e *DependencyError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, s := range e.Missing {
		names = append(names, string(s))
	}
	sort.Strings(names)
	if len(names) == 1 {
		return fmt.Sprintf("no %s available from a previous step", names[0])
	}
	return fmt.Sprintf("no %s available from previous steps", strings.Join(names, " or "))
}

func (e *DependencyError) ErrorKind() ErrorKind { return KindDependency }

// PanicError wraps a panic that escaped from a step action.
type PanicError struct {
	Value interface{}
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("unexpected panic in step: %+v", e.Value)
}

func (e *PanicError) ErrorKind() ErrorKind { return KindUnexpected }
