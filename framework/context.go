package framework

import (
	"fmt"
	"runtime/debug"
	"sort"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
	slots      *Slots
}

// Context is passed to each step action. It gives access to the slots the step declared and
// collects the step's debug output.
type Context struct {
	env         *environment
	id          TestID
	step        *Step
	debugLogger CapturingLogger
}

// RunOptions controls a call to Run.
type RunOptions struct {
	Filter     Filter
	TestLogger TestLogger

	// Delay is a pause inserted between consecutive steps that actually run.
	Delay time.Duration

	// Sleep is used to wait for Delay; it defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Run executes every step of the scenario in order and returns the accumulated results. A
// failing step never stops the run. The only error returned is from Scenario.Verify, in which
// case nothing is executed.
func Run(scenario Scenario, opts RunOptions) (Results, error) {
	if err := scenario.Verify(); err != nil {
		return Results{}, err
	}
	testLogger := opts.TestLogger
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	env := &environment{
		filter:     opts.Filter,
		testLogger: testLogger,
		slots:      NewSlots(),
	}
	ranPrevious := false
	for i := range scenario {
		step := scenario[i]
		id := TestID{Path: []string{step.Name}}
		if env.filter != nil && !env.filter(id) {
			env.testLogger.TestStarted(id)
			env.skip(id, "excluded by filter parameters")
			continue
		}
		if ranPrevious && opts.Delay > 0 {
			sleep(opts.Delay)
		}
		env.runStep(id, &step)
		ranPrevious = true
	}
	return env.results, nil
}

func (e *environment) skip(id TestID, reason string) {
	e.results.Tests = append(e.results.Tests, TestResult{TestID: id, Skipped: true, Message: reason})
	e.testLogger.TestSkipped(id, reason)
}

func (e *environment) runStep(id TestID, step *Step) {
	e.testLogger.TestStarted(id)
	c := &Context{env: e, id: id, step: step}

	start := time.Now()
	var verdict Verdict
	if missing := e.slots.Missing(step.Reads); len(missing) > 0 {
		verdict = Fail(&DependencyError{Step: step.Name, Missing: missing})
	} else {
		verdict = c.run(step.Action)
	}
	if verdict.Err == nil {
		if err := e.capture(step, verdict.Captures); err != nil {
			verdict = Fail(err).WithPayload(verdict.Payload)
		}
	}

	result := TestResult{
		TestID:      id,
		Message:     verdict.Message,
		Payload:     verdict.Payload,
		Duration:    time.Since(start),
		DebugOutput: c.debugLogger.Output(),
	}
	failed := verdict.Err != nil
	if failed {
		result.Errors = []error{verdict.Err}
		e.testLogger.TestError(id, verdict.Err)
	}
	e.results.Tests = append(e.results.Tests, result)
	if failed {
		e.results.Failures = append(e.results.Failures, result)
	}
	e.testLogger.TestFinished(id, failed, result.Message, result.DebugOutput)
}

func (e *environment) capture(step *Step, captures map[Slot]string) error {
	slots := make([]Slot, 0, len(captures))
	for slot := range captures {
		if !slotIn(slot, step.Writes) {
			return fmt.Errorf("step tried to capture %s, which it does not declare", slot)
		}
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	for _, slot := range slots {
		if err := e.slots.set(slot, captures[slot], step.Name); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) run(action func(*Context) Verdict) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			verdict = Fail(&PanicError{Value: r, Stack: string(debug.Stack())})
		}
	}()
	return action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Slot returns the value of a slot that the step lists in Reads. The runner only calls the
// action once all of those are set. For any other slot it returns "".
func (c *Context) Slot(slot Slot) string {
	if !slotIn(slot, c.step.Reads) {
		c.Debug("step read undeclared slot %s", slot)
		return ""
	}
	v, _ := c.env.slots.Get(slot)
	return v
}

// Lookup returns the value of a slot that the step lists in Reads or Peeks, and whether it is
// set.
func (c *Context) Lookup(slot Slot) (string, bool) {
	if !slotIn(slot, c.step.Reads) && !slotIn(slot, c.step.Peeks) {
		c.Debug("step looked up undeclared slot %s", slot)
		return "", false
	}
	return c.env.slots.Get(slot)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
