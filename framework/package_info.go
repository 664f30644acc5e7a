// Package framework contains the low-level implementation of the test runner, independent of
// the API being tested.
//
// The general model is:
//
// 1. A scenario is an ordered list of steps. Each step declares the named slots it reads and
// the slots it writes, so the order can be checked before anything runs.
//
// 2. Each step runs with a Context that gives it the slot values captured by earlier steps and
// a debug logger whose output is kept with the step's result.
//
// 3. A step returns a Verdict rather than aborting. The runner records one TestResult per step,
// keeps going after failures, and only skips the action of a step whose dependencies were
// never captured.
//
// The domain-specific code that knows what is being tested is responsible for sending requests,
// checking response contracts, and deciding which values to capture.
package framework
