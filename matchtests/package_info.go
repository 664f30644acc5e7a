// Package matchtests contains the matchmaking API scenario: the steps, the identifiers they pass
// to each other, and the response contracts they check.
//
// Running steps in order, tracking slots, and recording results is done by the lower-level
// framework package, which knows nothing about the matchmaking domain.
package matchtests
