package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/teknopark/matchmaking-contract-tests/config"
	"github.com/teknopark/matchmaking-contract-tests/framework"
)

const rule = "============================================================"

func printBanner(out io.Writer, cfg *config.App, runID string) {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "TEKNOPARK AI MATCHMAKING BACKEND API TESTS")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Base URL: %s\n", cfg.BaseURL)
	fmt.Fprintf(out, "API Base: %s\n", cfg.APIBase())
	fmt.Fprintf(out, "Run ID: %s\n", runID)
	fmt.Fprintln(out, rule)
}

func printSummary(out io.Writer, results framework.Results) {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "TEST SUMMARY")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Total Tests: %d\n", results.PassedCount()+results.FailedCount())
	fmt.Fprintf(out, "Passed: %d\n", results.PassedCount())
	fmt.Fprintf(out, "Failed: %d\n", results.FailedCount())
	if n := results.SkippedCount(); n > 0 {
		fmt.Fprintf(out, "Skipped: %d\n", n)
	}
	fmt.Fprintf(out, "Success Rate: %.1f%%\n", results.SuccessRate())

	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "FAILED TESTS:")
		for _, r := range results.Failures {
			fmt.Fprintf(out, "- %s: %s (%s)\n", r.TestID, failureText(r), r.Kind())
		}
	}
	fmt.Fprintln(out, rule)
}

func failureText(r framework.TestResult) string {
	var parts []string
	for _, err := range r.Errors {
		parts = append(parts, strings.ReplaceAll(err.Error(), "\n", " "))
	}
	return strings.Join(parts, "; ")
}
