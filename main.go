package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/teknopark/matchmaking-contract-tests/client"
	"github.com/teknopark/matchmaking-contract-tests/fixtures"
	"github.com/teknopark/matchmaking-contract-tests/framework"
	"github.com/teknopark/matchmaking-contract-tests/logging"
	"github.com/teknopark/matchmaking-contract-tests/matchtests"
)

const (
	exitStepsFailed   = 1
	exitInvalidParams = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args, stderr) {
		return exitInvalidParams
	}
	cfg, err := params.Config()
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %s\n", err)
		return exitInvalidParams
	}
	f := fixtures.Default()
	if cfg.FixturesPath != "" {
		if f, err = fixtures.Load(cfg.FixturesPath); err != nil {
			fmt.Fprintf(stderr, "Invalid fixtures: %s\n", err)
			return exitInvalidParams
		}
	}
	if params.noColor {
		color.NoColor = true
	}

	runID := uuid.NewString()
	logger := logging.New(stderr, logging.Options{Debug: params.debugAll, NoColor: color.NoColor, RunID: runID})
	logger.Info().
		Str("api_base", cfg.APIBase()).
		Dur("timeout", cfg.Timeout).
		Dur("step_delay", cfg.StepDelay).
		Bool("extended", params.extended).
		Msg("Configuration loaded")

	printBanner(stdout, cfg, runID)
	framework.PrintFilterDescription(stdout, params.filters)

	api := client.NewAPIClient(client.Config{
		APIBaseURL: cfg.APIBase(),
		Timeout:    cfg.Timeout,
		Logger:     &logger,
	})
	testLogger := &ConsoleTestLogger{
		Out:                  stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	startedAt := time.Now()
	results, err := matchtests.RunTestSuite(api, f, matchtests.Options{Extended: params.extended}, framework.RunOptions{
		Filter:     params.filters.AsFilter,
		TestLogger: testLogger,
		Delay:      cfg.StepDelay,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Could not run test suite: %s\n", err)
		return exitInvalidParams
	}
	logger.Info().
		Dur("elapsed", logging.Elapsed(startedAt)).
		Int("passed", results.PassedCount()).
		Int("failed", results.FailedCount()).
		Msg("Test run finished")

	fmt.Fprintln(stdout)
	printSummary(stdout, results)

	if params.report != "" {
		if err := writeReport(params.report, newRunReport(runID, startedAt, cfg, results)); err != nil {
			logger.Error().Err(err).Msg("Report not written")
		} else {
			logger.Info().Str("path", params.report).Msg("Report written")
		}
	}

	if !results.OK() {
		fmt.Fprintf(stdout, "To repeat this run with full request traces:\n  %s\n", params.rerunCommand(args[0], cfg))
		return exitStepsFailed
	}
	return 0
}
