package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/teknopark/matchmaking-contract-tests/config"
	"github.com/teknopark/matchmaking-contract-tests/framework"
)

type runReport struct {
	RunID       string       `json:"run_id"`
	BaseURL     string       `json:"base_url"`
	APIBase     string       `json:"api_base"`
	StartedAt   time.Time    `json:"started_at"`
	Passed      int          `json:"passed"`
	Failed      int          `json:"failed"`
	Skipped     int          `json:"skipped"`
	SuccessRate float64      `json:"success_rate"`
	OK          bool         `json:"ok"`
	Steps       []stepReport `json:"steps"`
}

type stepReport struct {
	Name       string              `json:"name"`
	Passed     bool                `json:"passed"`
	Skipped    bool                `json:"skipped,omitempty"`
	Message    string              `json:"message,omitempty"`
	Error      string              `json:"error,omitempty"`
	ErrorKind  framework.ErrorKind `json:"error_kind,omitempty"`
	DurationMS int64               `json:"duration_ms"`
	Payload    ldvalue.Value       `json:"payload"`
}

func newRunReport(runID string, startedAt time.Time, cfg *config.App, results framework.Results) runReport {
	r := runReport{
		RunID:       runID,
		BaseURL:     cfg.BaseURL,
		APIBase:     cfg.APIBase(),
		StartedAt:   startedAt.UTC(),
		Passed:      results.PassedCount(),
		Failed:      results.FailedCount(),
		Skipped:     results.SkippedCount(),
		SuccessRate: results.SuccessRate(),
		OK:          results.OK(),
		Steps:       make([]stepReport, 0, len(results.Tests)),
	}
	for _, t := range results.Tests {
		s := stepReport{
			Name:       t.TestID.String(),
			Passed:     t.Passed(),
			Skipped:    t.Skipped,
			Message:    t.Message,
			ErrorKind:  t.Kind(),
			DurationMS: t.Duration.Milliseconds(),
			Payload:    t.Payload,
		}
		if len(t.Errors) > 0 {
			s.Error = failureText(t)
		}
		r.Steps = append(r.Steps, s)
	}
	return r
}

func writeReport(path string, r runReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}
