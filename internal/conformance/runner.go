package conformance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tupyy/coerce/internal/coercion"
	"github.com/tupyy/coerce/internal/notation"
)

// CaseResult is the outcome of running a single case
type CaseResult struct {
	File       string          `json:"file"`
	Suite      string          `json:"suite"`
	Name       string          `json:"name"`
	Expr       string          `json:"expr"`
	Passed     bool            `json:"passed"`
	Skipped    bool            `json:"skipped,omitempty"`
	SkipReason string          `json:"skipReason,omitempty"`
	Got        *coercion.Value `json:"got,omitempty"`
	Failure    string          `json:"failure,omitempty"`
}

// Stats aggregates a set of results
type Stats struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Report is the outcome of a whole run
type Report struct {
	RunID      string       `json:"runId"`
	HostID     string       `json:"hostId,omitempty"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt time.Time    `json:"finishedAt"`
	Stats      Stats        `json:"stats"`
	Results    []CaseResult `json:"results"`
}

// Failed returns the results which did not pass.
func (r Report) Failed() []CaseResult {
	failed := make([]CaseResult, 0, r.Stats.Failed)
	for _, res := range r.Results {
		if !res.Passed && !res.Skipped {
			failed = append(failed, res)
		}
	}
	return failed
}

type Option func(r *Runner)

func WithReporter(reporter Reporter) Option {
	return func(r *Runner) {
		r.reporter = reporter
	}
}

func WithHostID(id string) Option {
	return func(r *Runner) {
		r.hostID = id
	}
}

type Runner struct {
	reporter Reporter
	hostID   string
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}

	if r.reporter == nil {
		r.reporter = NewLogReporter()
	}

	return r
}

// Run evaluates a single case and checks it against its expectation.
func (r *Runner) Run(c LoadedCase) CaseResult {
	result := CaseResult{
		File:  c.File,
		Suite: c.Suite,
		Name:  c.Case.Name,
		Expr:  c.Case.Expr,
	}

	if c.Case.Skip != "" {
		result.Skipped = true
		result.SkipReason = c.Case.Skip
		return result
	}

	expect := c.Case.Expect

	interpreter, err := notation.NewInterpreter(c.Case.Expr)
	if err != nil {
		if expect.Error == ErrorParse {
			result.Passed = true
			return result
		}
		result.Failure = fmt.Sprintf("parse error: %s", err)
		return result
	}

	got, err := interpreter.Evaluate()
	if err != nil {
		var opErr *coercion.UnsupportedOperationError
		if expect.Error == ErrorUnsupported && errors.As(err, &opErr) {
			result.Passed = true
			return result
		}
		result.Failure = fmt.Sprintf("evaluation error: %s", err)
		return result
	}
	result.Got = &got

	if expect.Error != "" {
		result.Failure = fmt.Sprintf("expected %s error, got %s", expect.Error, got)
		return result
	}

	want, err := notation.ParseLiteral(string(expect.Value))
	if err != nil {
		result.Failure = fmt.Sprintf("invalid expected value %q: %s", expect.Value, err)
		return result
	}

	if !coercion.Identical(got, want) {
		result.Failure = fmt.Sprintf("expected %s, got %s", want, got)
		return result
	}

	result.Passed = true
	return result
}

// RunAll runs every case in order. It stops early only when ctx is done.
func (r *Runner) RunAll(ctx context.Context, cases []LoadedCase) (Report, error) {
	report := Report{
		RunID:     uuid.New().String(),
		HostID:    r.hostID,
		StartedAt: time.Now(),
		Results:   make([]CaseResult, 0, len(cases)),
	}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := r.Run(c)
		r.reporter.CaseFinished(res)
		report.Results = append(report.Results, res)
	}

	report.FinishedAt = time.Now()
	report.Stats = ComputeStats(report.Results)
	r.reporter.RunFinished(report)

	return report, nil
}

func ComputeStats(results []CaseResult) Stats {
	stats := Stats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			stats.Skipped++
		case r.Passed:
			stats.Passed++
		default:
			stats.Failed++
		}
	}
	return stats
}

func FormatStats(stats Stats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}
