package conformance

import "go.uber.org/zap"

//go:generate mockgen -source=reporter.go -destination=reporter_mock.go -package=conformance
type Reporter interface {
	// CaseFinished is called once per case, in run order.
	CaseFinished(result CaseResult)
	// RunFinished is called after the last case with the complete report.
	RunFinished(report Report)
}

type logReporter struct {
	log *zap.SugaredLogger
}

func NewLogReporter() Reporter {
	return &logReporter{log: zap.S().Named("conformance")}
}

func (l *logReporter) CaseFinished(result CaseResult) {
	switch {
	case result.Skipped:
		l.log.Debugw("case skipped", "suite", result.Suite, "case", result.Name, "reason", result.SkipReason)
	case result.Passed:
		l.log.Debugw("case passed", "suite", result.Suite, "case", result.Name, "expr", result.Expr)
	default:
		l.log.Errorw("case failed", "file", result.File, "suite", result.Suite, "case", result.Name, "expr", result.Expr, "failure", result.Failure)
	}
}

func (l *logReporter) RunFinished(report Report) {
	l.log.Infow("conformance run finished",
		"run_id", report.RunID,
		"host_id", report.HostID,
		"duration", report.FinishedAt.Sub(report.StartedAt),
		"passed", report.Stats.Passed,
		"failed", report.Stats.Failed,
		"skipped", report.Stats.Skipped,
	)
}
