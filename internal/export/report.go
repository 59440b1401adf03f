package export

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doccsite/internal/logfields"
	"git.home.luguber.info/inful/doccsite/internal/metrics"
)

// Outcome is the typed enumeration of final export result states.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// PageFailure records one page that could not be rendered or written.
type PageFailure struct {
	Archive string
	Folder  string
	Page    string
	Err     error
}

// Report captures the aggregated result of one export run. Per-page and
// per-resource failures accumulate here so callers can assert on partial
// outcomes instead of inspecting log output.
type Report struct {
	RunID          string
	Start          time.Time
	End            time.Time
	Archives       int
	PagesRendered  int
	IndexVariants  int
	AssetsCopied   int
	AssetsFailed   int
	FailedPages    []PageFailure
	Warnings       []string
	PhaseDurations map[string]time.Duration
	Outcome        Outcome
}

func newReport() *Report {
	return &Report{
		RunID:          uuid.NewString(),
		Start:          time.Now(),
		PhaseDurations: make(map[string]time.Duration),
		Outcome:        OutcomeSuccess,
	}
}

func (r *Report) addPageFailure(f PageFailure) {
	r.FailedPages = append(r.FailedPages, f)
}

func (r *Report) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// deriveOutcome downgrades the run to warning when any page or asset was
// skipped. Failed is only set by an aborting error.
func (r *Report) deriveOutcome() {
	if r.Outcome == OutcomeFailed {
		return
	}
	if len(r.FailedPages) > 0 || len(r.Warnings) > 0 || r.AssetsFailed > 0 {
		r.Outcome = OutcomeWarning
		return
	}
	r.Outcome = OutcomeSuccess
}

func (r *Report) finish(recorder metrics.Recorder) {
	r.End = time.Now()
	r.deriveOutcome()
	recorder.ObserveExportDuration(r.End.Sub(r.Start))
	recorder.IncExportOutcome(string(r.Outcome))
}

// LogSummary emits a one-line structured summary of the run.
func (r *Report) LogSummary() {
	slog.Info("Export finished",
		logfields.RunID(r.RunID),
		slog.String("outcome", string(r.Outcome)),
		slog.Int("archives", r.Archives),
		slog.Int("pages", r.PagesRendered),
		slog.Int("index_variants", r.IndexVariants),
		slog.Int("assets", r.AssetsCopied),
		slog.Int("failed_pages", len(r.FailedPages)),
		slog.Int("failed_assets", r.AssetsFailed),
		logfields.DurationMS(float64(r.End.Sub(r.Start).Milliseconds())),
	)
	for _, f := range r.FailedPages {
		slog.Warn("Page skipped",
			logfields.Archive(f.Archive),
			logfields.Folder(f.Folder),
			logfields.Page(f.Page),
			logfields.Error(f.Err),
		)
	}
}
