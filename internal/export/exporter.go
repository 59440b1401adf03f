// Package export implements the archive-to-site pipeline: prepare target,
// load archives, copy resources, generate pages. The Exporter runs the
// phases in that fixed order; the FolderBuilder and ResourceCopier do the
// per-archive work.
package export

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/doccsite/internal/archive"
	"git.home.luguber.info/inful/doccsite/internal/errors"
	"git.home.luguber.info/inful/doccsite/internal/logfields"
	"git.home.luguber.info/inful/doccsite/internal/metrics"
	"git.home.luguber.info/inful/doccsite/internal/render"
	"git.home.luguber.info/inful/doccsite/internal/target"
)

// Phase names the exporter's progress states.
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseTargetPrepared  Phase = "target_prepared"
	PhaseResourcesCopied Phase = "resources_copied"
	PhasePagesGenerated  Phase = "pages_generated"
	PhaseDone            Phase = "done"
	PhaseAborted         Phase = "aborted"
)

// Exporter orchestrates one export run. Construct with New, run Export once.
type Exporter struct {
	target   *target.Target
	loader   *archive.Loader
	renderer render.Renderer
	opts     Options
	recorder metrics.Recorder

	phase  Phase
	report *Report
}

// New creates an exporter writing to t with the given renderer and options.
func New(t *target.Target, renderer render.Renderer, opts Options) *Exporter {
	return &Exporter{
		target:   t,
		loader:   archive.NewLoader(),
		renderer: renderer,
		opts:     opts,
		recorder: metrics.NoopRecorder{},
		phase:    PhaseNotStarted,
	}
}

// WithRecorder replaces the default noop metrics recorder.
func (e *Exporter) WithRecorder(r metrics.Recorder) *Exporter {
	if r != nil {
		e.recorder = r
	}
	return e
}

// Phase returns the exporter's current progress state.
func (e *Exporter) Phase() Phase { return e.phase }

// Export runs the full pipeline over the archive bundles at archivePaths.
// Fatal errors abort remaining phases; per-page and per-resource failures
// accumulate in the returned report. The report is non-nil even on error.
func (e *Exporter) Export(archivePaths []string) (*Report, error) {
	e.report = newReport()
	defer e.report.finish(e.recorder)

	slog.Info("Starting export",
		logfields.RunID(e.report.RunID),
		logfields.Target(e.target.Root()),
		logfields.Count(len(archivePaths)),
	)

	if err := e.runPhase("prepare_target", func() error { return e.prepareTarget() }); err != nil {
		return e.abort(err)
	}
	e.phase = PhaseTargetPrepared

	var archives []*archive.Archive
	if err := e.runPhase("load_archives", func() error {
		var err error
		archives, err = e.loader.Load(archivePaths)
		return err
	}); err != nil {
		return e.abort(err)
	}
	e.report.Archives = len(archives)

	if err := e.runPhase("copy_resources", func() error { return e.copyResources(archives) }); err != nil {
		return e.abort(err)
	}
	e.phase = PhaseResourcesCopied

	if err := e.runPhase("generate_pages", func() error { return e.generatePages(archives) }); err != nil {
		return e.abort(err)
	}
	e.phase = PhasePagesGenerated

	e.phase = PhaseDone
	return e.report, nil
}

// prepareTarget creates the target root, or refuses to touch an existing
// one unless force is set. No writes happen before this gate passes.
func (e *Exporter) prepareTarget() error {
	if e.target.Exists() {
		if !e.opts.Force {
			return errors.TargetExists(e.target.Root())
		}
		slog.Info("Target exists, merging due to force", logfields.Target(e.target.Root()))
		return nil
	}
	if err := e.target.EnsureDir("."); err != nil {
		return errors.TargetWriteFailed(e.target.Root(), err)
	}
	return nil
}

func (e *Exporter) copyResources(archives []*archive.Archive) error {
	copier := &ResourceCopier{Target: e.target, Recorder: e.recorder, Report: e.report}
	for _, a := range archives {
		if err := copier.CopyResources(a, e.opts); err != nil {
			return err
		}
	}
	copier.WriteSiteStylesheet()
	return nil
}

func (e *Exporter) generatePages(archives []*archive.Archive) error {
	for _, a := range archives {
		builder := &FolderBuilder{
			Target:   e.target,
			Renderer: e.renderer,
			Recorder: e.recorder,
			Report:   e.report,
			Archive:  a.Name(),
		}
		// Absence of a requested folder kind is not an error.
		if e.opts.BuildAPIDocs {
			if docs := a.Documentation(); docs != nil {
				if err := builder.Build(docs, archive.DocumentationFolderName, e.opts.BuildIndex); err != nil {
					return err
				}
			}
		}
		if e.opts.BuildTutorials {
			if tutorials := a.Tutorials(); tutorials != nil {
				if err := builder.Build(tutorials, archive.TutorialsFolderName, e.opts.BuildIndex); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (e *Exporter) runPhase(name string, fn func() error) error {
	t0 := time.Now()
	err := fn()
	dur := time.Since(t0)
	e.report.PhaseDurations[name] = dur
	e.recorder.ObservePhaseDuration(name, dur)
	slog.Debug("Phase complete",
		logfields.Phase(name),
		logfields.DurationMS(float64(dur.Milliseconds())),
		logfields.Error(err),
	)
	return err
}

func (e *Exporter) abort(err error) (*Report, error) {
	e.phase = PhaseAborted
	e.report.Outcome = OutcomeFailed
	slog.Error("Export aborted", logfields.RunID(e.report.RunID), logfields.Error(err))
	return e.report, err
}
