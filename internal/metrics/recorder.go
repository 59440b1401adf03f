// Package metrics provides observability hooks for export runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection never requires nil checks at call
// sites. The Prometheus implementation is activated from the CLI when a
// metrics output file is requested.
package metrics

import "time"

// Recorder defines observability hooks for export and phase metrics.
type Recorder interface {
	ObservePhaseDuration(phase string, d time.Duration)
	ObserveExportDuration(d time.Duration)
	IncPagesRendered()
	IncIndexVariants()
	IncPageFailures()
	AddAssetsCopied(kind string, n int)
	AddAssetFailures(kind string, n int)
	IncExportOutcome(outcome string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePhaseDuration(string, time.Duration) {}
func (NoopRecorder) ObserveExportDuration(time.Duration)        {}
func (NoopRecorder) IncPagesRendered()                          {}
func (NoopRecorder) IncIndexVariants()                          {}
func (NoopRecorder) IncPageFailures()                           {}
func (NoopRecorder) AddAssetsCopied(string, int)                {}
func (NoopRecorder) AddAssetFailures(string, int)               {}
func (NoopRecorder) IncExportOutcome(string)                    {}
