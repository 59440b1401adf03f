package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyArchive    = "archive"
	KeyPath       = "path"
	KeyPage       = "page"
	KeyFolder     = "folder"
	KeyTarget     = "target"
	KeyPhase      = "phase"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
	KeyRunID      = "run_id"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Archive(name string) slog.Attr   { return slog.String(KeyArchive, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func Folder(f string) slog.Attr       { return slog.String(KeyFolder, f) }
func Target(t string) slog.Attr       { return slog.String(KeyTarget, t) }
func Phase(p string) slog.Attr        { return slog.String(KeyPhase, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
