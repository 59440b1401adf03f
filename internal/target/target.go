// Package target abstracts the writable output location of an export run.
// All writes are relative to one target root; directories are created on
// demand and writes are idempotent overwrites.
package target

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/doccsite/internal/errors"
	"git.home.luguber.info/inful/doccsite/internal/logfields"
)

// CSSDir is the fixed subdirectory for stylesheet files.
const CSSDir = "css"

// Target owns the output directory of one export run.
type Target struct {
	root string
}

// CopyStats reports the outcome of a bulk copy. Individual file failures
// are non-fatal; callers decide what to do with the counts.
type CopyStats struct {
	Copied int
	Failed int
}

// New creates a target rooted at dir. Nothing is created until EnsureDir
// or Write is called.
func New(dir string) *Target {
	return &Target{root: dir}
}

// Root returns the target root directory.
func (t *Target) Root() string { return t.root }

// Exists reports whether the target root already exists. Pure check, no
// side effects.
func (t *Target) Exists() bool {
	_, err := os.Stat(t.root)
	return err == nil
}

// EnsureDir creates the directory at rel (and parents) if absent. Idempotent.
func (t *Target) EnsureDir(rel string) error {
	dir := filepath.Join(t.root, rel)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create target directory %s: %w", dir, err)
	}
	return nil
}

// Write writes text content to the file at rel, creating parent directories
// as needed. Existing files are overwritten silently; the caller has already
// gated on force.
func (t *Target) Write(content string, rel string) error {
	path := filepath.Join(t.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	// #nosec G306 -- generated pages are public site content
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CopyRaw copies each source file into the target subdirectory rel. When
// keepHash is false, content-hashed filenames are rewritten via StripHash.
// Per-file copy failures are logged and skipped; only failure to create the
// destination directory is fatal.
func (t *Target) CopyRaw(sources []string, rel string, keepHash bool) (CopyStats, error) {
	var stats CopyStats
	if len(sources) == 0 {
		return stats, nil
	}
	if err := t.EnsureDir(rel); err != nil {
		return stats, err
	}
	for _, src := range sources {
		name := filepath.Base(src)
		if !keepHash {
			name = StripHash(name)
		}
		dst := filepath.Join(t.root, rel, name)
		if err := copyFile(src, dst); err != nil {
			slog.Warn("Failed to copy resource, skipping",
				logfields.Path(src), logfields.Error(errors.ResourceCopyFailed(src, err)))
			stats.Failed++
			continue
		}
		stats.Copied++
	}
	slog.Debug("Copied resources", logfields.Folder(rel), logfields.Count(stats.Copied))
	return stats, nil
}

// CopyCSS copies stylesheet files into the fixed css subdirectory, honoring
// the same hash rewriting as CopyRaw.
func (t *Target) CopyCSS(sources []string, keepHash bool) (CopyStats, error) {
	return t.CopyRaw(sources, CSSDir, keepHash)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- sources were enumerated from the bundle
	if err != nil {
		return err
	}
	defer in.Close()

	// #nosec G304 G306 -- destination is inside the target root; assets are public
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
