package archive

import (
	"log/slog"

	"git.home.luguber.info/inful/doccsite/internal/errors"
	"git.home.luguber.info/inful/doccsite/internal/logfields"
)

// Loader opens archive bundles from filesystem paths.
type Loader struct{}

// NewLoader creates a new archive loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens every path as an archive bundle. Loading is all-or-nothing:
// the first path that does not match the expected bundle structure fails
// the whole operation.
func (l *Loader) Load(paths []string) ([]*Archive, error) {
	archives := make([]*Archive, 0, len(paths))
	for _, path := range paths {
		a, err := Open(path)
		if err != nil {
			return nil, errors.ArchiveFormat(path, err)
		}
		slog.Debug("Loaded archive", logfields.Archive(a.Name()), logfields.Path(path))
		archives = append(archives, a)
	}
	return archives, nil
}
