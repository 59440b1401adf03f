// Package archive reads documentation archive bundles: directory trees
// containing render-JSON page documents under data/, plus static assets
// (user images, videos, downloads, favicons, system images, stylesheets).
//
// An Archive is constructed once by Open and immutable afterwards. Page
// documents are parsed lazily via DocumentFolder.Document.
package archive

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotAnArchive indicates a path does not match the expected bundle structure.
var ErrNotAnArchive = errors.New("not a documentation archive bundle")

// Folder names with special meaning inside the data/ tree.
const (
	DocumentationFolderName = "documentation"
	TutorialsFolderName     = "tutorials"
)

// Archive is a parsed, read-only handle to one archive bundle.
type Archive struct {
	path string
	name string
	root *DocumentFolder

	userImages    []string
	userVideos    []string
	userDownloads []string
	favicons      []string
	systemImages  []string
	stylesheets   []string
}

// Open validates the bundle structure at path and enumerates its contents.
// The path must be a directory containing a data/ subdirectory.
func Open(path string) (*Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotAnArchive, path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrNotAnArchive, path)
	}

	dataDir := filepath.Join(path, "data")
	if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: missing data directory", ErrNotAnArchive, path)
	}

	root, err := walkFolder(dataDir, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive content tree: %w", err)
	}

	a := &Archive{
		path: path,
		name: bundleName(path),
		root: root,
	}
	if a.userImages, err = listFiles(filepath.Join(path, "images")); err != nil {
		return nil, err
	}
	if a.userVideos, err = listFiles(filepath.Join(path, "videos")); err != nil {
		return nil, err
	}
	if a.userDownloads, err = listFiles(filepath.Join(path, "downloads")); err != nil {
		return nil, err
	}
	if a.systemImages, err = listFiles(filepath.Join(path, "img")); err != nil {
		return nil, err
	}
	if a.stylesheets, err = listFiles(filepath.Join(path, "css")); err != nil {
		return nil, err
	}
	a.favicons = listFavicons(path)
	return a, nil
}

// Path returns the bundle's source location.
func (a *Archive) Path() string { return a.path }

// Name returns the bundle name without the archive extension.
func (a *Archive) Name() string { return a.name }

// Documentation returns the documentation folder, or nil if the archive
// has no reference documentation.
func (a *Archive) Documentation() *DocumentFolder {
	return a.root.subfolder(DocumentationFolderName)
}

// Tutorials returns the tutorials folder, or nil if the archive has no tutorials.
func (a *Archive) Tutorials() *DocumentFolder {
	return a.root.subfolder(TutorialsFolderName)
}

func (a *Archive) UserImages() []string    { return a.userImages }
func (a *Archive) UserVideos() []string    { return a.userVideos }
func (a *Archive) UserDownloads() []string { return a.userDownloads }
func (a *Archive) Favicons() []string      { return a.favicons }
func (a *Archive) SystemImages() []string  { return a.systemImages }
func (a *Archive) Stylesheets() []string   { return a.stylesheets }

func bundleName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// listFiles returns all regular files under dir, sorted. A missing dir
// yields an empty list; archives are not required to carry every asset kind.
func listFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list assets in %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func listFavicons(path string) []string {
	var favicons []string
	for _, name := range []string{"favicon.ico", "favicon.svg"} {
		p := filepath.Join(path, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			favicons = append(favicons, p)
		}
	}
	return favicons
}
