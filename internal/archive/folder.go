package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DocumentFolder represents one directory level within an archive's logical
// content tree. Level is the depth from the tree root (the data/ directory
// is level 0, so documentation/ and tutorials/ are level 1). The level of
// every subfolder is its parent's level plus one.
type DocumentFolder struct {
	Path       string
	Level      int
	Subfolders []*DocumentFolder
	PageURLs   []string
}

// Name returns the folder's final path segment.
func (f *DocumentFolder) Name() string {
	return filepath.Base(f.Path)
}

// Document parses the render-JSON page at pageURL. pageURL must be one of
// the folder's PageURLs.
func (f *DocumentFolder) Document(pageURL string) (*Document, error) {
	data, err := os.ReadFile(pageURL) // #nosec G304 -- pageURL was enumerated from the bundle
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", pageURL, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", pageURL, err)
	}
	return doc, nil
}

func (f *DocumentFolder) subfolder(name string) *DocumentFolder {
	for _, sub := range f.Subfolders {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

// walkFolder builds the folder tree rooted at dir. Entries are sorted so
// traversal order is deterministic across runs.
func walkFolder(dir string, level int) (*DocumentFolder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	folder := &DocumentFolder{Path: dir, Level: level}
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := walkFolder(child, level+1)
			if err != nil {
				return nil, err
			}
			folder.Subfolders = append(folder.Subfolders, sub)
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			folder.PageURLs = append(folder.PageURLs, child)
		}
	}
	return folder, nil
}
