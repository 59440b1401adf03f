package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccsite/internal/archive"
	"git.home.luguber.info/inful/doccsite/internal/metrics"
	"git.home.luguber.info/inful/doccsite/internal/render"
	"git.home.luguber.info/inful/doccsite/internal/target"
)

// stubRenderer encodes the rendering context into the page body so tests
// can assert per-page context from the written files. failTitles selects
// documents whose render fails.
type stubRenderer struct {
	failTitles map[string]bool
}

func (s *stubRenderer) Render(doc *archive.Document, ctx render.Context) (string, error) {
	if s.failTitles[doc.Title] {
		return "", fmt.Errorf("render blew up for %s", doc.Title)
	}
	return fmt.Sprintf("title=%s root=%s index=%v links=%v",
		doc.Title, ctx.PathToRoot, ctx.IsIndex, ctx.IndexLinks), nil
}

// writeSlothBundle lays out the canonical scenario: documentation with
// pages Index and Foo plus a subfolder Foo/ containing page Bar.
func writeSlothBundle(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "Sloth.doccarchive")
	pages := map[string]string{
		"data/documentation/Index.json":   bundlePage("Index"),
		"data/documentation/Foo.json":     bundlePage("Foo"),
		"data/documentation/Foo/Bar.json": bundlePage("Bar"),
	}
	for rel, content := range pages {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func bundlePage(title string) string {
	return fmt.Sprintf(`{"kind": "article", "metadata": {"title": %q}, "references": {}}`, title)
}

func newBuilder(t *testing.T, r render.Renderer) (*FolderBuilder, *target.Target) {
	t.Helper()
	tgt := target.New(filepath.Join(t.TempDir(), "site"))
	return &FolderBuilder{
		Target:   tgt,
		Renderer: r,
		Recorder: metrics.NoopRecorder{},
		Report:   newReport(),
		Archive:  "Sloth",
	}, tgt
}

func readPage(t *testing.T, tgt *target.Target, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(tgt.Root(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestBuildSlothScenario(t *testing.T) {
	a, err := archive.Open(writeSlothBundle(t))
	require.NoError(t, err)
	builder, tgt := newBuilder(t, &stubRenderer{})

	require.NoError(t, builder.Build(a.Documentation(), "documentation", true))

	// Normal pages at depth 1 get one "../" segment.
	assert.Contains(t, readPage(t, tgt, "documentation/Index.html"), "root=../ index=false")
	assert.Contains(t, readPage(t, tgt, "documentation/Foo.html"), "root=../ index=false")

	// The index variant lives one directory deeper.
	idx := readPage(t, tgt, "documentation/Foo/index.html")
	assert.Contains(t, idx, "title=Foo")
	assert.Contains(t, idx, "root=../../ index=true links=true")

	// Pages inside Foo/ are at depth 2.
	assert.Contains(t, readPage(t, tgt, "documentation/Foo/Bar.html"), "root=../../ index=false")

	// Bar has no same-named sibling subfolder, so no index variant.
	assert.NoFileExists(t, filepath.Join(tgt.Root(), "documentation", "Bar", "index.html"))

	assert.Equal(t, 3, builder.Report.PagesRendered)
	assert.Equal(t, 1, builder.Report.IndexVariants)
	assert.Empty(t, builder.Report.FailedPages)
}

func TestBuildWithoutIndex(t *testing.T) {
	a, err := archive.Open(writeSlothBundle(t))
	require.NoError(t, err)
	builder, tgt := newBuilder(t, &stubRenderer{})

	require.NoError(t, builder.Build(a.Documentation(), "documentation", false))

	assert.FileExists(t, filepath.Join(tgt.Root(), "documentation", "Foo.html"))
	assert.NoFileExists(t, filepath.Join(tgt.Root(), "documentation", "Foo", "index.html"))
	// Normal pages carry the index-links flag only when index building is on.
	assert.Contains(t, readPage(t, tgt, "documentation/Foo.html"), "links=false")
	assert.Equal(t, 0, builder.Report.IndexVariants)
}

// One failing page among siblings does not stop the others.
func TestBuildPartialFailure(t *testing.T) {
	a, err := archive.Open(writeSlothBundle(t))
	require.NoError(t, err)
	builder, tgt := newBuilder(t, &stubRenderer{failTitles: map[string]bool{"Index": true}})

	require.NoError(t, builder.Build(a.Documentation(), "documentation", true))

	assert.NoFileExists(t, filepath.Join(tgt.Root(), "documentation", "Index.html"))
	assert.FileExists(t, filepath.Join(tgt.Root(), "documentation", "Foo.html"))
	assert.FileExists(t, filepath.Join(tgt.Root(), "documentation", "Foo", "Bar.html"))

	require.Len(t, builder.Report.FailedPages, 1)
	failure := builder.Report.FailedPages[0]
	assert.Equal(t, "Index.json", failure.Page)
	assert.Equal(t, "documentation", failure.Folder)
	assert.Contains(t, failure.Err.Error(), "render blew up")
	assert.Equal(t, 2, builder.Report.PagesRendered)
}

func TestBuildSkipsUnparseablePage(t *testing.T) {
	root := writeSlothBundle(t)
	bad := filepath.Join(root, "data", "documentation", "Broken.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))

	a, err := archive.Open(root)
	require.NoError(t, err)
	builder, tgt := newBuilder(t, &stubRenderer{})

	require.NoError(t, builder.Build(a.Documentation(), "documentation", true))

	assert.NoFileExists(t, filepath.Join(tgt.Root(), "documentation", "Broken.html"))
	assert.FileExists(t, filepath.Join(tgt.Root(), "documentation", "Index.html"))
	require.Len(t, builder.Report.FailedPages, 1)
	assert.Equal(t, "Broken.json", builder.Report.FailedPages[0].Page)
}

func TestBuildFallbackTitle(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Untitled.doccarchive")
	page := filepath.Join(root, "data", "documentation", "getting-started.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o750))
	require.NoError(t, os.WriteFile(page, []byte(`{"kind": "article"}`), 0o644))

	a, err := archive.Open(root)
	require.NoError(t, err)
	builder, tgt := newBuilder(t, &stubRenderer{})

	require.NoError(t, builder.Build(a.Documentation(), "documentation", true))
	assert.Contains(t, readPage(t, tgt, "documentation/getting-started.html"), "title=Getting Started")
}

// Depth accounting: every generated page's path-to-root prefix has exactly
// as many "../" segments as its folder depth, index variants one more.
func TestBuildDepthPrefixes(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Deep.doccarchive")
	pages := []string{
		"data/documentation/a.json",
		"data/documentation/a/b.json",
		"data/documentation/a/b/c.json",
	}
	for _, rel := range pages {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(bundlePage(rel)), 0o644))
	}
	// b.json needs a sibling subfolder b/ for its index variant.
	a, err := archive.Open(root)
	require.NoError(t, err)
	builder, tgt := newBuilder(t, &stubRenderer{})

	require.NoError(t, builder.Build(a.Documentation(), "documentation", true))

	wantDepth := map[string]int{
		"documentation/a.html":         1,
		"documentation/a/index.html":   2,
		"documentation/a/b.html":       2,
		"documentation/a/b/index.html": 3,
		"documentation/a/b/c.html":     3,
	}
	for rel, depth := range wantDepth {
		content := readPage(t, tgt, rel)
		want := "root=" + strings.Repeat("../", depth) + " "
		assert.Contains(t, content, want, rel)
	}
}
