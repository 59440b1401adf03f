package export

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/doccsite/internal/archive"
	"git.home.luguber.info/inful/doccsite/internal/errors"
	"git.home.luguber.info/inful/doccsite/internal/logfields"
	"git.home.luguber.info/inful/doccsite/internal/metrics"
	"git.home.luguber.info/inful/doccsite/internal/render"
	"git.home.luguber.info/inful/doccsite/internal/target"
)

// FolderBuilder walks an archive's logical document folders and writes the
// rendered HTML tree. Per-page failures accumulate in the report; only
// failure to create a target directory aborts the walk.
type FolderBuilder struct {
	Target   *target.Target
	Renderer render.Renderer
	Recorder metrics.Recorder
	Report   *Report
	Archive  string
}

// Build renders folder into the target subdirectory rel. Subfolders are
// processed before this folder's own pages so their directories exist
// before any index-variant write references them.
func (b *FolderBuilder) Build(folder *archive.DocumentFolder, rel string, buildIndex bool) error {
	if err := b.Target.EnsureDir(rel); err != nil {
		return errors.TargetWriteFailed(rel, err)
	}

	subNames := make(map[string]struct{}, len(folder.Subfolders))
	for _, sub := range folder.Subfolders {
		if err := b.Build(sub, path.Join(rel, sub.Name()), buildIndex); err != nil {
			return err
		}
		subNames[sub.Name()] = struct{}{}
	}

	pathToRoot := render.PathToRoot(folder.Level)
	for _, pageURL := range folder.PageURLs {
		baseName := pageBaseName(pageURL)

		doc, err := folder.Document(pageURL)
		if err != nil {
			b.skipPage(rel, pageURL, err)
			continue
		}
		if doc.Title == "" {
			doc.Title = render.FallbackTitle(baseName)
		}

		ctx := render.Context{
			PathToRoot: pathToRoot,
			References: doc.References,
			IsIndex:    false,
			IndexLinks: buildIndex,
		}
		if err := b.writePage(doc, ctx, path.Join(rel, baseName+".html")); err != nil {
			b.skipPage(rel, pageURL, err)
			continue
		}
		b.Report.PagesRendered++
		b.Recorder.IncPagesRendered()

		// A page named like a sibling subfolder is that subfolder's
		// landing page: render it again as <name>/index.html so the
		// folder can be browsed directly. Exact name equality is the
		// whole heuristic, so a same-named page that is not meant as a
		// landing page still gets a variant.
		if _, ok := subNames[baseName]; ok && buildIndex {
			idxCtx := render.Context{
				PathToRoot: pathToRoot + "../",
				References: doc.References,
				IsIndex:    true,
				IndexLinks: true,
			}
			if err := b.writePage(doc, idxCtx, path.Join(rel, baseName, "index.html")); err != nil {
				b.skipPage(rel, pageURL, err)
				continue
			}
			b.Report.IndexVariants++
			b.Recorder.IncIndexVariants()
		}
	}
	return nil
}

func (b *FolderBuilder) writePage(doc *archive.Document, ctx render.Context, rel string) error {
	html, err := b.Renderer.Render(doc, ctx)
	if err != nil {
		return err
	}
	if err := b.Target.Write(html, rel); err != nil {
		return err
	}
	slog.Debug("Wrote page", logfields.Path(rel))
	return nil
}

func (b *FolderBuilder) skipPage(rel, pageURL string, cause error) {
	err := errors.PageRenderFailed(pageURL, cause)
	slog.Warn("Failed to build page, skipping",
		logfields.Folder(rel),
		logfields.Page(filepath.Base(pageURL)),
		logfields.Error(cause),
	)
	b.Report.addPageFailure(PageFailure{
		Archive: b.Archive,
		Folder:  rel,
		Page:    filepath.Base(pageURL),
		Err:     err,
	})
	b.Recorder.IncPageFailures()
}

func pageBaseName(pageURL string) string {
	base := filepath.Base(pageURL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
