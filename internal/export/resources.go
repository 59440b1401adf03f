package export

import (
	_ "embed"
	"log/slog"
	"path"

	"git.home.luguber.info/inful/doccsite/internal/archive"
	"git.home.luguber.info/inful/doccsite/internal/errors"
	"git.home.luguber.info/inful/doccsite/internal/logfields"
	"git.home.luguber.info/inful/doccsite/internal/metrics"
	"git.home.luguber.info/inful/doccsite/internal/target"
)

//go:embed assets/site.css
var siteCSS string

// ResourceCopier copies an archive's static assets into the target.
type ResourceCopier struct {
	Target   *target.Target
	Recorder metrics.Recorder
	Report   *Report
}

// CopyResources copies all static assets of one archive. Stylesheets and
// system images honor the keep-hash policy; user assets are never
// content-hashed by convention and always keep their names.
func (c *ResourceCopier) CopyResources(a *archive.Archive, opts Options) error {
	if opts.CopySystemCSS && len(a.Stylesheets()) > 0 {
		stats, err := c.Target.CopyCSS(a.Stylesheets(), opts.KeepHash)
		if err != nil {
			return errors.TargetWriteFailed(target.CSSDir, err)
		}
		c.record("css", stats)
	}

	userAssets := []struct {
		sources []string
		into    string
		kind    string
	}{
		{a.UserImages(), "images", "images"},
		{a.UserVideos(), "videos", "videos"},
		{a.UserDownloads(), "downloads", "downloads"},
		{a.Favicons(), ".", "favicons"},
	}
	for _, ua := range userAssets {
		if err := c.copy(ua.sources, ua.into, true, ua.kind); err != nil {
			return err
		}
	}

	// System images ARE content-hashed, so the keep-hash policy applies.
	if err := c.copy(a.SystemImages(), "img", opts.KeepHash, "img"); err != nil {
		return err
	}

	slog.Debug("Copied archive resources", logfields.Archive(a.Name()))
	return nil
}

// WriteSiteStylesheet writes the fixed site stylesheet. A failure here is a
// warning, not fatal: the site remains usable without it.
func (c *ResourceCopier) WriteSiteStylesheet() {
	rel := path.Join(target.CSSDir, "site.css")
	if err := c.Target.Write(siteCSS, rel); err != nil {
		werr := errors.StylesheetWriteFailed(err)
		slog.Warn("Failed to write site stylesheet", logfields.Error(err))
		c.Report.addWarning(werr.Error())
		return
	}
	slog.Debug("Wrote site stylesheet", logfields.Path(rel))
}

func (c *ResourceCopier) copy(sources []string, into string, keepHash bool, kind string) error {
	stats, err := c.Target.CopyRaw(sources, into, keepHash)
	if err != nil {
		return errors.TargetWriteFailed(into, err)
	}
	c.record(kind, stats)
	return nil
}

func (c *ResourceCopier) record(kind string, stats target.CopyStats) {
	c.Report.AssetsCopied += stats.Copied
	c.Report.AssetsFailed += stats.Failed
	c.Recorder.AddAssetsCopied(kind, stats.Copied)
	c.Recorder.AddAssetFailures(kind, stats.Failed)
}
