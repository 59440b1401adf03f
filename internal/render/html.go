package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/doccsite/internal/archive"
	"git.home.luguber.info/inful/doccsite/internal/config"
)

//go:embed templates/page.html.tmpl
var pageTemplate string

var titleCaser = cases.Title(language.English)

// HTMLRenderer renders page documents through the embedded page template.
// Markdown fragments inside content sections go through goldmark.
type HTMLRenderer struct {
	site *config.SiteConfig
	tmpl *template.Template
	md   goldmark.Markdown
}

// NewHTMLRenderer creates a renderer for the given site configuration.
func NewHTMLRenderer(site *config.SiteConfig) *HTMLRenderer {
	if site == nil {
		site = config.Default()
	}
	return &HTMLRenderer{
		site: site,
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

type topicLink struct {
	Title string
	Href  string
}

type topicSectionView struct {
	Title string
	Links []topicLink
}

type pageView struct {
	Title       string
	SiteTitle   string
	ThemeColor  string
	PathToRoot  string
	Stylesheets []string
	Abstract    template.HTML
	Sections    []template.HTML
	Topics      []topicSectionView
	IsIndex     bool
}

// Render produces the full HTML page for doc under the given context.
func (r *HTMLRenderer) Render(doc *archive.Document, ctx Context) (string, error) {
	view := pageView{
		Title:       doc.Title,
		SiteTitle:   r.site.Title,
		ThemeColor:  r.site.ThemeColor,
		PathToRoot:  ctx.PathToRoot,
		Stylesheets: r.stylesheets(ctx),
		IsIndex:     ctx.IsIndex,
	}

	if len(doc.Abstract) > 0 {
		html, err := r.toHTML(inlineMarkdown(doc.Abstract, ctx))
		if err != nil {
			return "", fmt.Errorf("failed to render abstract: %w", err)
		}
		view.Abstract = html
	}

	for _, section := range doc.Sections {
		html, err := r.toHTML(sectionMarkdown(section, ctx))
		if err != nil {
			return "", fmt.Errorf("failed to render section %s: %w", section.Kind, err)
		}
		view.Sections = append(view.Sections, html)
	}

	for _, topics := range doc.TopicSections {
		tv := topicSectionView{Title: topics.Title}
		for _, id := range topics.Identifiers {
			ref, ok := ctx.References[id]
			if !ok {
				continue
			}
			tv.Links = append(tv.Links, topicLink{Title: ref.Title, Href: resolveHref(ref, ctx)})
		}
		view.Topics = append(view.Topics, tv)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute page template: %w", err)
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) toHTML(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- output of the markdown renderer over bundle content
	return template.HTML(buf.String()), nil
}

func (r *HTMLRenderer) stylesheets(ctx Context) []string {
	sheets := make([]string, 0, len(r.site.ExtraStylesheets))
	for _, s := range r.site.ExtraStylesheets {
		if strings.Contains(s, "://") {
			sheets = append(sheets, s)
			continue
		}
		sheets = append(sheets, ctx.PathToRoot+"css/"+s)
	}
	return sheets
}

// resolveHref turns a reference table URL into a link relative to the page.
// Collection references become directory-style links when the context asks
// for index links; everything else links to the page file itself.
func resolveHref(ref archive.Reference, ctx Context) string {
	if strings.Contains(ref.URL, "://") {
		return ref.URL
	}
	rel := strings.TrimPrefix(ref.URL, "/")
	if rel == "" {
		return ctx.PathToRoot
	}
	if ctx.IndexLinks && ref.Role == "collection" {
		return ctx.PathToRoot + rel + "/"
	}
	return ctx.PathToRoot + rel + ".html"
}

// FallbackTitle derives a presentable page title from a page base name.
func FallbackTitle(baseName string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(baseName)
	return titleCaser.String(cleaned)
}
