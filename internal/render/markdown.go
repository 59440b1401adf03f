package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/doccsite/internal/archive"
)

// inlineMarkdown flattens inline content spans into a markdown fragment.
// Cross-document references become links resolved through the context.
func inlineMarkdown(spans []archive.InlineContent, ctx Context) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Type {
		case "codeVoice":
			b.WriteString("`" + span.Code + "`")
		case "reference":
			if ref, ok := ctx.References[span.Identifier]; ok {
				fmt.Fprintf(&b, "[%s](%s)", ref.Title, resolveHref(ref, ctx))
			} else {
				b.WriteString(span.Text)
			}
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// blockMarkdown converts one block element into markdown.
func blockMarkdown(block archive.BlockContent, ctx Context) string {
	switch block.Type {
	case "heading":
		level := block.Level
		if level < 1 {
			level = 2
		}
		return strings.Repeat("#", level) + " " + block.Text
	case "codeListing":
		return "```" + block.Syntax + "\n" + strings.Join(block.Code, "\n") + "\n```"
	case "paragraph":
		return inlineMarkdown(block.InlineContent, ctx)
	default:
		if len(block.InlineContent) > 0 {
			return inlineMarkdown(block.InlineContent, ctx)
		}
		return block.Text
	}
}

// sectionMarkdown converts a content section into one markdown document.
func sectionMarkdown(section archive.ContentSection, ctx Context) string {
	blocks := make([]string, 0, len(section.Content))
	for _, block := range section.Content {
		if md := blockMarkdown(block, ctx); md != "" {
			blocks = append(blocks, md)
		}
	}
	return strings.Join(blocks, "\n\n")
}
