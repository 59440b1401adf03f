package archive

import (
	"encoding/json"
	"fmt"
)

// Document is a parsed single page from the archive's data/ tree. It carries
// the reference table used by the renderer to resolve cross-document links.
type Document struct {
	Title         string
	Kind          string
	Role          string
	Abstract      []InlineContent
	Sections      []ContentSection
	TopicSections []TopicSection
	References    map[string]Reference
}

// InlineContent is one span of inline page content.
type InlineContent struct {
	Type       string `json:"type"`
	Text       string `json:"text,omitempty"`
	Code       string `json:"code,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

// BlockContent is one block element inside a content section.
type BlockContent struct {
	Type          string          `json:"type"`
	Level         int             `json:"level,omitempty"`
	Text          string          `json:"text,omitempty"`
	Syntax        string          `json:"syntax,omitempty"`
	Code          []string        `json:"code,omitempty"`
	InlineContent []InlineContent `json:"inlineContent,omitempty"`
}

// ContentSection groups block content under a section kind.
type ContentSection struct {
	Kind    string         `json:"kind"`
	Content []BlockContent `json:"content,omitempty"`
}

// TopicSection lists related page identifiers under a shared heading.
type TopicSection struct {
	Title       string   `json:"title"`
	Identifiers []string `json:"identifiers"`
}

// Reference is one entry of a document's cross-reference table.
type Reference struct {
	Identifier string          `json:"identifier"`
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	Role       string          `json:"role,omitempty"`
	URL        string          `json:"url"`
	Abstract   []InlineContent `json:"abstract,omitempty"`
}

type documentPayload struct {
	Kind     string `json:"kind"`
	Metadata struct {
		Title string `json:"title"`
		Role  string `json:"role"`
	} `json:"metadata"`
	Abstract               []InlineContent      `json:"abstract"`
	PrimaryContentSections []ContentSection     `json:"primaryContentSections"`
	TopicSections          []TopicSection       `json:"topicSections"`
	References             map[string]Reference `json:"references"`
}

// ParseDocument decodes a render-JSON page document.
func ParseDocument(data []byte) (*Document, error) {
	var payload documentPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid page document: %w", err)
	}
	return &Document{
		Title:         payload.Metadata.Title,
		Kind:          payload.Kind,
		Role:          payload.Metadata.Role,
		Abstract:      payload.Abstract,
		Sections:      payload.PrimaryContentSections,
		TopicSections: payload.TopicSections,
		References:    payload.References,
	}, nil
}
