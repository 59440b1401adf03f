package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	data := []byte(`{
		"kind": "symbol",
		"metadata": {"title": "SlothCreator", "role": "collection"},
		"abstract": [
			{"type": "text", "text": "Catalog sloths you find "},
			{"type": "codeVoice", "code": "Sloth"}
		],
		"primaryContentSections": [
			{
				"kind": "content",
				"content": [
					{"type": "heading", "level": 2, "text": "Overview"},
					{"type": "paragraph", "inlineContent": [{"type": "text", "text": "Sloths are cute."}]},
					{"type": "codeListing", "syntax": "swift", "code": ["let sloth = Sloth()"]}
				]
			}
		],
		"topicSections": [
			{"title": "Essentials", "identifiers": ["doc://com.example/documentation/sloth/eat"]}
		],
		"references": {
			"doc://com.example/documentation/sloth/eat": {
				"identifier": "doc://com.example/documentation/sloth/eat",
				"title": "Eating Habits",
				"type": "topic",
				"url": "/documentation/sloth/eat"
			}
		}
	}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)

	assert.Equal(t, "SlothCreator", doc.Title)
	assert.Equal(t, "symbol", doc.Kind)
	assert.Equal(t, "collection", doc.Role)

	require.Len(t, doc.Abstract, 2)
	assert.Equal(t, "codeVoice", doc.Abstract[1].Type)
	assert.Equal(t, "Sloth", doc.Abstract[1].Code)

	require.Len(t, doc.Sections, 1)
	require.Len(t, doc.Sections[0].Content, 3)
	assert.Equal(t, "heading", doc.Sections[0].Content[0].Type)
	assert.Equal(t, 2, doc.Sections[0].Content[0].Level)
	assert.Equal(t, []string{"let sloth = Sloth()"}, doc.Sections[0].Content[2].Code)

	require.Len(t, doc.TopicSections, 1)
	assert.Equal(t, "Essentials", doc.TopicSections[0].Title)

	ref, ok := doc.References["doc://com.example/documentation/sloth/eat"]
	require.True(t, ok)
	assert.Equal(t, "Eating Habits", ref.Title)
	assert.Equal(t, "/documentation/sloth/eat", ref.URL)
}

func TestParseDocumentInvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte("not json"))
	require.Error(t, err)
}

func TestParseDocumentEmptyObject(t *testing.T) {
	doc, err := ParseDocument([]byte("{}"))
	require.NoError(t, err)
	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.References)
}
