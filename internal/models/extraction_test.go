package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchExtraction_Variants(t *testing.T) {
	variant := func(e Extraction) string {
		return MatchExtraction(e,
			func(DecodedExtraction) string { return "decoded" },
			func(RawExtraction) string { return "raw" },
		)
	}

	assert.Equal(t, "decoded", variant(DecodedExtraction{Fields: map[string]any{}}))
	assert.Equal(t, "decoded", variant(&DecodedExtraction{Fields: map[string]any{}}))
	assert.Equal(t, "raw", variant(RawExtraction{Text: "x"}))
	assert.Equal(t, "raw", variant(&RawExtraction{Text: "x"}))
}

func TestRenderExtraction(t *testing.T) {
	decoded := DecodedExtraction{Fields: map[string]any{"Skills": []any{"Python"}}}
	assert.Equal(t, decoded.Fields, RenderExtraction(decoded))

	raw := RawExtraction{Text: "Sure! {skills: [...]}"}
	assert.Equal(t, map[string]any{"Raw Output": "Sure! {skills: [...]}"}, RenderExtraction(raw))
}

func TestPromptJSON(t *testing.T) {
	decoded := DecodedExtraction{Fields: map[string]any{"Job Title": "Python Developer"}}
	out, err := PromptJSON(decoded)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Job Title\": \"Python Developer\"\n}", out)

	raw := RawExtraction{Text: "line one\n\"quoted\""}
	out, err = PromptJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, `"line one\n\"quoted\""`, out)
}

func TestUploadedDocument(t *testing.T) {
	var missing *UploadedDocument
	assert.True(t, missing.IsEmpty())
	assert.True(t, (&UploadedDocument{Filename: "cv.pdf"}).IsEmpty())

	doc := &UploadedDocument{Filename: "Resume.PDF", Data: []byte("x")}
	assert.False(t, doc.IsEmpty())
}

func TestPromptJSON_KeepsMarkup(t *testing.T) {
	out, err := PromptJSON(RawExtraction{Text: "C++ & <Go>"})
	require.NoError(t, err)
	assert.Equal(t, `"C++ & <Go>"`, out)
}
