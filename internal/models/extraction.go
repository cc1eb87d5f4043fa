package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Extraction is the outcome of an extraction stage. It is either a
// DecodedExtraction or a RawExtraction; consumers go through MatchExtraction.
type Extraction interface {
	isExtraction()
}

// DecodedExtraction holds the JSON object the model returned.
type DecodedExtraction struct {
	Fields map[string]any
}

// RawExtraction holds the model response verbatim when it could not be decoded.
type RawExtraction struct {
	Text string
}

func (DecodedExtraction) isExtraction() {}
func (RawExtraction) isExtraction()     {}

// MatchExtraction dispatches on the variant of e. Both branches are required.
func MatchExtraction[T any](e Extraction, decoded func(DecodedExtraction) T, raw func(RawExtraction) T) T {
	switch v := e.(type) {
	case DecodedExtraction:
		return decoded(v)
	case *DecodedExtraction:
		return decoded(*v)
	case RawExtraction:
		return raw(v)
	case *RawExtraction:
		return raw(*v)
	default:
		panic(fmt.Sprintf("models: unknown extraction variant %T", e))
	}
}

// RenderExtraction returns the value shown to the user: the decoded mapping,
// or the raw text keyed under "Raw Output".
func RenderExtraction(e Extraction) map[string]any {
	return MatchExtraction(e,
		func(d DecodedExtraction) map[string]any { return d.Fields },
		func(r RawExtraction) map[string]any { return map[string]any{"Raw Output": r.Text} },
	)
}

// PromptJSON serializes e for embedding in a prompt. Decoded values are
// indented objects, raw values are JSON string literals.
func PromptJSON(e Extraction) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	err := MatchExtraction(e,
		func(d DecodedExtraction) error { return enc.Encode(d.Fields) },
		func(r RawExtraction) error { return enc.Encode(r.Text) },
	)
	if err != nil {
		return "", fmt.Errorf("failed to serialize extraction: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
