package jsonutil

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON reports that no parseable JSON value could be recovered
// from the model output.
var ErrNoJSON = errors.New("no JSON value found in model output")

var (
	leadingJSONFence = regexp.MustCompile("(?i)^```json\\s*")
	leadingBareFence = regexp.MustCompile("(?i)^```\\s*")
	trailingFence    = regexp.MustCompile("(?i)\\s*```$")
)

// ExtractJSON recovers a syntactically valid JSON value from free-form
// model text. Models reliably emit the right JSON content but unreliably
// emit only JSON, so the recovery is positional rather than grammatical:
//
//  1. strip a leading ``` or ```json fence and a trailing ``` fence
//  2. drop any prose before the first '{' or '[', whichever comes first
//  3. drop any prose after the last '}' or ']', whichever comes last
//  4. parse what remains
//
// Input that is already bare valid JSON passes through unchanged.
func ExtractJSON(raw string) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = leadingJSONFence.ReplaceAllString(cleaned, "")
	cleaned = leadingBareFence.ReplaceAllString(cleaned, "")
	cleaned = trailingFence.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	firstBrace := strings.Index(cleaned, "{")
	firstBracket := strings.Index(cleaned, "[")
	start := -1
	switch {
	case firstBrace != -1 && (firstBracket == -1 || firstBrace < firstBracket):
		start = firstBrace
	case firstBracket != -1:
		start = firstBracket
	}
	if start > 0 {
		cleaned = cleaned[start:]
	}

	lastBrace := strings.LastIndex(cleaned, "}")
	lastBracket := strings.LastIndex(cleaned, "]")
	end := lastBrace
	if lastBracket > end {
		end = lastBracket
	}
	if end != -1 && end < len(cleaned)-1 {
		cleaned = cleaned[:end+1]
	}

	var scratch any
	if err := json.Unmarshal([]byte(cleaned), &scratch); err != nil {
		return nil, errors.Join(ErrNoJSON, err)
	}
	return json.RawMessage(cleaned), nil
}

// Unmarshal decodes raw JSON into v with one level of best effort: if the
// whole payload is a JSON-encoded string wrapping the actual document
// (some models double-encode), it unwraps once and retries.
func Unmarshal(raw []byte, v any) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}
	var s string
	if err2 := json.Unmarshal(raw, &s); err2 == nil {
		if err3 := json.Unmarshal([]byte(s), v); err3 == nil {
			return nil
		}
	}
	return err
}
