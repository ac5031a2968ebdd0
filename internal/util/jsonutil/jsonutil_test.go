package jsonutil

import (
	"errors"
	"testing"
)

func TestExtractJSON_BareJSONUnchanged(t *testing.T) {
	in := `{"a":1}`
	out, err := ExtractJSON(in)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if string(out) != in {
		t.Fatalf("expected %q unchanged, got %q", in, string(out))
	}
}

func TestExtractJSON_Idempotent(t *testing.T) {
	first, err := ExtractJSON(`{"a":1}`)
	if err != nil {
		t.Fatalf("first extract error: %v", err)
	}
	second, err := ExtractJSON(string(first))
	if err != nil {
		t.Fatalf("second extract error: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("extraction not idempotent: %q vs %q", first, second)
	}
}

func TestExtractJSON_StripsFences(t *testing.T) {
	out, err := ExtractJSON("```json\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if string(out) != `{"a":1}` {
		t.Fatalf("expected fences stripped, got %q", string(out))
	}
}

func TestExtractJSON_StripsUntaggedFences(t *testing.T) {
	out, err := ExtractJSON("```\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if string(out) != `{"a":1}` {
		t.Fatalf("expected fences stripped, got %q", string(out))
	}
}

func TestExtractJSON_DiscardsSurroundingProse(t *testing.T) {
	out, err := ExtractJSON(`Sure! Here you go: {"a":1} Hope that helps!`)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if string(out) != `{"a":1}` {
		t.Fatalf("expected prose discarded, got %q", string(out))
	}
}

func TestExtractJSON_ArrayBeforeObject(t *testing.T) {
	out, err := ExtractJSON(`noise [1,2,3] trailing`)
	if err != nil {
		t.Fatalf("extract error: %v", err)
	}
	if string(out) != `[1,2,3]` {
		t.Fatalf("expected array extracted, got %q", string(out))
	}
}

func TestExtractJSON_TruncatedFails(t *testing.T) {
	_, err := ExtractJSON(`{"a": 1`)
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON for truncated input, got %v", err)
	}
}

func TestExtractJSON_NoBracketsFails(t *testing.T) {
	_, err := ExtractJSON("I could not produce a result, sorry.")
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON for bracketless input, got %v", err)
	}
}

func TestUnmarshal_UnwrapsDoubleEncodedString(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := Unmarshal([]byte(`"{\"a\":1}"`), &v); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if v.A != 1 {
		t.Fatalf("expected a=1, got %d", v.A)
	}
}

func TestUnmarshal_TypeMismatchFails(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := Unmarshal([]byte(`{"a":"not a number"}`), &v); err == nil {
		t.Fatal("expected type error")
	}
}
