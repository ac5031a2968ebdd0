package llmclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*MinimaxClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewMinimaxClient("test-key", "")
	c.baseURL = srv.URL
	return c, srv
}

func TestMinimax_MissingKey(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })
	c.apiKey = ""
	_, err := c.Complete(context.Background(), "sys", "user", Options{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no request, got %d", calls)
	}
}

func TestMinimax_PlaceholderKey(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	})
	c.apiKey = PlaceholderAPIKey
	_, err := c.Complete(context.Background(), "sys", "user", Options{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestMinimax_RequestShape(t *testing.T) {
	var got minimaxChatReq
	var auth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": `{"ok":true}`}}},
		})
	})
	out, err := c.Complete(context.Background(), "be safe", "check this", Options{Temperature: 0.4, MaxTokens: 1024})
	if err != nil {
		t.Fatalf("complete error: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("unexpected content %q", out)
	}
	if auth != "Bearer test-key" {
		t.Fatalf("unexpected auth header %q", auth)
	}
	if got.Model != minimaxDefaultModel {
		t.Fatalf("unexpected model %q", got.Model)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages %+v", got.Messages)
	}
	if got.Temperature != 0.4 || got.MaxCompletionTokens != 1024 {
		t.Fatalf("unexpected options temp=%v max=%d", got.Temperature, got.MaxCompletionTokens)
	}
}

func TestMinimax_TransportError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})
	_, err := c.Complete(context.Background(), "sys", "user", Options{})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", te.StatusCode)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "upstream exploded") {
		t.Fatalf("error should carry status and body: %v", err)
	}
}

func TestMinimax_ProviderEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"base_resp": map[string]any{"status_code": 1008, "status_msg": "insufficient balance"},
		})
	})
	_, err := c.Complete(context.Background(), "sys", "user", Options{})
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Code != 1008 || !strings.Contains(pe.Message, "insufficient balance") {
		t.Fatalf("unexpected provider error %+v", pe)
	}
}

func TestMinimax_EmptyChoices(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})
	_, err := c.Complete(context.Background(), "sys", "user", Options{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestMinimax_EmptyContent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": ""}}},
		})
	})
	_, err := c.Complete(context.Background(), "sys", "user", Options{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}
