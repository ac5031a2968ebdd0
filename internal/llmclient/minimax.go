package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	minimaxDefaultURL   = "https://api.minimax.io/v1/text/chatcompletion_v2"
	minimaxDefaultModel = "M2-her"
)

// MinimaxClient calls the Minimax chat completion API (OpenAI-compatible
// message shape with a Minimax-specific base_resp error envelope).
type MinimaxClient struct {
	http    *http.Client
	apiKey  string
	model   string
	baseURL string
}

// NewMinimaxClient creates a Minimax client. An empty model selects the
// fixed default.
func NewMinimaxClient(apiKey, model string) *MinimaxClient {
	if model == "" {
		model = minimaxDefaultModel
	}
	return &MinimaxClient{
		http:    &http.Client{Timeout: 60 * time.Second},
		apiKey:  apiKey,
		model:   model,
		baseURL: minimaxDefaultURL,
	}
}

func (m *MinimaxClient) Name() string { return "Minimax:" + m.model }

type minimaxMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type minimaxChatReq struct {
	Model               string           `json:"model"`
	Messages            []minimaxMessage `json:"messages"`
	Temperature         float32          `json:"temperature"`
	MaxCompletionTokens int              `json:"max_completion_tokens,omitempty"`
}

type minimaxChatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	BaseResp struct {
		StatusCode int64  `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
}

// Complete issues one synchronous chat completion call and returns the raw
// message content. The credential is checked first so a misconfigured
// deployment fails before spending a network round trip.
func (m *MinimaxClient) Complete(ctx context.Context, instruction, content string, opts Options) (string, error) {
	key := strings.TrimSpace(m.apiKey)
	if key == "" || key == PlaceholderAPIKey {
		return "", ErrNotConfigured
	}

	body := minimaxChatReq{
		Model: m.model,
		Messages: []minimaxMessage{
			{Role: "system", Content: instruction},
			{Role: "user", Content: content},
		},
		Temperature:         opts.Temperature,
		MaxCompletionTokens: opts.MaxTokens,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := m.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(raw) > max {
			raw = raw[:max]
		}
		return "", &TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out minimaxChatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.BaseResp.StatusCode != 0 {
		return "", &ProviderError{Code: out.BaseResp.StatusCode, Message: out.BaseResp.StatusMsg}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return out.Choices[0].Message.Content, nil
}
