// Package llmclient holds the outbound clients for the hosted language
// model. Each client issues exactly one blocking request per call: no
// retries, no streaming, no timeout beyond the HTTP client default.
package llmclient

import (
	"context"
	"errors"
	"fmt"
)

// PlaceholderAPIKey is the value the .env template ships with; treating it
// as unconfigured turns a confusing upstream 401 into a clear setup error.
const PlaceholderAPIKey = "your_key_here"

var (
	// ErrNotConfigured means the provider credential is absent or still the
	// placeholder value. Raised before any request is made.
	ErrNotConfigured = errors.New("model API key is not configured")
	// ErrEmptyResponse means the provider replied with success but no
	// usable message content.
	ErrEmptyResponse = errors.New("empty response from model provider")
)

// TransportError is a non-success HTTP status from the provider, carrying
// the status code and raw error body.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("model API error %d: %s", e.StatusCode, e.Body)
}

// ProviderError is a logical failure reported inside the provider's own
// success envelope.
type ProviderError struct {
	Code    int64
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("model provider error %d: %s", e.Code, e.Message)
}

// Options are the per-call generation knobs the dispatcher controls.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// Client is a single-shot completion client. Instruction is sent as the
// system message and content as the user message.
type Client interface {
	Name() string
	Complete(ctx context.Context, instruction, content string, opts Options) (string, error)
}
