package assist

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"guardian/internal/llmclient"
	"guardian/internal/prompt"
	"guardian/internal/util/jsonutil"
)

// Per-task generation settings. Risk analysis favors determinism, study
// resources favor variety.
const (
	safeChatTemperature    = 0.4
	studyHelperTemperature = 0.7
	maxCompletionTokens    = 1024
)

// Dispatcher is the single entry point for assistant requests. Each call is
// independent and stateless: validate the payload, build the prompt, make
// one model call, recover JSON from the raw text, validate it against the
// task schema, return the typed result. Nothing is retried; a failure at
// any step collapses to one *Error.
type Dispatcher struct {
	gw  llmclient.Client
	log *zap.Logger
}

func NewDispatcher(gw llmclient.Client, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{gw: gw, log: log}
}

// Handle runs one request. The returned value is a *SafetyReport or a
// *StudyResource depending on the task; on failure it is nil and the error
// is always a *Error.
func (d *Dispatcher) Handle(ctx context.Context, task Task, payload Payload) (any, error) {
	reqID := uuid.NewString()
	log := d.log.With(
		zap.String("request_id", reqID),
		zap.String("task", string(task)),
	)

	result, err := d.handle(ctx, task, payload)
	if err != nil {
		var ae *Error
		if !errors.As(err, &ae) {
			ae = WrapError(KindTransport, err, err.Error())
		}
		log.Error("assist request failed",
			zap.String("kind", string(ae.Kind)),
			zap.Error(ae.Err),
			zap.String("message", ae.Message),
		)
		return nil, ae
	}
	log.Info("assist request completed", zap.String("backend", d.gw.Name()))
	return result, nil
}

func (d *Dispatcher) handle(ctx context.Context, task Task, payload Payload) (any, error) {
	switch task {
	case TaskSafeChat:
		return d.handleSafeChat(ctx, payload)
	case TaskStudyHelper:
		return d.handleStudyHelper(ctx, payload)
	default:
		return nil, Errorf(KindUnknownTask, "unknown task %q", string(task))
	}
}

func (d *Dispatcher) handleSafeChat(ctx context.Context, payload Payload) (*SafetyReport, error) {
	message := strings.TrimSpace(payload["message"])
	if message == "" {
		return nil, Errorf(KindInvalidPayload, "message is required")
	}

	spec, err := prompt.BuildSafeChat(message)
	if err != nil {
		return nil, WrapError(KindInvalidPayload, err, "message is required")
	}

	raw, err := d.invoke(ctx, spec, safeChatTemperature)
	if err != nil {
		return nil, err
	}

	var report SafetyReport
	if err := jsonutil.Unmarshal(raw, &report); err != nil {
		return nil, WrapError(KindSchemaMismatch, err,
			"the model reply did not match the safety report schema")
	}
	if err := ValidateSafetyReport(&report, message); err != nil {
		return nil, err
	}
	return &report, nil
}

func (d *Dispatcher) handleStudyHelper(ctx context.Context, payload Payload) (*StudyResource, error) {
	subject := strings.TrimSpace(payload["subject"])
	if subject == "" {
		return nil, Errorf(KindInvalidPayload, "subject is required")
	}

	spec, err := prompt.BuildStudyHelper(subject, payload["question"], payload["difficulty"])
	if err != nil {
		return nil, WrapError(KindInvalidPayload, err, "subject is required")
	}

	raw, err := d.invoke(ctx, spec, studyHelperTemperature)
	if err != nil {
		return nil, err
	}

	var resource StudyResource
	if err := jsonutil.Unmarshal(raw, &resource); err != nil {
		return nil, WrapError(KindSchemaMismatch, err,
			"the model reply did not match the study resource schema")
	}
	if err := ValidateStudyResource(&resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// invoke makes the single model call and recovers a JSON payload from the
// raw reply, mapping gateway failures onto the dispatcher taxonomy.
func (d *Dispatcher) invoke(ctx context.Context, spec prompt.Spec, temperature float32) ([]byte, error) {
	text, err := d.gw.Complete(ctx, spec.Instruction, spec.Context, llmclient.Options{
		Temperature: temperature,
		MaxTokens:   maxCompletionTokens,
	})
	if err != nil {
		return nil, classifyGatewayError(err)
	}

	raw, err := jsonutil.ExtractJSON(text)
	if err != nil {
		return nil, WrapError(KindMalformedResponse, err,
			"the model did not return a readable result, please try again")
	}
	return raw, nil
}

func classifyGatewayError(err error) *Error {
	var (
		te *llmclient.TransportError
		pe *llmclient.ProviderError
	)
	switch {
	case errors.Is(err, llmclient.ErrNotConfigured):
		return WrapError(KindConfiguration, err,
			"the model API key is not configured, please add it to your .env file")
	case errors.As(err, &te):
		return WrapError(KindTransport, err, te.Error())
	case errors.As(err, &pe):
		return WrapError(KindProvider, err, pe.Error())
	case errors.Is(err, llmclient.ErrEmptyResponse):
		return WrapError(KindEmptyResponse, err, err.Error())
	default:
		return WrapError(KindTransport, err, err.Error())
	}
}
