package promptai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shaharia-lab/promptai/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PromptRequest sends a prompt to one provider and owns the resulting ResponseState.
//
// Starting a call cancels the call still in flight, and only the most recent call may
// change the state.
type PromptRequest struct {
	service  Service
	config   ServiceConfig
	endpoint string
	settings settings
	state    *stateStore

	mu     sync.Mutex
	prompt string
	cancel context.CancelFunc
	active uint64
}

// NewPromptRequest creates a PromptRequest for opts. It fails when opts.Service is not a
// supported provider.
//
// Example usage:
//
//	req, err := promptai.NewPromptRequest(promptai.RequestOptions{
//	    Service: promptai.ServiceCohere,
//	    Config:  promptai.ServiceConfig{APIKey: "your-api-key", Model: "command"},
//	    Prompt:  "Summarise the plot of Hamlet",
//	}, promptai.WithLogger(observability.NewZapLogger(nil)))
func NewPromptRequest(opts RequestOptions, options ...Option) (*PromptRequest, error) {
	if !opts.Service.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, opts.Service)
	}

	s := defaultSettings()
	for _, opt := range options {
		opt(&s)
	}

	return &PromptRequest{
		service:  opts.Service,
		config:   opts.Config,
		endpoint: opts.Endpoint,
		settings: s,
		state:    &stateStore{listeners: s.listeners},
		prompt:   opts.Prompt,
	}, nil
}

// Response returns the current state.
func (r *PromptRequest) Response() ResponseState {
	return r.state.get()
}

// Prompt returns the prompt the next CallAIService will send.
func (r *PromptRequest) Prompt() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prompt
}

// SetPrompt replaces the prompt used by later calls.
func (r *PromptRequest) SetPrompt(prompt string) {
	r.mu.Lock()
	r.prompt = prompt
	r.mu.Unlock()
}

// URL returns the endpoint calls are sent to.
func (r *PromptRequest) URL() string {
	return ResolveURL(r.service, r.config, r.endpoint)
}

// Payload returns the body the next call would send.
func (r *PromptRequest) Payload() map[string]interface{} {
	return BuildPayload(r.service, r.config, r.Prompt())
}

// CallAIService sends the current prompt and blocks until the call settles. The loading
// state is published before any network I/O. Failures are recorded in the state instead of
// being returned; a call aborted through ctx, Abort or a newer call leaves the state as it
// was, and a ctx that is already cancelled does not start a call at all. The returned value is
// the state once this call has finished.
func (r *PromptRequest) CallAIService(ctx context.Context) ResponseState {
	return r.call(ctx, r.Prompt())
}

// Abort cancels the call in flight, if any.
func (r *PromptRequest) Abort() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (r *PromptRequest) call(ctx context.Context, prompt string) ResponseState {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen, ok := r.state.begin(ctx)
	if !ok {
		return r.state.get()
	}
	r.supersede(gen, cancel)
	defer r.release(gen)

	url := r.URL()
	log := r.settings.logger.WithContext(ctx).WithFields(observability.Fields{
		"request_id": uuid.NewString(),
		"service":    r.service.String(),
		"url":        url,
	})

	spanCtx, span := observability.StartSpan(callCtx, "PromptRequest.CallAIService")
	defer span.End()
	span.SetAttributes(
		attribute.String("service", r.service.String()),
		attribute.Int("prompt_length", len(prompt)),
	)

	log.Debug("calling AI service")
	startTime := time.Now()

	data, err := r.send(spanCtx, url, BuildPayload(r.service, r.config, prompt))
	if err == nil && r.settings.schema != nil {
		err = r.settings.schema.Validate(data)
	}

	switch {
	case err != nil && (IsAborted(err) || errors.Is(callCtx.Err(), context.Canceled)):
		log.Debug("AI service call aborted")
		span.SetAttributes(attribute.String("outcome", OutcomeAborted))
		r.settings.metrics.observe(r.service, OutcomeAborted, time.Since(startTime))
	case err != nil:
		log.WithErr(err).Error("AI service call failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("outcome", OutcomeError))
		r.settings.metrics.observe(r.service, OutcomeError, time.Since(startTime))
		r.state.settle(gen, errorState(err))
	default:
		log.Debugf("AI service call succeeded in %s", time.Since(startTime))
		span.SetAttributes(attribute.String("outcome", OutcomeSuccess))
		r.settings.metrics.observe(r.service, OutcomeSuccess, time.Since(startTime))
		r.state.settle(gen, successState(data))
	}

	return r.state.get()
}

// supersede makes cancel the active handle for gen and cancels the one it replaces.
// A call that is already older than the active one cancels itself.
func (r *PromptRequest) supersede(gen uint64, cancel context.CancelFunc) {
	r.mu.Lock()
	stale := cancel
	if gen > r.active {
		stale = r.cancel
		r.cancel = cancel
		r.active = gen
	}
	r.mu.Unlock()

	if stale != nil {
		stale()
	}
}

func (r *PromptRequest) release(gen uint64) {
	r.mu.Lock()
	if r.active == gen {
		r.cancel = nil
	}
	r.mu.Unlock()
}

// send performs the POST and decodes the JSON body, which must hold exactly one JSON value.
// Transport and decode errors are returned unwrapped so their message reaches the state
// verbatim.
func (r *PromptRequest) send(ctx context.Context, url string, payload map[string]interface{}) (interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.config.APIKey)

	resp, err := r.settings.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newRequestFailedError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
