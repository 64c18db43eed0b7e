package promptai

import (
	"net/http"
	"time"

	"github.com/shaharia-lab/promptai/observability"
)

// DefaultQuiescenceWindow is how long the prompt must stay unchanged before a debounced
// request fires.
const DefaultQuiescenceWindow = 500 * time.Millisecond

// Option configures a PromptRequest.
type Option func(*settings)

type settings struct {
	httpClient *http.Client
	logger     observability.Logger
	window     time.Duration
	listeners  []StateListener
	metrics    *Metrics
	schema     *ResponseSchema
}

func defaultSettings() settings {
	return settings{
		httpClient: http.DefaultClient,
		logger:     observability.NewNullLogger(),
		window:     DefaultQuiescenceWindow,
	}
}

// WithHTTPClient sets the client used for provider calls. The client's own timeout is the
// only timeout applied to a call.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithLogger sets the logger for request lifecycle events.
func WithLogger(logger observability.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithQuiescenceWindow sets the debounce delay of a DebouncedPromptRequest.
// Non-positive values are ignored.
func WithQuiescenceWindow(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.window = d
		}
	}
}

// WithStateListener registers fn to receive every state transition.
func WithStateListener(fn StateListener) Option {
	return func(s *settings) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}

// WithMetrics records call outcomes and latencies on m.
func WithMetrics(m *Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithResponseSchema rejects successful responses that do not conform to schema.
func WithResponseSchema(schema *ResponseSchema) Option {
	return func(s *settings) {
		s.schema = schema
	}
}
