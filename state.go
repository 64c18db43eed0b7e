package promptai

import (
	"context"
	"errors"
	"sync"
)

// ResponseState is the observable outcome of a PromptRequest.
//
// Exactly one of Data and Error is set once a call settles; both are empty while
// Loading is true and before the first call.
type ResponseState struct {
	// Data is the decoded JSON body of the last successful call
	Data interface{} `json:"data"`
	// Error is the message of the last failed call
	Error   string `json:"error,omitempty"`
	Loading bool   `json:"loading"`
}

// HasError reports whether the state carries a failure.
func (s ResponseState) HasError() bool {
	return s.Error != ""
}

func loadingState() ResponseState {
	return ResponseState{Loading: true}
}

func successState(data interface{}) ResponseState {
	return ResponseState{Data: data}
}

func errorState(err error) ResponseState {
	return ResponseState{Error: err.Error()}
}

// StateListener is notified after every state transition, one transition at a time and in
// order. A listener may read the state back but must not start a new call on the same
// request synchronously.
type StateListener func(ResponseState)

// stateStore owns the single ResponseState of a request. Writes are fenced by call
// generation so that only the most recent call can change it.
//
// Lock order is notifyMu then mu. mu is never held while listeners run.
type stateStore struct {
	notifyMu   sync.Mutex
	mu         sync.Mutex
	state      ResponseState
	generation uint64
	listeners  []StateListener
}

func (s *stateStore) get() ResponseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// begin opens a new generation and publishes the loading state. It does nothing and
// reports false when ctx has already been cancelled.
func (s *stateStore) begin(ctx context.Context) (uint64, bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if errors.Is(ctx.Err(), context.Canceled) {
		s.mu.Unlock()
		return 0, false
	}
	s.generation++
	gen := s.generation
	s.state = loadingState()
	s.mu.Unlock()

	s.notify(loadingState())
	return gen, true
}

// settle stores next if gen is still the current generation.
func (s *stateStore) settle(gen uint64, next ResponseState) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	s.state = next
	s.mu.Unlock()

	s.notify(next)
	return true
}

// notify must be called with notifyMu held.
func (s *stateStore) notify(state ResponseState) {
	for _, l := range s.listeners {
		l(state)
	}
}
