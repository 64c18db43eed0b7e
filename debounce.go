package promptai

import (
	"context"
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once no trigger has arrived for the
// configured window. Earlier pending functions never run.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer with the given quiescence window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn after the window and drops whatever was pending.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A timer that already fired when Stop was called still lands here.
		if seq != d.seq || d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Stop drops the pending function and ignores later triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// DebouncedPromptRequest calls the provider automatically once the prompt has settled.
//
// Every SetPrompt restarts the quiescence window. When the window elapses with a non-empty
// prompt, a call is made with that prompt; the call supersedes and aborts any earlier one.
type DebouncedPromptRequest struct {
	*PromptRequest

	debouncer *Debouncer
	ctx       context.Context
	stop      context.CancelFunc
}

// NewDebouncedPromptRequest creates a debounced request and schedules opts.Prompt as the
// first change. Cancelling ctx has the same effect as Close.
//
// Example usage:
//
//	req, err := promptai.NewDebouncedPromptRequest(ctx, promptai.RequestOptions{
//	    Service: promptai.ServiceHuggingFace,
//	    Config:  promptai.ServiceConfig{APIKey: "hf_xxx", Model: "gpt2"},
//	}, promptai.WithStateListener(render))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer req.Close()
//
//	for text := range keystrokes {
//	    req.SetPrompt(text)
//	}
func NewDebouncedPromptRequest(ctx context.Context, opts RequestOptions, options ...Option) (*DebouncedPromptRequest, error) {
	r, err := NewPromptRequest(opts, options...)
	if err != nil {
		return nil, err
	}

	ctx, stop := context.WithCancel(ctx)
	d := &DebouncedPromptRequest{
		PromptRequest: r,
		debouncer:     NewDebouncer(r.settings.window),
		ctx:           ctx,
		stop:          stop,
	}
	d.schedule(opts.Prompt)

	go func() {
		<-ctx.Done()
		d.debouncer.Stop()
	}()

	return d, nil
}

// SetPrompt records prompt and restarts the quiescence window.
func (d *DebouncedPromptRequest) SetPrompt(prompt string) {
	d.PromptRequest.SetPrompt(prompt)
	d.schedule(prompt)
}

// Close drops any pending call and aborts the one in flight. The state is left as it was.
func (d *DebouncedPromptRequest) Close() {
	d.debouncer.Stop()
	d.stop()
	d.Abort()
}

func (d *DebouncedPromptRequest) schedule(prompt string) {
	d.debouncer.Trigger(func() {
		if prompt == "" || d.ctx.Err() != nil {
			return
		}
		d.call(d.ctx, prompt)
	})
}
