// Command test_client sends the prompt described by a YAML request file and prints the
// provider's JSON response.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/shaharia-lab/promptai"
	"github.com/shaharia-lab/promptai/observability"
	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "request.yaml", "YAML request file")
	endpoint := flag.String("endpoint", "", "override the provider URL")
	timeout := flag.Duration("timeout", 60*time.Second, "HTTP client timeout")
	debounce := flag.Bool("debounce", false, "send through the debounced request after the quiescence window")
	verbose := flag.Bool("verbose", false, "log request lifecycle events")
	flag.Parse()

	zl := zap.NewNop()
	if *verbose {
		var err error
		if zl, err = zap.NewDevelopment(); err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
	}
	defer zl.Sync()

	opts, err := promptai.LoadRequestFile(*file)
	if err != nil {
		log.Fatalf("Failed to load request: %v", err)
	}
	if *endpoint != "" {
		opts.Endpoint = *endpoint
	}
	if *debounce && opts.Prompt == "" {
		log.Fatalf("An empty prompt never settles a debounced request")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := []promptai.Option{
		promptai.WithHTTPClient(&http.Client{Timeout: *timeout}),
		promptai.WithLogger(observability.NewZapLogger(zl)),
	}

	var state promptai.ResponseState
	if *debounce {
		state = runDebounced(ctx, opts, options)
	} else {
		req, err := promptai.NewPromptRequest(opts, options...)
		if err != nil {
			log.Fatalf("Failed to create request: %v", err)
		}
		state = req.CallAIService(ctx)
	}

	if state.HasError() {
		log.Fatalf("Request failed: %s", state.Error)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state.Data); err != nil {
		log.Fatalf("Failed to print response: %v", err)
	}
}

// runDebounced waits for the first settled state of a debounced request.
func runDebounced(ctx context.Context, opts promptai.RequestOptions, options []promptai.Option) promptai.ResponseState {
	settled := make(chan promptai.ResponseState, 1)
	options = append(options, promptai.WithStateListener(func(s promptai.ResponseState) {
		if !s.Loading {
			select {
			case settled <- s:
			default:
			}
		}
	}))

	req, err := promptai.NewDebouncedPromptRequest(ctx, opts, options...)
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	defer req.Close()

	select {
	case s := <-settled:
		return s
	case <-ctx.Done():
		log.Fatalf("Interrupted")
	}
	return promptai.ResponseState{}
}
