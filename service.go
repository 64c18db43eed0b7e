// Package promptai sends a single text prompt to one of several AI text-generation providers
// and tracks the outcome as an observable request state.
//
// Example usage:
//
//	req, err := promptai.NewPromptRequest(promptai.RequestOptions{
//	    Service: promptai.ServiceOpenAI,
//	    Config:  promptai.ServiceConfig{APIKey: "your-api-key"},
//	    Prompt:  "Write a haiku about Go",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state := req.CallAIService(context.Background())
//	if state.HasError() {
//	    log.Fatal(state.Error)
//	}
//	fmt.Printf("Response: %v\n", state.Data)
package promptai

import (
	"errors"
	"fmt"
)

// Service identifies a text-generation provider.
type Service string

// Supported providers.
const (
	ServiceOpenAI       Service = "openai"
	ServiceHuggingFace  Service = "huggingface"
	ServiceCohere       Service = "cohere"
	ServiceDeepAI       Service = "deepai"
	ServiceGoogleGemini Service = "google-gemini"
	ServiceCustom       Service = "custom"
)

// ErrUnknownService is returned when a service name is not one of the supported providers.
var ErrUnknownService = errors.New("unknown service")

// Services lists every supported provider.
var Services = []Service{
	ServiceOpenAI,
	ServiceHuggingFace,
	ServiceCohere,
	ServiceDeepAI,
	ServiceGoogleGemini,
	ServiceCustom,
}

// ParseService converts a provider name into a Service.
func ParseService(name string) (Service, error) {
	s := Service(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownService, name)
	}
	return s, nil
}

// Valid reports whether s is a supported provider.
func (s Service) Valid() bool {
	_, ok := serviceEndpoints[s]
	return ok
}

func (s Service) String() string {
	return string(s)
}

// ServiceConfig holds the provider credentials and tuning supplied by the caller.
type ServiceConfig struct {
	// APIKey is sent as a bearer token
	APIKey string `json:"api_key" yaml:"api_key"`
	// Model selects the provider model. Some providers fall back to a default.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	// Options are merged into the request payload last and may override any default field
	Options map[string]interface{} `json:"options,omitempty" yaml:"options,omitempty"`
	// Endpoint is the target URL for the custom service
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// RequestOptions describes what a PromptRequest sends and where.
type RequestOptions struct {
	Service Service       `json:"service" yaml:"service"`
	Config  ServiceConfig `json:"config" yaml:"config"`
	// Endpoint overrides the service URL when non-empty
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Prompt   string `json:"prompt" yaml:"prompt"`
}
