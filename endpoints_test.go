package promptai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	richConfig := ServiceConfig{
		APIKey:   "key",
		Model:    "gpt2",
		Options:  map[string]interface{}{"temperature": 0.2},
		Endpoint: "https://ignored.example.com",
	}

	tests := []struct {
		name     string
		service  Service
		config   ServiceConfig
		endpoint string
		expected string
	}{
		{name: "openai", service: ServiceOpenAI, config: richConfig, expected: "https://api.openai.com/v1/completions"},
		{name: "huggingface interpolates model", service: ServiceHuggingFace, config: richConfig, expected: "https://api-inference.huggingface.co/models/gpt2"},
		{name: "huggingface without model", service: ServiceHuggingFace, config: ServiceConfig{}, expected: "https://api-inference.huggingface.co/models/"},
		{name: "cohere", service: ServiceCohere, config: richConfig, expected: "https://api.cohere.ai/generate"},
		{name: "deepai", service: ServiceDeepAI, config: richConfig, expected: "https://api.deepai.org/api/text-generator"},
		{name: "google gemini", service: ServiceGoogleGemini, config: richConfig, expected: "https://bard.google.com/api/gemini/query"},
		{name: "custom uses config endpoint", service: ServiceCustom, config: ServiceConfig{Endpoint: "https://llm.internal/generate"}, expected: "https://llm.internal/generate"},
		{name: "custom without endpoint", service: ServiceCustom, config: ServiceConfig{APIKey: "key"}, expected: ""},
		{name: "override wins over table", service: ServiceOpenAI, config: richConfig, endpoint: "http://localhost:9000", expected: "http://localhost:9000"},
		{name: "override wins for custom", service: ServiceCustom, config: richConfig, endpoint: "http://localhost:9000", expected: "http://localhost:9000"},
		{name: "unknown service", service: Service("mistral"), config: richConfig, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveURL(tt.service, tt.config, tt.endpoint))
		})
	}
}

func TestServiceEndpointsCoverEveryService(t *testing.T) {
	assert.Len(t, serviceEndpoints, len(Services))
	for _, s := range Services {
		assert.True(t, s.Valid(), "service %s has no endpoint", s)
	}
}

func TestParseService(t *testing.T) {
	for _, s := range Services {
		got, err := ParseService(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseService("OpenAI")
	assert.ErrorIs(t, err, ErrUnknownService)

	_, err = ParseService("")
	assert.ErrorIs(t, err, ErrUnknownService)
}
