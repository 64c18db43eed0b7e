package promptai

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected RequestOptions
		wantErr  error
	}{
		{
			name: "full request",
			document: `
service: huggingface
endpoint: http://localhost:8080/generate
prompt: Once upon a time
config:
  api_key: hf_123
  model: gpt2
  options:
    wait_for_model: true
    parameters:
      max_new_tokens: 20
`,
			expected: RequestOptions{
				Service:  ServiceHuggingFace,
				Endpoint: "http://localhost:8080/generate",
				Prompt:   "Once upon a time",
				Config: ServiceConfig{
					APIKey: "hf_123",
					Model:  "gpt2",
					Options: map[string]interface{}{
						"wait_for_model": true,
						"parameters":     map[string]interface{}{"max_new_tokens": 20},
					},
				},
			},
		},
		{
			name: "custom endpoint in config",
			document: `
service: custom
prompt: hi
config:
  api_key: k
  endpoint: https://llm.internal/v1
`,
			expected: RequestOptions{
				Service: ServiceCustom,
				Prompt:  "hi",
				Config:  ServiceConfig{APIKey: "k", Endpoint: "https://llm.internal/v1"},
			},
		},
		{
			name:     "unknown service",
			document: "service: palm\nprompt: hi\n",
			wantErr:  ErrUnknownService,
		},
		{
			name:     "empty document",
			document: "",
			wantErr:  ErrUnknownService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := DecodeRequest(strings.NewReader(tt.document))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestDecodeRequest_RejectsUnknownFields(t *testing.T) {
	_, err := DecodeRequest(strings.NewReader("service: openai\napikey: oops\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownService)
}

func TestLoadRequestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service: deepai\nprompt: hello\nconfig:\n  api_key: abc\n"), 0o600))

	opts, err := LoadRequestFile(path)
	require.NoError(t, err)
	assert.Equal(t, RequestOptions{
		Service: ServiceDeepAI,
		Prompt:  "hello",
		Config:  ServiceConfig{APIKey: "abc"},
	}, opts)

	_, err = LoadRequestFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
