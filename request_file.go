package promptai

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRequestFile reads RequestOptions from a YAML document such as:
//
//	service: openai
//	prompt: Write a haiku about Go
//	config:
//	  api_key: sk-xxx
//	  model: gpt-3.5-turbo-instruct
//	  options:
//	    max_tokens: 64
func LoadRequestFile(path string) (RequestOptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return RequestOptions{}, fmt.Errorf("failed to open request file: %w", err)
	}
	defer f.Close()

	return DecodeRequest(f)
}

// DecodeRequest parses a YAML request document and validates its service name.
func DecodeRequest(r io.Reader) (RequestOptions, error) {
	var opts RequestOptions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return RequestOptions{}, fmt.Errorf("failed to parse request: %w", err)
	}

	if _, err := ParseService(string(opts.Service)); err != nil {
		return RequestOptions{}, err
	}

	return opts, nil
}
