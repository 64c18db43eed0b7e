package promptai

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResponseSchema validates decoded provider responses against a JSON schema.
type ResponseSchema struct {
	schema *gojsonschema.Schema
}

// NewResponseSchema compiles a JSON schema document.
func NewResponseSchema(document string) (*ResponseSchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(document))
	if err != nil {
		return nil, fmt.Errorf("failed to compile response schema: %w", err)
	}
	return &ResponseSchema{schema: schema}, nil
}

// Validate checks data and returns an error wrapping ErrSchemaValidation listing each violation.
func (s *ResponseSchema) Validate(data interface{}) error {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaValidation, strings.Join(violations, "; "))
}
