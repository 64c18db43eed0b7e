package promptai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrSchemaValidation is wrapped by errors for responses that do not match the configured schema.
var ErrSchemaValidation = errors.New("response does not match schema")

// RequestFailedError is returned when a provider answers with a non-2xx status.
type RequestFailedError struct {
	StatusCode int
	StatusText string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("API call failed: %s", e.StatusText)
}

// newRequestFailedError extracts the reason phrase from the response status line,
// falling back to the canonical text for the status code.
func newRequestFailedError(resp *http.Response) *RequestFailedError {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return &RequestFailedError{StatusCode: resp.StatusCode, StatusText: text}
}

// IsAborted reports whether err comes from a cancelled call. Deadlines are not aborts.
func IsAborted(err error) bool {
	return errors.Is(err, context.Canceled)
}
