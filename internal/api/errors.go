package api

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NetworkError is returned when a request never got a response
// (connection refused, DNS failure, reset, timeout).
type NetworkError struct {
	Method        string
	URL           string
	CorrelationID string
	Err           error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: no response: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is returned when the API answered with a non-2xx status.
type ServerError struct {
	Method        string
	URL           string
	CorrelationID string
	StatusCode    int
	Body          []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s %s: API error: status %d: %s", e.Method, e.URL, e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// Message returns the human-readable message carried by the response body,
// or "" when the body has none. Only a JSON object with a "message" field or
// a JSON string counts; markup inside it is stripped. Non-JSON bodies such as
// proxy error pages yield "".
func (e *ServerError) Message() string {
	return extractMessage(e.Body)
}

var stripPolicy = bluemonday.StrictPolicy()

func extractMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ""
	}
	switch v := payload.(type) {
	case map[string]any:
		if msg, ok := v["message"].(string); ok {
			return cleanMessage(msg)
		}
	case string:
		return cleanMessage(v)
	}
	return ""
}

func cleanMessage(s string) string {
	// StrictPolicy escapes entities; the terminal wants plain text back.
	s = html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
