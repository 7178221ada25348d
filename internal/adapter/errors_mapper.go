package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// parseBody decodes a response body: JSON when possible, raw text otherwise,
// nil for an empty or null body.
func parseBody(raw []byte) any {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil
	}

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	return v
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := parseBody(resp.Body())

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(body, resp.Status()),
		Body:       body,
	}
}

func errorMessage(body any, statusLine string) string {
	if m, ok := body.(map[string]any); ok {
		if msg, ok := m["message"].(string); ok && msg != "" {
			return msg
		}
	}

	if s := strings.TrimSpace(statusLine); s != "" {
		return s
	}

	return defaultAPIErrorMessage
}
