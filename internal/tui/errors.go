package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
)

const msgServerUnavailable = "No network or the server is unavailable"

// transportHints are substrings resty leaves in dial and timeout errors when
// the typed error has been flattened into a message.
var transportHints = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
}

// userMessage turns err into the line shown in a form status or the error
// overlay. Server messages pass through as is.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if isUnreachable(err) {
		return msgServerUnavailable
	}
	return err.Error()
}

func isUnreachable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	s := strings.ToLower(err.Error())
	for _, hint := range transportHints {
		if strings.Contains(s, hint) {
			return true
		}
	}
	return false
}
