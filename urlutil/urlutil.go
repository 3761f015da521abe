// Package urlutil provides URL helpers for the CLI layer.
package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize validates a user-supplied URL, defaulting the scheme to https
// when none is given so that bare hostnames like example.com work.
func Normalize(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fmt.Errorf("empty URL")
	}
	// A bare host:port like localhost:8080 parses as scheme "localhost",
	// so look for the full separator rather than url.Parse's verdict.
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}
	return parsed.String(), nil
}
