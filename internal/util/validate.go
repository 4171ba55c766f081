package util

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidatePanelURL checks that raw is an absolute http(s) URL with a host
// and no query string or fragment. A trailing slash is permitted.
func ValidatePanelURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("panel URL must not be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("panel URL %q is not a valid URL: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("panel URL %q must use http or https, got %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("panel URL %q has no host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("panel URL %q must not contain a query or fragment", raw)
	}

	return nil
}

// MaskSecret hides all but the last four characters of a secret.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}
