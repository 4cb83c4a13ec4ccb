package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.FirebaseProjectID) == "" {
		return fmt.Errorf("auth.firebase_project_id is required")
	}
	c.Auth.AdminUIDs = ParseList(c.Auth.AdminUIDsRaw)

	if err := validateHTTPURL(c.Catalog.URL); err != nil {
		return fmt.Errorf("catalog.url: %w", err)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("catalog.timeout must be > 0 (got %v)", c.Catalog.Timeout)
	}

	if c.Audit.BufferSize <= 0 {
		return fmt.Errorf("audit.buffer_size must be > 0 (got %d)", c.Audit.BufferSize)
	}
	if c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}
	if c.RateLimit.TrustedProxies < 0 {
		return fmt.Errorf("rate_limit.trusted_proxies must be >= 0 (got %d)", c.RateLimit.TrustedProxies)
	}

	return nil
}

func validateHTTPURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

// ParseList splits a comma-separated string, dropping blanks.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
