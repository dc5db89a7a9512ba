package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const (
	// EnvBackendURL overrides the backend endpoint URL.
	EnvBackendURL = "BACKEND_URL"

	// EnvBackendKey overrides the backend access key.
	EnvBackendKey = "BACKEND_KEY"
)

// BackendConfig identifies the hosted backend project.
// Both settings are required; the service refuses to start without them.
type BackendConfig struct {
	URL string `toml:"url"`
	Key string `toml:"key"`
}

// Finalize loads environment overrides and validates the backend configuration.
func (c *BackendConfig) Finalize() error {
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *BackendConfig) Merge(overlay *BackendConfig) {
	if overlay.URL != "" {
		c.URL = overlay.URL
	}
	if overlay.Key != "" {
		c.Key = overlay.Key
	}
}

func (c *BackendConfig) loadEnv() {
	if v := os.Getenv(EnvBackendURL); v != "" {
		c.URL = v
	}
	if v := os.Getenv(EnvBackendKey); v != "" {
		c.Key = v
	}
}

func (c *BackendConfig) validate() error {
	if c.URL == "" {
		return fmt.Errorf("url required")
	}
	if c.Key == "" {
		return fmt.Errorf("key required")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid url %q: scheme and host required", c.URL)
	}

	c.URL = strings.TrimSuffix(c.URL, "/")
	return nil
}
