package config

import "os"

const (
	// EnvAPITitle overrides the title of the generated API document.
	EnvAPITitle = "API_TITLE"

	// EnvAPIDescription overrides the description of the generated API document.
	EnvAPIDescription = "API_DESCRIPTION"

	// EnvAPIVersion overrides the version reported by the generated API document.
	EnvAPIVersion = "API_VERSION"
)

// APIConfig holds the metadata published in the OpenAPI document.
type APIConfig struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Version     string `toml:"version"`
}

// Finalize applies defaults and loads environment overrides.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
}

func (c *APIConfig) loadDefaults() {
	if c.Title == "" {
		c.Title = "Gallery API"
	}
	if c.Description == "" {
		c.Description = "Image records and files for the gallery web application."
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPITitle); v != "" {
		c.Title = v
	}
	if v := os.Getenv(EnvAPIDescription); v != "" {
		c.Description = v
	}
	if v := os.Getenv(EnvAPIVersion); v != "" {
		c.Version = v
	}
}
