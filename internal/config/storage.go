package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	// EnvStorageProvider overrides the storage provider.
	EnvStorageProvider = "STORAGE_PROVIDER"

	// EnvStorageBucket overrides the bucket that holds image files.
	EnvStorageBucket = "STORAGE_BUCKET"

	// EnvStorageRegion overrides the S3 signing region.
	EnvStorageRegion = "STORAGE_REGION"

	// EnvStorageEndpoint overrides the S3-compatible endpoint.
	EnvStorageEndpoint = "STORAGE_ENDPOINT"

	// EnvStorageKeyID overrides the S3 access key ID.
	EnvStorageKeyID = "STORAGE_KEY_ID"

	// EnvStorageBasePath overrides the filesystem storage base path.
	EnvStorageBasePath = "STORAGE_BASE_PATH"

	// EnvStoragePublicURL overrides the base URL used to build public file URLs.
	EnvStoragePublicURL = "STORAGE_PUBLIC_URL"

	// EnvStorageCacheControl overrides the Cache-Control directive stored with uploads.
	EnvStorageCacheControl = "STORAGE_CACHE_CONTROL"

	// EnvStorageMaxUploadSize overrides the maximum accepted upload size.
	EnvStorageMaxUploadSize = "STORAGE_MAX_UPLOAD_SIZE"
)

// Storage providers.
const (
	StorageProviderS3         = "s3"
	StorageProviderFilesystem = "filesystem"
)

// StorageConfig contains blob storage configuration.
// Endpoint and PublicURL default to the hosted backend's storage routes
// derived from BackendConfig.URL.
type StorageConfig struct {
	Provider         string `toml:"provider"`
	Bucket           string `toml:"bucket"`
	Region           string `toml:"region"`
	Endpoint         string `toml:"endpoint"`
	KeyID            string `toml:"key_id"`
	BasePath         string `toml:"base_path"`
	PublicURL        string `toml:"public_url"`
	CacheControl     string `toml:"cache_control"`
	MaxUploadSize    string `toml:"max_upload_size"`
	maxUploadSizeVal int64
}

// MaxUploadSizeBytes returns the validated upload limit in bytes.
func (c *StorageConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
// The backend configuration must already be finalized.
func (c *StorageConfig) Finalize(backend *BackendConfig) error {
	c.loadEnv()
	c.loadDefaults(backend)
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *StorageConfig) Merge(overlay *StorageConfig) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Bucket != "" {
		c.Bucket = overlay.Bucket
	}
	if overlay.Region != "" {
		c.Region = overlay.Region
	}
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.KeyID != "" {
		c.KeyID = overlay.KeyID
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.PublicURL != "" {
		c.PublicURL = overlay.PublicURL
	}
	if overlay.CacheControl != "" {
		c.CacheControl = overlay.CacheControl
	}
	if size, err := units.FromHumanSize(overlay.MaxUploadSize); err == nil {
		c.MaxUploadSize = overlay.MaxUploadSize
		c.maxUploadSizeVal = size
	}
}

func (c *StorageConfig) loadDefaults(backend *BackendConfig) {
	if c.Provider == "" {
		c.Provider = StorageProviderS3
	}
	if c.Bucket == "" {
		c.Bucket = "gallery-images"
	}
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.BasePath == "" {
		c.BasePath = ".data/blobs"
	}
	if c.CacheControl == "" {
		c.CacheControl = "max-age=3600"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}

	if backend == nil || backend.URL == "" {
		return
	}

	switch c.Provider {
	case StorageProviderS3:
		if c.Endpoint == "" {
			c.Endpoint = backend.URL + "/storage/v1/s3"
		}
		if c.PublicURL == "" {
			c.PublicURL = fmt.Sprintf("%s/storage/v1/object/public/%s", backend.URL, c.Bucket)
		}
	case StorageProviderFilesystem:
		if c.PublicURL == "" {
			c.PublicURL = backend.URL + "/files"
		}
	}
}

func (c *StorageConfig) loadEnv() {
	if v := os.Getenv(EnvStorageProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvStorageBucket); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv(EnvStorageRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvStorageEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvStorageKeyID); v != "" {
		c.KeyID = v
	}
	if v := os.Getenv(EnvStorageBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvStoragePublicURL); v != "" {
		c.PublicURL = v
	}
	if v := os.Getenv(EnvStorageCacheControl); v != "" {
		c.CacheControl = v
	}
	if v := os.Getenv(EnvStorageMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *StorageConfig) validate() error {
	switch c.Provider {
	case StorageProviderS3:
		if c.Endpoint == "" {
			return fmt.Errorf("endpoint required for provider %q", c.Provider)
		}
		if c.KeyID == "" {
			return fmt.Errorf("key_id required for provider %q", c.Provider)
		}
	case StorageProviderFilesystem:
		if c.BasePath == "" {
			return fmt.Errorf("base_path required")
		}
	default:
		return fmt.Errorf("invalid provider: %s (must be %s or %s)", c.Provider, StorageProviderS3, StorageProviderFilesystem)
	}

	if c.PublicURL == "" {
		return fmt.Errorf("public_url required")
	}
	c.PublicURL = strings.TrimSuffix(c.PublicURL, "/")

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
