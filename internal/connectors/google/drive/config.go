package drive

import (
	"github.com/custodia-labs/drivetables/internal/connectors/google"
	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// DefaultChunkSize is the number of bytes copied per download chunk.
const DefaultChunkSize = 1 << 20

// Config holds Google Drive connector configuration.
type Config struct {
	// PageSize is the page size for list requests.
	PageSize int64
	// DownloadDir is the local directory files are written to.
	DownloadDir string
	// ChunkSize is the download copy chunk size in bytes.
	ChunkSize int
	// RateLimit caps the request rate shared by listing and downloads.
	RateLimit google.RateLimitConfig
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		PageSize:    domain.DefaultPageSize,
		DownloadDir: domain.DefaultDownloadDir,
		ChunkSize:   DefaultChunkSize,
		RateLimit:   google.DefaultDriveRateLimit,
	}
}

// ConfigFrom derives the connector configuration from a run configuration.
func ConfigFrom(cfg domain.Config) *Config {
	c := DefaultConfig()
	if cfg.Drive.PageSize > 0 {
		c.PageSize = cfg.Drive.PageSize
	}
	if cfg.DownloadDir != "" {
		c.DownloadDir = cfg.DownloadDir
	}
	if cfg.Drive.RequestsPerSecond > 0 {
		c.RateLimit.RequestsPerSecond = cfg.Drive.RequestsPerSecond
	}
	return c
}
