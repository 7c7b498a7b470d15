package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultFolderID        = "1-fZes6KYrBMkED3Ny0co_A0Qdr-D7jOr"
	DefaultMimeType        = "application/pdf"
	DefaultCredentialsFile = "credentials.json"
	DefaultTokenFile       = "token.json"
	DefaultDownloadDir     = "downloads"
	DefaultOutputFile      = "merged_output.xlsx"
	DefaultSheetName       = "Sheet1"
	DefaultPageSize        = 100
	DefaultAuthTimeout     = 5 * time.Minute
)

// Config is the explicit configuration of one pipeline run.
type Config struct {
	Drive  DriveConfig
	Auth   AuthConfig
	Output OutputConfig
	Detect DetectConfig

	// DownloadDir is where fetched files are written.
	DownloadDir string
	// SkipFailedDownloads skips a file whose download fails instead of
	// aborting the run.
	SkipFailedDownloads bool
}

// DriveConfig selects the remote files to process.
type DriveConfig struct {
	// FolderID is the Drive folder whose files are listed.
	FolderID string
	// MimeType filters the listing server-side.
	MimeType string
	// PageSize is the listing page size.
	PageSize int64
	// RequestsPerSecond caps the Drive request rate. Zero uses the default.
	RequestsPerSecond float64
}

// AuthConfig locates the OAuth client secrets and token cache.
type AuthConfig struct {
	// CredentialsFile is the OAuth client secrets JSON.
	CredentialsFile string
	// TokenFile caches the authorised token across runs.
	TokenFile string
	// CallbackPort is the loopback port for the authorisation redirect.
	// Zero picks a free port.
	CallbackPort int
	// Timeout bounds the wait for the authorisation callback.
	Timeout time.Duration
	// NoBrowser prints the authorisation URL without opening a browser.
	NoBrowser bool
}

// OutputConfig controls the merged spreadsheet.
type OutputConfig struct {
	// File is the spreadsheet path.
	File string
	// SheetName is the name of the single sheet.
	SheetName string
}

// DetectConfig tunes stream table detection. Tolerances are relative to
// the font size of the text involved.
type DetectConfig struct {
	// LineTolerance groups glyphs into a line when their baselines differ
	// by less than this fraction of the font size.
	LineTolerance float64
	// WordGap merges neighbouring glyphs into one segment when the gap
	// between them is below this fraction of the font size.
	WordGap float64
	// ColumnGap splits segments into separate cells when the gap between
	// them is at least this fraction of the font size.
	ColumnGap float64
	// MinColumns is the minimum number of cells for a line to be tabular.
	MinColumns int
	// MinRows is the minimum number of rows for a region to be a table.
	MinRows int
}

// DefaultDetectConfig returns the default stream detection tolerances.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{
		LineTolerance: 0.5,
		WordGap:       0.25,
		ColumnGap:     1.0,
		MinColumns:    2,
		MinRows:       1,
	}
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Drive: DriveConfig{
			FolderID: DefaultFolderID,
			MimeType: DefaultMimeType,
			PageSize: DefaultPageSize,
		},
		Auth: AuthConfig{
			CredentialsFile: DefaultCredentialsFile,
			TokenFile:       DefaultTokenFile,
			Timeout:         DefaultAuthTimeout,
		},
		Output: OutputConfig{
			File:      DefaultOutputFile,
			SheetName: DefaultSheetName,
		},
		Detect:      DefaultDetectConfig(),
		DownloadDir: DefaultDownloadDir,
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Drive.FolderID) == "":
		return fmt.Errorf("%w: drive.folder_id is empty", ErrInvalidConfig)
	case strings.TrimSpace(c.Drive.MimeType) == "":
		return fmt.Errorf("%w: drive.mime_type is empty", ErrInvalidConfig)
	case c.Drive.PageSize <= 0:
		return fmt.Errorf("%w: drive.page_size must be positive", ErrInvalidConfig)
	case c.Drive.RequestsPerSecond < 0:
		return fmt.Errorf("%w: drive.requests_per_second must not be negative", ErrInvalidConfig)
	case c.Auth.CallbackPort < 0 || c.Auth.CallbackPort > 65535:
		return fmt.Errorf("%w: auth.callback_port out of range", ErrInvalidConfig)
	case c.DownloadDir == "":
		return fmt.Errorf("%w: download_dir is empty", ErrInvalidConfig)
	}
	if err := c.Output.validate(); err != nil {
		return err
	}
	return c.Detect.validate()
}

func (o OutputConfig) validate() error {
	if o.File == "" {
		return fmt.Errorf("%w: output.file is empty", ErrInvalidConfig)
	}
	if !strings.EqualFold(filepath.Ext(o.File), ".xlsx") {
		return fmt.Errorf("%w: output.file must have an .xlsx extension", ErrInvalidConfig)
	}
	if o.SheetName == "" {
		return fmt.Errorf("%w: output.sheet_name is empty", ErrInvalidConfig)
	}
	return nil
}

func (d DetectConfig) validate() error {
	if d.LineTolerance <= 0 || d.WordGap <= 0 || d.ColumnGap <= 0 {
		return fmt.Errorf("%w: detect tolerances must be positive", ErrInvalidConfig)
	}
	if d.WordGap >= d.ColumnGap {
		return fmt.Errorf("%w: detect.word_gap must be smaller than detect.column_gap", ErrInvalidConfig)
	}
	if d.MinColumns < 1 || d.MinRows < 1 {
		return fmt.Errorf("%w: detect.min_columns and detect.min_rows must be at least 1", ErrInvalidConfig)
	}
	return nil
}
