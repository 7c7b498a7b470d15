package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// Default file names, relative to the working directory.
const (
	DefaultConfigFile = "drivetables.toml"
	DefaultEnvFile    = ".env"
)

// Options locates the configuration sources.
type Options struct {
	// Path is the TOML file. Empty uses DefaultConfigFile when it exists;
	// an explicit path must exist.
	Path string
	// EnvFile is loaded into the environment when it exists. Empty uses
	// DefaultEnvFile.
	EnvFile string
}

// fileConfig mirrors the TOML layout. Pointer fields distinguish unset
// keys from zero values.
type fileConfig struct {
	DownloadDir         *string `toml:"download_dir"`
	SkipFailedDownloads *bool   `toml:"skip_failed_downloads"`

	Drive struct {
		FolderID          *string  `toml:"folder_id"`
		MimeType          *string  `toml:"mime_type"`
		PageSize          *int64   `toml:"page_size"`
		RequestsPerSecond *float64 `toml:"requests_per_second"`
	} `toml:"drive"`

	Auth struct {
		CredentialsFile *string `toml:"credentials_file"`
		TokenFile       *string `toml:"token_file"`
		CallbackPort    *int    `toml:"callback_port"`
		TimeoutSeconds  *int    `toml:"timeout_seconds"`
		NoBrowser       *bool   `toml:"no_browser"`
	} `toml:"auth"`

	Output struct {
		File      *string `toml:"file"`
		SheetName *string `toml:"sheet_name"`
	} `toml:"output"`

	Detect struct {
		LineTolerance *float64 `toml:"line_tolerance"`
		WordGap       *float64 `toml:"word_gap"`
		ColumnGap     *float64 `toml:"column_gap"`
		MinColumns    *int     `toml:"min_columns"`
		MinRows       *int     `toml:"min_rows"`
	} `toml:"detect"`
}

// Load builds and validates the run configuration.
func Load(opts Options) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := loadFile(&cfg, opts.Path); err != nil {
		return cfg, err
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(cfg *domain.Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
	}
	fc.apply(cfg)
	return nil
}

// loadEnvFile adds the file's variables to the environment. Variables that
// are already set keep their value.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
	}
	return nil
}

func (fc *fileConfig) apply(cfg *domain.Config) {
	set(&cfg.DownloadDir, fc.DownloadDir)
	set(&cfg.SkipFailedDownloads, fc.SkipFailedDownloads)

	set(&cfg.Drive.FolderID, fc.Drive.FolderID)
	set(&cfg.Drive.MimeType, fc.Drive.MimeType)
	set(&cfg.Drive.PageSize, fc.Drive.PageSize)
	set(&cfg.Drive.RequestsPerSecond, fc.Drive.RequestsPerSecond)

	set(&cfg.Auth.CredentialsFile, fc.Auth.CredentialsFile)
	set(&cfg.Auth.TokenFile, fc.Auth.TokenFile)
	set(&cfg.Auth.CallbackPort, fc.Auth.CallbackPort)
	set(&cfg.Auth.NoBrowser, fc.Auth.NoBrowser)
	if fc.Auth.TimeoutSeconds != nil {
		cfg.Auth.Timeout = time.Duration(*fc.Auth.TimeoutSeconds) * time.Second
	}

	set(&cfg.Output.File, fc.Output.File)
	set(&cfg.Output.SheetName, fc.Output.SheetName)

	set(&cfg.Detect.LineTolerance, fc.Detect.LineTolerance)
	set(&cfg.Detect.WordGap, fc.Detect.WordGap)
	set(&cfg.Detect.ColumnGap, fc.Detect.ColumnGap)
	set(&cfg.Detect.MinColumns, fc.Detect.MinColumns)
	set(&cfg.Detect.MinRows, fc.Detect.MinRows)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
