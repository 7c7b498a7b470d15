package file

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DRIVETABLES_"

type envVar struct {
	name  string
	apply func(cfg *domain.Config, value string) error
}

var envVars = []envVar{
	{"FOLDER_ID", func(c *domain.Config, v string) error { c.Drive.FolderID = v; return nil }},
	{"MIME_TYPE", func(c *domain.Config, v string) error { c.Drive.MimeType = v; return nil }},
	{"PAGE_SIZE", func(c *domain.Config, v string) error { return parseInt64(&c.Drive.PageSize, v) }},
	{"REQUESTS_PER_SECOND", func(c *domain.Config, v string) error { return parseFloat(&c.Drive.RequestsPerSecond, v) }},
	{"CREDENTIALS_FILE", func(c *domain.Config, v string) error { c.Auth.CredentialsFile = v; return nil }},
	{"TOKEN_FILE", func(c *domain.Config, v string) error { c.Auth.TokenFile = v; return nil }},
	{"CALLBACK_PORT", func(c *domain.Config, v string) error { return parseInt(&c.Auth.CallbackPort, v) }},
	{"AUTH_TIMEOUT", func(c *domain.Config, v string) error { return parseDuration(&c.Auth.Timeout, v) }},
	{"NO_BROWSER", func(c *domain.Config, v string) error { return parseBool(&c.Auth.NoBrowser, v) }},
	{"DOWNLOAD_DIR", func(c *domain.Config, v string) error { c.DownloadDir = v; return nil }},
	{"SKIP_FAILED_DOWNLOADS", func(c *domain.Config, v string) error { return parseBool(&c.SkipFailedDownloads, v) }},
	{"OUTPUT_FILE", func(c *domain.Config, v string) error { c.Output.File = v; return nil }},
	{"SHEET_NAME", func(c *domain.Config, v string) error { c.Output.SheetName = v; return nil }},
}

// applyEnv overlays DRIVETABLES_* variables found by lookup.
func applyEnv(cfg *domain.Config, lookup func(string) (string, bool)) error {
	for _, ev := range envVars {
		name := EnvPrefix + ev.name
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := ev.apply(cfg, v); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, name, err)
		}
	}
	return nil
}

func parseInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseInt64(dst *int64, v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseFloat(dst *float64, v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func parseBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func parseDuration(dst *time.Duration, v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
