package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/drivetables/internal/connectors/google"
	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.FileFetcher = (*Fetcher)(nil)

// Fetcher downloads Drive files into a local directory.
type Fetcher struct {
	svc       *drive.Service
	limiter   *google.RateLimiter
	dir       string
	chunkSize int
}

// NewFetcher creates a fetcher writing into cfg.DownloadDir.
func NewFetcher(svc *drive.Service, limiter *google.RateLimiter, cfg *Config) *Fetcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if limiter == nil {
		limiter = google.NewRateLimiterWithConfig(cfg.RateLimit)
	}
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return &Fetcher{svc: svc, limiter: limiter, dir: cfg.DownloadDir, chunkSize: chunk}
}

// Fetch streams the file content to <dir>/<name>, creating the directory if
// needed and overwriting an existing file. An interrupted transfer leaves a
// truncated file behind and returns the transport error.
func (f *Fetcher) Fetch(ctx context.Context, file domain.RemoteFile) (string, error) {
	name := LocalName(file.Name)
	if name == "" {
		return "", fmt.Errorf("%w: file %s has no usable name %q", domain.ErrInvalidInput, file.ID, file.Name)
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := f.svc.Files.Get(file.ID).Context(ctx).Download()
	if err != nil {
		if google.IsRateLimited(err) {
			f.limiter.RecordRateLimitError(0)
		}
		return "", fmt.Errorf("download file: %w", google.WrapError(err))
	}
	defer resp.Body.Close()

	path := filepath.Join(f.dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	n, err := f.copyChunks(ctx, out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	logger.Debug("Downloaded %s (%d bytes)", path, n)
	return path, nil
}

// copyChunks copies src to dst one chunk at a time until EOF, checking for
// cancellation between chunks.
func (f *Fetcher) copyChunks(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, f.chunkSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
