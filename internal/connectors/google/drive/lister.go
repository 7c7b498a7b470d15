package drive

import (
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"

	"github.com/custodia-labs/drivetables/internal/connectors/google"
	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Ensure Lister implements the interface.
var _ driven.FileLister = (*Lister)(nil)

// Lister lists the files of a Drive folder.
type Lister struct {
	svc      *drive.Service
	limiter  *google.RateLimiter
	pageSize int64
}

// NewLister creates a folder lister. The limiter may be shared with a Fetcher.
func NewLister(svc *drive.Service, limiter *google.RateLimiter, cfg *Config) *Lister {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if limiter == nil {
		limiter = google.NewRateLimiterWithConfig(cfg.RateLimit)
	}
	return &Lister{svc: svc, limiter: limiter, pageSize: cfg.PageSize}
}

// List returns every file in the folder with the given MIME type, following
// pagination until the last page. An empty MIME type lists PDFs.
func (l *Lister) List(ctx context.Context, folderID, mimeType string) ([]domain.RemoteFile, error) {
	if mimeType == "" {
		mimeType = MimeTypePDF
	}
	query := FolderQuery(folderID, mimeType)
	logger.Debug("Drive query: %s", query)

	var files []domain.RemoteFile
	pageToken := ""
	for {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := l.svc.Files.List().
			Q(query).
			Fields(listFields).
			PageSize(l.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			if google.IsRateLimited(err) {
				l.limiter.RecordRateLimitError(0)
			}
			return nil, fmt.Errorf("list folder %s: %w", folderID, google.WrapError(err))
		}

		for _, f := range resp.Files {
			files = append(files, domain.RemoteFile{ID: f.Id, Name: f.Name})
		}

		if resp.NextPageToken == "" {
			return files, nil
		}
		pageToken = resp.NextPageToken
	}
}
