package driven

import (
	"context"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// FileLister queries remote storage for files in a folder.
type FileLister interface {
	// List returns the files in folderID whose MIME type equals mimeType.
	// The remote filter is trusted; results are not re-filtered.
	List(ctx context.Context, folderID, mimeType string) ([]domain.RemoteFile, error)
}

// FileFetcher retrieves file bytes into local storage.
type FileFetcher interface {
	// Fetch downloads the file and returns the local path it was written to.
	// An existing file with the same name is overwritten.
	Fetch(ctx context.Context, file domain.RemoteFile) (string, error)
}
