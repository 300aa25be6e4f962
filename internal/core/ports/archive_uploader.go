package ports

import "context"

// ArchiveUploader persists label documents to the remote file store.
type ArchiveUploader interface {
	// Upload writes content under filename in the configured remote
	// directory, overwriting any existing file. The underlying connection
	// is scoped to the call and released on every exit path.
	Upload(ctx context.Context, filename string, content []byte) error
}
