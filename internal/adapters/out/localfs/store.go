// Package localfs keeps the local audit copy of each label document.
package localfs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fulfillment/internal/core/domain/model/label"
)

// Store implements the DocumentStore port on the local filesystem. Labels
// land as <orderId>.pdf in the configured directory before being uploaded;
// an empty directory means the working directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a store writing into dir. An empty dir means the current
// working directory.
func NewStore(dir string, logger *slog.Logger) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{
		dir:    dir,
		logger: logger.With("component", "localfs_store"),
	}
}

// Save writes the document under its label filename, overwriting any
// previous copy, and returns the written path. Re-running the pipeline for
// an order simply refreshes the audit copy.
func (s *Store) Save(doc label.Document) (string, error) {
	path := filepath.Join(s.dir, doc.Filename())

	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("save label document: %w", err)
	}

	s.logger.Info("Label saved", "path", path, "bytes", len(doc.Content))
	return path, nil
}
