package ports

import "fulfillment/internal/core/domain/model/label"

// DocumentStore keeps the local audit copy of each label document, written
// before the remote upload is attempted.
type DocumentStore interface {
	// Save writes the document under its label filename and returns the
	// path it was written to.
	Save(doc label.Document) (string, error)
}
