package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/label"
)

// LabelFetcher retrieves rendered label documents from the carrier endpoint.
type LabelFetcher interface {
	// FetchLabelDocument downloads the rendered PDF for an issued label.
	// Succeeds only when the endpoint answers with success status and a PDF
	// content type; anything else is a typed fetch error.
	FetchLabelDocument(ctx context.Context, l label.Label) ([]byte, error)
}
