package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/label"
)

// LabelIssuer submits waybill-generation requests to the carrier endpoint.
type LabelIssuer interface {
	// IssueLabel submits the request and resolves the identifier of the
	// issued label. Any failure, transport, authentication, or an explicit
	// error flag in the response, is returned as a typed error carrying the
	// order id; nothing is raised past this boundary.
	IssueLabel(ctx context.Context, req label.Request) (label.Label, error)
}
