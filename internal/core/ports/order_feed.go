package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderFeed fetches orders from the marketplace API.
type OrderFeed interface {
	// FetchOrders returns the orders currently in the given status. The
	// returned slice is never nil on success; an empty feed yields an empty
	// slice. A feed failure is returned as an error and is treated by the
	// orchestrator as a zero-order snapshot, never as a fatal fault.
	FetchOrders(ctx context.Context, status int) ([]order.Order, error)
}
