package emag

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

const opOrderRead = "order/read"

// FetchOrders retrieves the orders currently in the given status.
// The endpoint takes a form-encoded body with status as the sole filter.
// An empty or absent results list yields an empty, non-nil slice.
func (c *Client) FetchOrders(ctx context.Context, status int) ([]order.Order, error) {
	form := url.Values{}
	form.Set("status", strconv.Itoa(status))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/order/read", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.NewTransportError(opOrderRead, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(ctx, opOrderRead, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewTransportError(opOrderRead,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body orderReadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.NewTransportError(opOrderRead, fmt.Errorf("malformed response: %w", err))
	}

	if body.IsError {
		return nil, errs.NewUpstreamBusinessError("", opOrderRead+" response flagged as error")
	}

	orders := body.Results
	if orders == nil {
		orders = []order.Order{}
	}

	c.logger.InfoContext(ctx, "Fetched orders", "status", status, "count", len(orders))
	return orders, nil
}
