package emag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/pkg/errs"
)

const opAWBSave = "awb/save"

// IssueLabel submits a waybill-generation request and resolves the remote
// identifier of the issued label.
//
// A label is only returned on a success status with the response error flag
// unset and at least one waybill entry present. Every other outcome comes
// back as a typed error carrying the order id; nothing is raised past this
// boundary.
func (c *Client) IssueLabel(ctx context.Context, labelReq label.Request) (label.Label, error) {
	orderID := strconv.FormatInt(labelReq.OrderID, 10)

	payload, err := json.Marshal(newAWBSaveRequest(labelReq))
	if err != nil {
		return label.Label{}, errs.NewValidationErrorWithCause("label request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/awb/save", bytes.NewReader(payload))
	if err != nil {
		return label.Label{}, errs.NewTransportError(opAWBSave, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(ctx, opAWBSave, req)
	if err != nil {
		return label.Label{}, err
	}
	defer resp.Body.Close()

	// A 5xx never carries a business verdict; the call simply did not land.
	if resp.StatusCode >= http.StatusInternalServerError {
		return label.Label{}, errs.NewTransportError(opAWBSave,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body awbSaveResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return label.Label{}, errs.NewTransportError(opAWBSave,
			fmt.Errorf("malformed response: %w", err))
	}

	if resp.StatusCode != http.StatusOK || body.IsError {
		return label.Label{}, errs.NewUpstreamBusinessError(orderID, body.messageText())
	}

	if len(body.Results.AWB) == 0 {
		return label.Label{}, errs.NewUpstreamBusinessError(orderID, "response contains no awb entry")
	}

	issued := label.Label{EmagID: body.Results.AWB[0].EmagID}
	c.logger.InfoContext(ctx, "Label issued", "order_id", orderID, "emag_id", issued.EmagIDString())
	return issued, nil
}
