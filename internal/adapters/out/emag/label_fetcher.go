package emag

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"fulfillment/internal/core/domain/model/label"
	"fulfillment/internal/pkg/errs"
)

const (
	opAWBReadPDF = "awb/read_pdf"

	pdfMediaType = "application/pdf"
)

// FetchLabelDocument downloads the rendered label PDF for an issued label.
// Succeeds only on a success status with a PDF content type; an HTML or JSON
// body in place of the document is an upstream rejection, not a label.
func (c *Client) FetchLabelDocument(ctx context.Context, l label.Label) ([]byte, error) {
	u := c.baseURL + "/awb/read_pdf?" + url.Values{"emag_id": {l.EmagIDString()}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errs.NewTransportError(opAWBReadPDF, err)
	}

	resp, err := c.do(ctx, opAWBReadPDF, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewTransportError(opAWBReadPDF,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != pdfMediaType {
		return nil, errs.NewUpstreamBusinessError(l.EmagIDString(),
			fmt.Sprintf("expected %s, got %q", pdfMediaType, resp.Header.Get("Content-Type")))
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportError(opAWBReadPDF, err)
	}

	c.logger.InfoContext(ctx, "Label document downloaded",
		"emag_id", l.EmagIDString(), "bytes", len(content))
	return content, nil
}
