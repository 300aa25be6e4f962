// Package emag is the outbound adapter for the marketplace API. One Client
// implements the OrderFeed, LabelIssuer, and LabelFetcher ports over the
// three endpoints the pipeline consumes:
//
//	POST order/read     form-encoded status filter, JSON results
//	POST awb/save       JSON waybill request, JSON label identifier
//	GET  awb/read_pdf   rendered label document (PDF)
//
// All calls share HTTP Basic credentials, a request timeout, and a rate
// limiter sized to the marketplace's per-second allowance. Failures are
// converted to the errs taxonomy at this boundary.
package emag
