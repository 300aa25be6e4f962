package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/pipeline"
	"fulfillment/internal/core/ports"
)

// GetLastReportQueryHandler reads the most recent run report from the
// journal. Reports live only in memory; once the process restarts the
// journal starts empty again.
type GetLastReportQueryHandler struct {
	journal ports.ReportJournal
}

// NewGetLastReportQueryHandler creates a handler backed by the given journal.
func NewGetLastReportQueryHandler(journal ports.ReportJournal) GetLastReportQueryHandler {
	return GetLastReportQueryHandler{journal: journal}
}

// Handle returns the latest report, or ErrNoReportsYet when no run has
// completed since startup.
func (h GetLastReportQueryHandler) Handle(_ context.Context, query GetLastReportQuery) (pipeline.Report, error) {
	if err := query.Validate(); err != nil {
		return pipeline.Report{}, err
	}

	report, ok := h.journal.Last()
	if !ok {
		return pipeline.Report{}, ErrNoReportsYet
	}

	return report, nil
}
