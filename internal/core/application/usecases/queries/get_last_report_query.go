// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// The only read model here is the pipeline run report journal.
package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLastReportQueryIsNotConstructed = errors.New(
		"GetLastReportQuery must be created via NewGetLastReportQuery constructor",
	)

	// ErrNoReportsYet is returned before the first pipeline run completes.
	ErrNoReportsYet = errors.New("no pipeline run has completed yet")
)

// GetLastReportQuery retrieves the report of the most recent pipeline run.
//
// Example:
//
//	query := NewGetLastReportQuery()
//	handler := NewGetLastReportQueryHandler(journal)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("last run: %d processed, %d failed\n", report.Processed, report.Failed)
type GetLastReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLastReportQuery creates a query for the latest run report.
// This is a parameterless query.
func NewGetLastReportQuery() GetLastReportQuery {
	return GetLastReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLastReportQuery) Validate() error {
	return q.guard.Validate(ErrGetLastReportQueryIsNotConstructed)
}
