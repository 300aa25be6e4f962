package ports

import "fulfillment/internal/core/domain/model/pipeline"

// ReportJournal retains pipeline run reports for the query side. There is
// no persistent database; implementations hold a bounded in-memory window.
type ReportJournal interface {
	// Append records the report of a completed run.
	Append(report pipeline.Report)

	// Last returns the most recently appended report, or false when no run
	// has completed yet.
	Last() (pipeline.Report, bool)
}
