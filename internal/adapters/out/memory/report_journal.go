// Package memory provides the in-memory report journal. The pipeline keeps
// no persistent database; run reports are held in a bounded window that is
// lost on restart.
package memory

import (
	"sync"

	"fulfillment/internal/core/domain/model/pipeline"
)

// journalWindow is how many recent run reports are retained.
const journalWindow = 32

// ReportJournal is a mutex-guarded ring of the most recent run reports.
// Safe for concurrent use: the cron job appends while the HTTP read side
// queries.
type ReportJournal struct {
	mu      sync.Mutex
	reports []pipeline.Report
}

// NewReportJournal creates an empty journal.
func NewReportJournal() *ReportJournal {
	return &ReportJournal{}
}

// Append records a completed run report, evicting the oldest entry once the
// window is full.
func (j *ReportJournal) Append(report pipeline.Report) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.reports = append(j.reports, report)
	if len(j.reports) > journalWindow {
		j.reports = j.reports[len(j.reports)-journalWindow:]
	}
}

// Last returns the most recently appended report, or false when no run has
// completed yet.
func (j *ReportJournal) Last() (pipeline.Report, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.reports) == 0 {
		return pipeline.Report{}, false
	}
	return j.reports[len(j.reports)-1], true
}
