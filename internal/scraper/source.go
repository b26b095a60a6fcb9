// Package scraper defines the source-adapter contract and the acquisition
// orchestrator that sequences sources, queries and locations under pacing.
package scraper

import (
	"context"
	"time"

	"jobtrend/internal/browser"
	"jobtrend/internal/models"
)

// Source produces candidate postings for a query. Adapters tag every
// candidate with their source name, acquisition time and the search
// parameters before returning. A failing source returns an error; the
// orchestrator records it as zero candidates for that unit and moves on.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]models.JobPosting, error)
}

// PageSource is a rendered-page source. It borrows a page from the stealth
// session for one query/location unit and must release it on every path.
type PageSource interface {
	Name() string
	FetchPage(ctx context.Context, session *browser.Session, query, location string, pageNum int) ([]models.JobPosting, error)
}

// UnitResult records the outcome of one (source, query, location) unit.
type UnitResult struct {
	Source   string
	Query    string
	Location string
	Count    int
	Err      error
}

// RunSummary aggregates one orchestrator run.
type RunSummary struct {
	Units      []UnitResult
	Collected  int
	Appended   int
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r RunSummary) Failures() int {
	n := 0
	for _, u := range r.Units {
		if u.Err != nil {
			n++
		}
	}
	return n
}
