package scraper

import (
	"context"
	"errors"
	"log"
	"time"

	"jobtrend/internal/browser"
	"jobtrend/internal/config"
	"jobtrend/internal/models"
	"jobtrend/internal/scraper/indeed"
	"jobtrend/internal/scraper/remoteok"
	"jobtrend/internal/scraper/usajobs"
	"jobtrend/internal/scraper/weworkremotely"
	"jobtrend/internal/store"
)

// ErrAllSourcesFailed is returned when not a single unit produced candidates
// and every attempted unit errored. Partial outages are not fatal.
var ErrAllSourcesFailed = errors.New("no source could be acquired")

const (
	sourcePause = 2 * time.Second
	rolePause   = 3 * time.Second

	// Rendered-page sources run against a bounded subset of the
	// role/location cross-product to limit exposure.
	maxPageRoles     = 2
	maxPageLocations = 2

	perSourceLimit = 15
)

// Runner executes one acquisition cycle: API sources first, rendered-page
// sources second, strictly sequentially, then a single append to the store.
type Runner struct {
	cfg         *config.Config
	store       *store.Store
	apiSources  []Source
	pageSources []PageSource
	sourcePause time.Duration
	rolePause   time.Duration
}

// NewRunner wires the full production source set.
func NewRunner(cfg *config.Config, st *store.Store) *Runner {
	return NewRunnerWithSources(cfg, st,
		[]Source{
			remoteok.New(),
			usajobs.New(cfg.USAJobsAPIKey),
			weworkremotely.New(),
		},
		[]PageSource{
			indeed.New(cfg),
		})
}

// NewRunnerWithSources wires an explicit source set, for runs against a
// subset of origins.
func NewRunnerWithSources(cfg *config.Config, st *store.Store, apiSources []Source, pageSources []PageSource) *Runner {
	return &Runner{
		cfg:         cfg,
		store:       st,
		apiSources:  apiSources,
		pageSources: pageSources,
		sourcePause: sourcePause,
		rolePause:   rolePause,
	}
}

// Run performs one full acquisition cycle and returns the run summary. Unit
// failures are recorded, logged and swallowed; the run always carries
// whatever was accumulated to the store. The returned error is non-nil only
// when every unit failed with nothing collected, or when the final append
// itself failed.
func (r *Runner) Run(ctx context.Context) (RunSummary, error) {
	summary := RunSummary{StartedAt: time.Now()}
	var candidates []models.JobPosting

	log.Println("🚀 Starting comprehensive job scraping...")
	log.Printf("🎯 Target roles: %v", r.cfg.TargetRoles)

	//Phase 1: API sources (fast and reliable)
	log.Println("\n📡 Phase 1: API-based job sources")
	for i, role := range r.cfg.TargetRoles {
		if i > 0 {
			time.Sleep(r.rolePause)
		}
		log.Printf("\n🔍 Searching APIs for: %q", role)

		for j, src := range r.apiSources {
			if j > 0 {
				time.Sleep(r.sourcePause)
			}

			jobs, err := src.Fetch(ctx, role, perSourceLimit)
			unit := UnitResult{Source: src.Name(), Query: role, Count: len(jobs), Err: err}
			summary.Units = append(summary.Units, unit)
			if err != nil {
				log.Printf("❌ %s error for %q: %v", src.Name(), role, err)
				continue
			}
			candidates = append(candidates, jobs...)
		}
	}
	log.Printf("✅ API sources: %d jobs collected", len(candidates))

	//Phase 2: rendered-page sources (slower, bounded exposure)
	if len(r.pageSources) > 0 {
		log.Println("\n🕷️ Phase 2: Web scraping")
		r.runPageSources(ctx, &summary, &candidates)
	}

	summary.Collected = len(candidates)
	log.Printf("\n📦 Total jobs collected: %d", summary.Collected)

	if summary.Collected == 0 && len(summary.Units) > 0 && summary.Failures() == len(summary.Units) {
		summary.FinishedAt = time.Now()
		return summary, ErrAllSourcesFailed
	}

	//Single append at the end of the run
	written, err := r.store.Append(candidates)
	summary.Appended = written
	summary.FinishedAt = time.Now()
	if err != nil {
		return summary, err
	}

	log.Printf("💾 Deduplication: %d collected -> %d new jobs stored", summary.Collected, written)
	return summary, nil
}

// runPageSources drives the stealth session through a limited subset of
// role/location units, first page only, and tears the session down whether
// or not every unit succeeded.
func (r *Runner) runPageSources(ctx context.Context, summary *RunSummary, candidates *[]models.JobPosting) {
	session, err := browser.NewSession(r.cfg)
	if err != nil {
		log.Printf("❌ Stealth session init failed, skipping web scraping: %v", err)
		for _, ps := range r.pageSources {
			summary.Units = append(summary.Units, UnitResult{Source: ps.Name(), Err: err})
		}
		return
	}
	defer session.Close()

	roles := r.cfg.TargetRoles
	if len(roles) > maxPageRoles {
		roles = roles[:maxPageRoles]
	}
	locations := r.cfg.Locations
	if len(locations) > maxPageLocations {
		locations = locations[:maxPageLocations]
	}

	for _, ps := range r.pageSources {
		log.Printf("\n🔧 Running %s...", ps.Name())
		for _, role := range roles {
			for _, location := range locations {
				log.Printf("🔍 Scraping: %s in %s", role, location)

				jobs, err := ps.FetchPage(ctx, session, role, location, 0)
				unit := UnitResult{Source: ps.Name(), Query: role, Location: location, Count: len(jobs), Err: err}
				summary.Units = append(summary.Units, unit)
				if err != nil {
					log.Printf("❌ Failed: %s in %s - %v", role, location, err)
				} else {
					*candidates = append(*candidates, jobs...)
				}

				session.Pace()
			}
		}
	}
}
