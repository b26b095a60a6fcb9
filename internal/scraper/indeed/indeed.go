// Package indeed scrapes Indeed search result pages through the stealth
// browser session. Extraction uses ordered locator fallbacks per field so
// markup drift degrades single fields instead of failing the whole unit.
package indeed

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobtrend/internal/browser"
	"jobtrend/internal/config"
	"jobtrend/internal/filter"
	"jobtrend/internal/models"

	"github.com/playwright-community/playwright-go"
)

const (
	sourceName   = "Indeed"
	baseURL      = "https://www.indeed.com"
	maxCards     = 20
	resultsPerPg = 10
)

type Scraper struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Scraper {
	return &Scraper{cfg: cfg}
}

func (s *Scraper) Name() string { return sourceName }

var (
	cardSelectors     = []string{"[data-jk]", ".job_seen_beacon", ".result"}
	titleSelectors    = []string{`h2.jobTitle a span`, `[data-testid="job-title"] span`, `a.jcs-JobTitle`}
	companySelectors  = []string{`[data-testid="company-name"]`, `span.companyName`}
	locationSelectors = []string{`[data-testid="text-location"]`, `div.companyLocation`}
	salarySelectors   = []string{`.salary-snippet-container`, `[data-testid="attribute_snippet_testid"]`, `.metadata.salary-snippet-container`}
	linkSelectors     = []string{`h2.jobTitle a`, `a.jcs-JobTitle`}
)

func searchURL(query, location string, start int) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("l", location)
	params.Set("start", strconv.Itoa(start))
	params.Set("fromage", "1") // last day only
	return baseURL + "/jobs?" + params.Encode()
}

// FetchPage scrapes one search result page for a query/location unit. The
// borrowed stealth page is released on every path.
func (s *Scraper) FetchPage(ctx context.Context, session *browser.Session, query, location string, pageNum int) ([]models.JobPosting, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if pageNum >= s.cfg.MaxPagesPerSite {
		log.Printf("    ℹ️ Page %d is past the configured per-site limit (%d), skipping", pageNum, s.cfg.MaxPagesPerSite)
		return nil, nil
	}

	page, err := session.NewStealthPage()
	if err != nil {
		return nil, fmt.Errorf("could not acquire stealth page: %w", err)
	}
	defer session.ClosePage(page)

	target := searchURL(query, location, pageNum*resultsPerPg)
	if _, err := page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(60000),
	}); err != nil {
		return nil, fmt.Errorf("navigation failed: %w", err)
	}

	if session.ChallengeDetected(page) {
		return nil, fmt.Errorf("challenge page served for %q in %q", query, location)
	}

	//human behavior
	session.MouseJiggle(page)
	session.SmoothScroll(page)
	browser.RandomDelay(500, 1500)

	cards, err := findCards(page)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		log.Printf("    ℹ️ No job cards found for %q in %q", query, location)
		return nil, nil
	}
	log.Printf("    📦 Found %d job cards for %q", len(cards), query)

	now := time.Now()
	var jobs []models.JobPosting
	for i, card := range cards {
		if i >= maxCards {
			break
		}

		title := firstText(card, titleSelectors)
		company := firstText(card, companySelectors)
		if title == "" || company == "" {
			continue // neither locator variant matched, drop the candidate
		}
		if !filter.Relevant(title, query) {
			continue
		}

		jobURL := firstAttr(card, "href", linkSelectors)
		if strings.HasPrefix(jobURL, "/") {
			jobURL = baseURL + jobURL
		}

		jobs = append(jobs, models.JobPosting{
			Title:          title,
			Company:        company,
			Location:       firstText(card, locationSelectors),
			Salary:         firstText(card, salarySelectors),
			URL:            jobURL,
			Source:         sourceName,
			ScrapedAt:      now,
			SearchQuery:    query,
			SearchLocation: location,
		})
	}

	log.Printf("    ✅ Indeed: %d candidates for %q in %q", len(jobs), query, location)
	return jobs, nil
}

func findCards(page playwright.Page) ([]playwright.Locator, error) {
	for _, sel := range cardSelectors {
		cards, err := page.Locator(sel).All()
		if err != nil {
			return nil, fmt.Errorf("could not query job cards: %w", err)
		}
		if len(cards) > 0 {
			return cards, nil
		}
	}
	return nil, nil
}

// firstText tries each selector in order and returns the first non-empty text.
func firstText(card playwright.Locator, selectors []string) string {
	for _, sel := range selectors {
		el := card.Locator(sel).First()
		text, err := el.TextContent(playwright.LocatorTextContentOptions{
			Timeout: playwright.Float(500),
		})
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func firstAttr(card playwright.Locator, attr string, selectors []string) string {
	for _, sel := range selectors {
		el := card.Locator(sel).First()
		val, err := el.GetAttribute(attr, playwright.LocatorGetAttributeOptions{
			Timeout: playwright.Float(500),
		})
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(val); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
