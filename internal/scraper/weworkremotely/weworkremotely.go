// Package weworkremotely scrapes the We Work Remotely listing pages. The
// site serves static HTML, so plain HTTP with a Cloudflare-aware transport
// is enough; no browser session is needed.
package weworkremotely

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobtrend/internal/filter"
	"jobtrend/internal/models"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	sourceName = "WeWorkRemotely"
	baseURL    = "https://weworkremotely.com"
)

type Client struct {
	http *resty.Client
}

func New() *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36").
		SetTimeout(30 * time.Second)
	c.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(c.GetClient().Transport)
	return &Client{http: c}
}

func (c *Client) Name() string { return sourceName }

// Field selectors, tried in order; the site has shipped both markups.
var (
	titleSelectors   = []string{"span.title", ".new-listing__header__title"}
	companySelectors = []string{"span.company", ".new-listing__company-name"}
	regionSelectors  = []string{"span.region.company", ".new-listing__company-headquarters"}
)

func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]models.JobPosting, error) {
	log.Println("🌍 Fetching jobs from We Work Remotely...")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("term", query).
		Get("/remote-jobs/search")
	if err != nil {
		return nil, fmt.Errorf("weworkremotely request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weworkremotely returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("weworkremotely parse failed: %w", err)
	}

	now := time.Now()
	var jobs []models.JobPosting
	doc.Find("section.jobs li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if len(jobs) >= limit {
			return false
		}

		title := firstText(li, titleSelectors)
		company := firstText(li, companySelectors)
		if title == "" || company == "" {
			return true // extraction miss, drop silently
		}
		if !filter.Relevant(title, query) {
			return true
		}

		location := firstText(li, regionSelectors)
		if location == "" {
			location = "Remote"
		}

		url := ""
		if href, ok := li.Find("a").First().Attr("href"); ok && href != "" && !strings.HasPrefix(href, "#") {
			if strings.HasPrefix(href, "/") {
				href = baseURL + href
			}
			url = href
		}

		jobs = append(jobs, models.JobPosting{
			Title:          title,
			Company:        company,
			Location:       location,
			Skills:         filter.ExtractSkills(title),
			URL:            url,
			Source:         sourceName,
			ScrapedAt:      now,
			SearchQuery:    query,
			SearchLocation: "Remote",
		})
		return true
	})

	log.Printf("✅ We Work Remotely: Found %d relevant jobs", len(jobs))
	return jobs, nil
}

// firstText tries each selector in order and returns the first non-empty text.
func firstText(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
