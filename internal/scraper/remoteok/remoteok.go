// Package remoteok fetches postings from the RemoteOK public JSON API.
package remoteok

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobtrend/internal/filter"
	"jobtrend/internal/models"

	"github.com/go-resty/resty/v2"
)

const sourceName = "RemoteOK"

type Client struct {
	http *resty.Client
}

func New() *Client {
	c := resty.New().
		SetBaseURL("https://remoteok.io").
		SetHeader("User-Agent", "JobTrend AI (contact@example.com)").
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

func (c *Client) Name() string { return sourceName }

// remoteJob mirrors one API element. The first array element is API metadata
// and carries none of these fields.
type remoteJob struct {
	Position  string   `json:"position"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	Tags      []string `json:"tags"`
	SalaryMin int      `json:"salary_min"`
	SalaryMax int      `json:"salary_max"`
	URL       string   `json:"url"`
	Slug      string   `json:"slug"`
}

func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]models.JobPosting, error) {
	log.Println("🌐 Fetching jobs from RemoteOK API...")

	var raw []remoteJob
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&raw).
		Get("/api")
	if err != nil {
		return nil, fmt.Errorf("remoteok request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remoteok returned status %d", resp.StatusCode())
	}

	if len(raw) > 0 {
		raw = raw[1:] // first element is metadata
	}
	if len(raw) > limit {
		raw = raw[:limit]
	}

	now := time.Now()
	var jobs []models.JobPosting
	for _, j := range raw {
		if !filter.Relevant(j.Position, query) {
			continue
		}

		var skills []string
		for _, tag := range j.Tags {
			if tag != "" {
				skills = append(skills, strings.ToLower(tag))
			}
		}

		salary := ""
		if j.SalaryMin > 0 && j.SalaryMax > 0 {
			salary = fmt.Sprintf("$%d - $%d", j.SalaryMin, j.SalaryMax)
		}

		url := j.URL
		if url == "" && j.Slug != "" {
			url = "https://remoteok.io/remote-jobs/" + j.Slug
		}

		location := j.Location
		if location == "" {
			location = "Remote"
		}

		jobs = append(jobs, models.JobPosting{
			Title:          j.Position,
			Company:        j.Company,
			Location:       location,
			Salary:         salary,
			Skills:         skills,
			URL:            url,
			Source:         sourceName,
			ScrapedAt:      now,
			SearchQuery:    query,
			SearchLocation: "Remote",
		})
	}

	log.Printf("✅ RemoteOK: Found %d relevant jobs", len(jobs))
	return jobs, nil
}
