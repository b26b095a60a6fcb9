// Package usajobs fetches postings from the USAJobs search API.
package usajobs

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"jobtrend/internal/filter"
	"jobtrend/internal/models"

	"github.com/go-resty/resty/v2"
)

const sourceName = "USAJobs"

type Client struct {
	http *resty.Client
}

// New builds the client. The API key is optional; without one the API still
// answers, with reduced quotas.
func New(apiKey string) *Client {
	c := resty.New().
		SetBaseURL("https://data.usajobs.gov").
		SetHeader("User-Agent", "JobTrend AI (contact@example.com)").
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		c.SetHeader("Authorization-Key", apiKey)
	}
	return &Client{http: c}
}

func (c *Client) Name() string { return sourceName }

type searchResponse struct {
	SearchResult struct {
		SearchResultItems []struct {
			MatchedObjectDescriptor struct {
				PositionTitle    string `json:"PositionTitle"`
				OrganizationName string `json:"OrganizationName"`
				PositionURI      string `json:"PositionURI"`
				PositionLocation []struct {
					LocationName string `json:"LocationName"`
				} `json:"PositionLocation"`
				PositionRemuneration []struct {
					MinimumRange string `json:"MinimumRange"`
					MaximumRange string `json:"MaximumRange"`
				} `json:"PositionRemuneration"`
				QualificationSummary string `json:"QualificationSummary"`
			} `json:"MatchedObjectDescriptor"`
		} `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]models.JobPosting, error) {
	log.Println("🇺🇸 Fetching jobs from USAJobs API...")

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"Keyword":        query,
			"ResultsPerPage": strconv.Itoa(limit),
			"SortField":      "OpenDate",
			"SortDirection":  "Desc",
		}).
		SetResult(&result).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("usajobs request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("usajobs returned status %d", resp.StatusCode())
	}

	now := time.Now()
	var jobs []models.JobPosting
	for _, item := range result.SearchResult.SearchResultItems {
		d := item.MatchedObjectDescriptor
		if !filter.Relevant(d.PositionTitle, query) {
			continue
		}

		company := d.OrganizationName
		if company == "" {
			company = "US Government"
		}

		location := "Unknown Location"
		if len(d.PositionLocation) > 0 && d.PositionLocation[0].LocationName != "" {
			location = d.PositionLocation[0].LocationName
		}

		salary := ""
		if len(d.PositionRemuneration) > 0 {
			r := d.PositionRemuneration[0]
			if r.MinimumRange != "" && r.MaximumRange != "" {
				salary = fmt.Sprintf("$%s - $%s", r.MinimumRange, r.MaximumRange)
			}
		}

		url := d.PositionURI
		if url == "" {
			url = "https://usajobs.gov"
		}

		jobs = append(jobs, models.JobPosting{
			Title:          d.PositionTitle,
			Company:        company,
			Location:       location,
			Salary:         salary,
			Skills:         filter.ExtractSkills(d.QualificationSummary),
			URL:            url,
			Source:         sourceName,
			ScrapedAt:      now,
			SearchQuery:    query,
			SearchLocation: "United States",
		})
	}

	log.Printf("✅ USAJobs: Found %d relevant jobs", len(jobs))
	return jobs, nil
}
