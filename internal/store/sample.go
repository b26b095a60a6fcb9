package store

import (
	"time"

	"jobtrend/internal/models"
)

// SamplePostings is the built-in demo dataset served when the jobs file
// cannot be read. Timestamps are relative so the dashboard's recent-activity
// numbers stay plausible.
func SamplePostings() []models.JobPosting {
	now := time.Now()
	return []models.JobPosting{
		{
			ID:             "sample-1",
			Title:          "Growth Marketing Manager",
			Company:        "TechStart Inc",
			Location:       "San Francisco, CA",
			Salary:         "80,000 - 120,000",
			Skills:         []string{"digital marketing", "analytics", "growth hacking"},
			URL:            "https://example.com/job1",
			Source:         "LinkedIn",
			ScrapedAt:      now.Add(-24 * time.Hour),
			SearchQuery:    "growth marketing",
			SearchLocation: "San Francisco",
		},
		{
			ID:             "sample-2",
			Title:          "Startup Product Manager",
			Company:        "InnovateCorp",
			Location:       "New York, NY",
			Salary:         "90,000 - 140,000",
			Skills:         []string{"product management", "agile", "strategy"},
			URL:            "https://example.com/job2",
			Source:         "Indeed",
			ScrapedAt:      now.Add(-12 * time.Hour),
			SearchQuery:    "product manager",
			SearchLocation: "New York",
		},
		{
			ID:             "sample-3",
			Title:          "Digital Marketing Specialist",
			Company:        "GrowthCo",
			Location:       "Remote",
			Salary:         "60,000 - 90,000",
			Skills:         []string{"seo", "social media", "content marketing"},
			URL:            "https://example.com/job3",
			Source:         "RemoteOK",
			ScrapedAt:      now,
			SearchQuery:    "digital marketing",
			SearchLocation: "Remote",
		},
		{
			ID:             "sample-4",
			Title:          "Business Development Manager",
			Company:        "ScaleUp Ltd",
			Location:       "Austin, TX",
			Salary:         "70,000 - 110,000",
			Skills:         []string{"business development", "sales", "partnerships"},
			URL:            "https://example.com/job4",
			Source:         "LinkedIn",
			ScrapedAt:      now.Add(-6 * time.Hour),
			SearchQuery:    "business development",
			SearchLocation: "Austin",
		},
		{
			ID:             "sample-5",
			Title:          "Growth Hacker",
			Company:        "StartupXYZ",
			Location:       "Los Angeles, CA",
			Salary:         "75,000 - 115,000",
			Skills:         []string{"growth hacking", "analytics", "experimentation"},
			URL:            "https://example.com/job5",
			Source:         "Indeed",
			ScrapedAt:      now.Add(-2 * time.Hour),
			SearchQuery:    "growth hacker",
			SearchLocation: "Los Angeles",
		},
	}
}
