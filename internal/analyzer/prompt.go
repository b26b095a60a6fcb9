package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"jobtrend/internal/models"
)

// BuildInsightsPrompt prepares the templated prompt handed to the
// text-generation collaborator: recent activity, trend direction, top skills,
// top hiring companies and top locations over the last 7 days.
func BuildInsightsPrompt(postings []models.JobPosting) string {
	trends := AnalyzeTrends(postings)
	skills := TopSkills(postings, 10)
	recent, _ := recentWindow(postings, time.Now())

	direction := "Decreasing"
	if trends.GrowthRate > 0 {
		direction = "Increasing"
	}

	var b strings.Builder
	b.WriteString("Analyze this job market data and provide insights:\n\n")
	b.WriteString("RECENT ACTIVITY (Last 7 days):\n")
	fmt.Fprintf(&b, "- Total jobs: %d\n", len(recent))
	fmt.Fprintf(&b, "- Growth trend: %s (%.1f%% predicted change)\n\n", direction, trends.PredictedChangePercent)

	b.WriteString("TOP SKILLS IN DEMAND:\n")
	for i, s := range skills {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "- %s: %d mentions\n", s.Name, s.Count)
	}

	b.WriteString("\nTOP HIRING COMPANIES:\n")
	for _, e := range topCounts(recent, func(p models.JobPosting) string { return p.Company }, 5) {
		fmt.Fprintf(&b, "- %s: %d jobs\n", e.name, e.count)
	}

	b.WriteString("\nTOP LOCATIONS:\n")
	for _, e := range topCounts(recent, func(p models.JobPosting) string { return p.Location }, 5) {
		fmt.Fprintf(&b, "- %s: %d jobs\n", e.name, e.count)
	}

	b.WriteString(`
Please provide a concise market analysis (2-3 paragraphs) covering:
1. Current market trends and what they indicate
2. Key skills that are most valuable right now
3. Actionable recommendations for job seekers in marketing/growth roles

Keep the response professional and data-driven.`)
	return b.String()
}

type countEntry struct {
	name  string
	count int
}

func topCounts(postings []models.JobPosting, key func(models.JobPosting) string, limit int) []countEntry {
	counts := make(map[string]int)
	for _, p := range postings {
		if k := key(p); k != "" {
			counts[k]++
		}
	}

	entries := make([]countEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, countEntry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
