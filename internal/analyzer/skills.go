package analyzer

import (
	"math"
	"sort"
	"strings"
	"time"

	"jobtrend/internal/filter"
	"jobtrend/internal/models"
)

// SkillStat is one skill's demand score. Trend fields are populated for the
// top-ranked skills only; TrendPercent is 0 when the older window is empty.
type SkillStat struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	RecentCount  int     `json:"recent_count"`
	OlderCount   int     `json:"older_count"`
	TrendPercent float64 `json:"trend_percentage"`
}

// skillTrendDepth is how many top skills get the recent-vs-older comparison.
const skillTrendDepth = 10

// TopSkills ranks skills by frequency across the snapshot. Each posting
// contributes vocabulary terms found in its title+company text plus any
// explicit skills entries of at least 3 characters. Ties keep
// first-encountered order.
func TopSkills(postings []models.JobPosting, limit int) []SkillStat {
	if len(postings) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	bump := func(name string) {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	for _, p := range postings {
		text := strings.ToLower(p.Title + " " + p.Company)
		for _, skill := range filter.SkillVocabulary {
			if strings.Contains(text, skill) {
				bump(skill)
			}
		}
		for _, skill := range p.Skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if len(skill) >= 3 {
				bump(skill)
			}
		}
	}

	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return rank[order[i]] < rank[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}

	stats := make([]SkillStat, len(order))
	for i, name := range order {
		stats[i] = SkillStat{Name: name, Count: counts[name]}
	}

	applySkillTrends(stats, postings, time.Now())
	return stats
}

// applySkillTrends fills the recent/older window counts and percent change
// for the first skillTrendDepth entries.
func applySkillTrends(stats []SkillStat, postings []models.JobPosting, now time.Time) {
	depth := skillTrendDepth
	if len(stats) < depth {
		depth = len(stats)
	}
	if depth == 0 {
		return
	}

	recent, older := recentWindow(postings, now)
	for i := 0; i < depth; i++ {
		recentCount := countSkillMentions(recent, stats[i].Name)
		olderCount := countSkillMentions(older, stats[i].Name)

		stats[i].RecentCount = recentCount
		stats[i].OlderCount = olderCount
		if olderCount > 0 {
			stats[i].TrendPercent = math.Round(float64(recentCount-olderCount) / float64(olderCount) * 100)
		}
	}
}

// countSkillMentions counts postings whose title+company text contains the skill.
func countSkillMentions(postings []models.JobPosting, skill string) int {
	skill = strings.ToLower(skill)
	count := 0
	for _, p := range postings {
		text := strings.ToLower(p.Title + " " + p.Company)
		if strings.Contains(text, skill) {
			count++
		}
	}
	return count
}
