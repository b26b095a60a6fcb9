// Command report prints a one-shot job market report to the console.
package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"jobtrend/internal/ai"
	"jobtrend/internal/analyzer"
	"jobtrend/internal/config"
	"jobtrend/internal/store"
)

func main() {
	cfg := config.Load()

	st := store.New(cfg.DataPath)
	postings := st.ReadAll()
	stats := st.Stats()

	trends := analyzer.AnalyzeTrends(postings)
	skills := analyzer.TopSkills(postings, 20)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	insights := ai.Insights(ctx, ai.NewAnthropicClient(cfg.AnthropicAPIKey), postings)

	divider := strings.Repeat("=", 60)
	fmt.Println("\n" + divider)
	fmt.Println("📊 JOBTREND MARKET REPORT")
	fmt.Println(divider)
	fmt.Printf("📅 Generated: %s\n", time.Now().Format(time.RFC1123))
	fmt.Printf("📈 Total Jobs Tracked: %d\n", stats.TotalJobs)
	fmt.Printf("🆕 New Jobs (24h): %d\n", stats.RecentJobs)
	fmt.Printf("📊 Growth Prediction: %.1f%%\n", trends.PredictedChangePercent)

	fmt.Println("\n🏢 TOP JOB SOURCES:")
	for _, e := range sortedCounts(stats.Sources, 0) {
		fmt.Printf("   %s: %d jobs\n", e.name, e.count)
	}

	fmt.Println("\n🎯 TOP SKILLS IN DEMAND:")
	for i, skill := range skills {
		if i >= 10 {
			break
		}
		fmt.Printf("   %d. %s: %d mentions\n", i+1, skill.Name, skill.Count)
	}

	fmt.Println("\n🏢 TOP HIRING COMPANIES:")
	for i, e := range sortedCounts(stats.Companies, 10) {
		fmt.Printf("   %d. %s: %d jobs\n", i+1, e.name, e.count)
	}

	if insights != "" {
		fmt.Println("\n🤖 AI MARKET INSIGHTS:")
		fmt.Println("   " + strings.ReplaceAll(insights, "\n", "\n   "))
	}

	fmt.Println("\n" + divider)
	log.Println("📋 Report complete.")
}

type entry struct {
	name  string
	count int
}

func sortedCounts(counts map[string]int, limit int) []entry {
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
