package ai

import (
	"context"
	"fmt"
	"log"

	"jobtrend/internal/analyzer"
	"jobtrend/internal/models"
)

// Client is the interface for text-generation providers.
type Client interface {
	// GenerateInsights takes a prepared prompt and returns prose.
	GenerateInsights(ctx context.Context, prompt string) (string, error)
}

const unavailableMessage = "AI insights are not available. Please configure your ANTHROPIC_API_KEY."

// Insights builds the market prompt from the snapshot and asks the provider
// for a narrative summary. A missing provider or a provider error degrades to
// a fixed informational message; this function never fails.
func Insights(ctx context.Context, client Client, postings []models.JobPosting) string {
	if client == nil || len(postings) == 0 {
		return unavailableMessage
	}

	prompt := analyzer.BuildInsightsPrompt(postings)
	summary, err := client.GenerateInsights(ctx, prompt)
	if err != nil {
		log.Printf("⚠️ Insights generation failed: %v", err)
		return fmt.Sprintf("Unable to generate AI insights at this time. (%v)", err)
	}
	return summary
}
