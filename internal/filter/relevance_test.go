package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		query    string
		expected bool
	}{
		{"query match", "Senior Golang Developer", "golang", true},
		{"query match is case-insensitive", "GROWTH HACKER", "growth", true},
		{"role term match without query match", "Business Development Representative", "golang", true},
		{"no match", "Forklift Operator", "golang", false},
		{"empty title", "", "golang", false},
		{"vocabulary only", "Digital Content Lead", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Relevant(tt.title, tt.query))
		})
	}
}

func TestExtractSkills(t *testing.T) {
	found := ExtractSkills("We need strong SEO and Google Analytics experience, plus Excel.")
	assert.Contains(t, found, "seo")
	assert.Contains(t, found, "google analytics")
	assert.Contains(t, found, "excel")
	assert.NotContains(t, found, "python")

	assert.Nil(t, ExtractSkills(""))
}
