package filter

import "strings"

// SkillVocabulary is the curated list of marketing/tech/business skill terms
// scanned for in posting text. Shared by the source adapters (to enrich
// candidates that only expose free text) and the analyzer.
var SkillVocabulary = []string{
	"javascript", "python", "react", "node.js", "sql", "marketing", "analytics",
	"growth hacking", "seo", "social media", "content marketing", "digital marketing",
	"product management", "agile", "scrum", "leadership", "strategy", "communication",
	"project management", "data analysis", "excel", "powerpoint", "salesforce",
	"hubspot", "google analytics", "facebook ads", "google ads", "email marketing",
}

// ExtractSkills returns every vocabulary term contained in the text, in
// vocabulary order.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	textLower := strings.ToLower(text)
	var found []string
	for _, skill := range SkillVocabulary {
		if strings.Contains(textLower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
