package filter

import "strings"

// roleTerms is the fixed vocabulary of role indicators. Broad API responses
// include plenty of off-topic postings; a candidate survives only when its
// title contains the search query or one of these terms.
var roleTerms = []string{
	"marketing", "growth", "product", "manager", "startup", "business development",
	"sales", "operations", "strategy", "digital", "content", "social", "community",
}

// Relevant reports whether a job title matches the search query or the
// role-indicator vocabulary, case-insensitively.
func Relevant(title, query string) bool {
	if title == "" {
		return false
	}

	titleLower := strings.ToLower(title)
	if query != "" && strings.Contains(titleLower, strings.ToLower(query)) {
		return true
	}

	for _, term := range roleTerms {
		if strings.Contains(titleLower, term) {
			return true
		}
	}
	return false
}
