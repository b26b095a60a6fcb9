package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// JobPosting is one job advertisement as acquired from a source.
// ScrapedAt is acquisition time, not posting time; SearchQuery and
// SearchLocation record which search produced the record.
type JobPosting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Salary         string    `json:"salary"`
	Skills         []string  `json:"skills"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	ScrapedAt      time.Time `json:"scraped_date"`
	SearchQuery    string    `json:"search_query"`
	SearchLocation string    `json:"search_location"`
}

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	disallowedRegex = regexp.MustCompile(`[^\w\s\-.,]`)
)

// CleanText collapses runs of whitespace, folds accented letters to their
// base form, and strips characters outside a conservative allow-list
// (word characters, spaces, hyphens, dots, commas).
func CleanText(s string) string {
	s = whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
	s = stripDiacritics(s)
	return disallowedRegex.ReplaceAllString(s, "")
}

// NormalizeSkills lower-cases and trims every entry and removes duplicates
// while preserving insertion order.
func NormalizeSkills(skills []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen.Contains(s) {
			continue
		}
		seen.Add(s)
		out = append(out, s)
	}
	return out
}

// stripDiacritics decomposes the string and drops combining marks, so
// "Café" and "Cafe" compare equal downstream.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func normalizeText(s string) string {
	return strings.ToLower(stripDiacritics(s))
}

// DedupKey is the fallback uniqueness key used by the store when a posting
// carries no URL: the lower-cased, diacritic-stripped "title-company" pair.
func (p JobPosting) DedupKey() string {
	return normalizeText(p.Title + "-" + p.Company)
}

// Valid reports whether the posting has the minimum fields required for storage.
func (p JobPosting) Valid() bool {
	return strings.TrimSpace(p.Title) != "" && strings.TrimSpace(p.Company) != ""
}
