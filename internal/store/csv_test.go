package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"jobtrend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "jobs.csv"))
}

func TestReadAllMissingFile(t *testing.T) {
	s := tempStore(t)

	postings := s.ReadAll()

	assert.Empty(t, postings, "missing file should be created empty, not sampled")
	_, err := os.Stat(s.path)
	assert.NoError(t, err, "backing file should have been created")
}

func TestReadAllCorruptFileFallsBackToSample(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0755))
	require.NoError(t, os.WriteFile(s.path, []byte("id,title\nonly,two,fields,here\n"), 0644))

	postings := s.ReadAll()

	assert.Equal(t, len(SamplePostings()), len(postings), "unreadable history should degrade to sample data")
}

func TestAppendDedupIdempotence(t *testing.T) {
	s := tempStore(t)
	candidates := []models.JobPosting{
		{Title: "Growth Marketing Manager", Company: "Acme", URL: "https://x/1"},
		{Title: "Product Manager", Company: "Initech", URL: "https://x/2"},
	}

	first, err := s.Append(candidates)
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	second, err := s.Append(candidates)
	require.NoError(t, err)
	assert.Equal(t, 0, second, "appending the same set twice must add nothing")

	assert.Len(t, s.ReadAll(), 2)
}

func TestAppendURLPrecedence(t *testing.T) {
	s := tempStore(t)
	_, err := s.Append([]models.JobPosting{
		{Title: "Growth Marketing Manager", Company: "Acme", URL: "https://x/1"},
		{Title: "Operations Lead", Company: "Globex"}, // no URL
	})
	require.NoError(t, err)

	// same URL, entirely different title/company: still a duplicate
	written, err := s.Append([]models.JobPosting{
		{Title: "Completely Different Title", Company: "Other Co", URL: "https://x/1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, written)

	// no URL, but title+company matches a URL-less record case-insensitively
	written, err = s.Append([]models.JobPosting{
		{Title: "OPERATIONS LEAD", Company: "globex"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}

func TestAppendTitleCompanyDedupWithinBatch(t *testing.T) {
	s := tempStore(t)

	written, err := s.Append([]models.JobPosting{
		{Title: "Growth Marketing Manager", Company: "Acme", URL: "https://x/1"},
		{Title: "growth marketing manager", Company: "acme"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, written, "second candidate duplicates the first by normalized title+company")
	assert.Len(t, s.ReadAll(), 1)
}

func TestSkillsRoundTrip(t *testing.T) {
	s := tempStore(t)
	skills := []string{"seo", "social media", "content marketing"}

	_, err := s.Append([]models.JobPosting{
		{Title: "Digital Marketing Specialist", Company: "GrowthCo", Skills: skills},
	})
	require.NoError(t, err)

	postings := s.ReadAll()
	require.Len(t, postings, 1)
	assert.Equal(t, skills, postings[0].Skills, "skills must round-trip through the semicolon-joined field in order")
}

func TestAppendAssignsUniqueIDs(t *testing.T) {
	s := tempStore(t)
	_, err := s.Append([]models.JobPosting{
		{Title: "Growth Hacker", Company: "StartupXYZ", URL: "https://x/1"},
		{Title: "Marketing Analyst", Company: "Acme", URL: "https://x/2"},
	})
	require.NoError(t, err)

	postings := s.ReadAll()
	require.Len(t, postings, 2)
	assert.NotEmpty(t, postings[0].ID)
	assert.NotEmpty(t, postings[1].ID)
	assert.NotEqual(t, postings[0].ID, postings[1].ID)
}

func TestAppendSkipsInvalidCandidates(t *testing.T) {
	s := tempStore(t)

	written, err := s.Append([]models.JobPosting{
		{Title: "", Company: "Acme"},
		{Title: "Growth Manager", Company: ""},
		{Title: "Growth Manager", Company: "Acme"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, written, "records without title and company are not storable")
}

func TestStatsSnapshot(t *testing.T) {
	s := tempStore(t)
	now := time.Now()
	_, err := s.Append([]models.JobPosting{
		{Title: "Growth Manager", Company: "Acme", Source: "A", ScrapedAt: now},
		{Title: "Marketing Lead", Company: "Acme", Source: "A", ScrapedAt: now.Add(-48 * time.Hour)},
		{Title: "Product Manager", Company: "Globex", Source: "B", ScrapedAt: now},
	})
	require.NoError(t, err)

	stats := s.Stats()

	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, 2, stats.RecentJobs)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, stats.Sources)
	assert.Equal(t, 2, stats.Companies["Acme"])
}

func TestWriteAllReplacesHistory(t *testing.T) {
	s := tempStore(t)
	_, err := s.Append([]models.JobPosting{{Title: "Old Job", Company: "Acme"}})
	require.NoError(t, err)

	require.NoError(t, s.WriteAll(SamplePostings()))

	postings := s.ReadAll()
	assert.Len(t, postings, len(SamplePostings()))
	assert.Equal(t, "Growth Marketing Manager", postings[0].Title)
}
