package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"jobtrend/internal/models"
	"jobtrend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(filepath.Join(t.TempDir(), "jobs.csv"))
	_, err := st.Append([]models.JobPosting{
		{Title: "Growth Marketing Manager", Company: "Acme", Location: "Remote", Source: "A", URL: "https://x/1", ScrapedAt: time.Now()},
		{Title: "SEO Specialist", Company: "Globex", Location: "Remote", Source: "A", URL: "https://x/2", ScrapedAt: time.Now()},
		{Title: "Product Manager", Company: "Initech", Location: "NYC", Source: "B", URL: "https://x/3", ScrapedAt: time.Now()},
	})
	require.NoError(t, err)

	return NewRouter(st, nil), st
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(t, r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestJobsEndpointMostRecentFirst(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(t, r, "/api/jobs?limit=2")
	require.Equal(t, http.StatusOK, w.Code)

	var jobs []models.JobPosting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, "Product Manager", jobs[0].Title, "last appended comes first")
}

func TestStatsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(t, r, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, stats.Sources)
}

func TestTrendsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(t, r, "/api/trends")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "daily_counts")
}

func TestSkillsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(t, r, "/api/skills")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		TopSkills []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"top_skills"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.TopSkills)
}

func TestInsightsEndpointDegradesWithoutProvider(t *testing.T) {
	r, _ := setupRouter(t)
	w := get(t, r, "/api/insights")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AI insights are not available")
}
