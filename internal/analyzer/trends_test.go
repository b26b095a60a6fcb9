package analyzer

import (
	"testing"
	"time"

	"jobtrend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postingsWithDailyCounts builds one bucket per entry: counts[i] postings on
// day base+i.
func postingsWithDailyCounts(base time.Time, counts []int) []models.JobPosting {
	var postings []models.JobPosting
	for day, count := range counts {
		for i := 0; i < count; i++ {
			postings = append(postings, models.JobPosting{
				Title:     "Growth Manager",
				Company:   "Acme",
				ScrapedAt: base.AddDate(0, 0, day),
			})
		}
	}
	return postings
}

func TestDailyCountsSortedAscending(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	postings := postingsWithDailyCounts(base, []int{2, 3, 1})
	// acquisition order does not matter; shuffle in a later date first
	postings = append([]models.JobPosting{{Title: "X", Company: "Y", ScrapedAt: base.AddDate(0, 0, 5)}}, postings...)

	counts := DailyCounts(postings)

	require.Len(t, counts, 4)
	assert.Equal(t, DailyCount{Date: "2026-08-01", Count: 2}, counts[0])
	assert.Equal(t, DailyCount{Date: "2026-08-02", Count: 3}, counts[1])
	assert.Equal(t, DailyCount{Date: "2026-08-03", Count: 1}, counts[2])
	assert.Equal(t, DailyCount{Date: "2026-08-06", Count: 1}, counts[3], "dates without postings are absent, not zero")
}

func TestAnalyzeTrendsPerfectLine(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	forecast := AnalyzeTrends(postingsWithDailyCounts(base, []int{1, 2, 3, 4, 5}))

	assert.InDelta(t, 1.0, forecast.GrowthRate, 1e-9, "slope of a perfect 1-per-day line")
	assert.InDelta(t, 1.0, forecast.Confidence, 1e-9, "R² of a perfect fit")

	// fitted line y = x + 1 evaluated 7 past the last index (4+7=11) gives 12;
	// versus the trailing mean of 3 that is +300%.
	assert.InDelta(t, 300.0, forecast.PredictedChangePercent, 1e-9)
}

func TestAnalyzeTrendsFloor(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	forecast := AnalyzeTrends(postingsWithDailyCounts(base, []int{10, 1}))

	assert.Equal(t, -100.0, forecast.PredictedChangePercent, "projection can never report below -100%")
	assert.Less(t, forecast.GrowthRate, 0.0)
}

func TestAnalyzeTrendsUnderflow(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	forecast := AnalyzeTrends(postingsWithDailyCounts(base, []int{3}))
	assert.Len(t, forecast.DailyCounts, 1)
	assert.Zero(t, forecast.GrowthRate)
	assert.Zero(t, forecast.PredictedChangePercent)
	assert.Zero(t, forecast.Confidence)

	empty := AnalyzeTrends(nil)
	assert.Empty(t, empty.DailyCounts)
	assert.Zero(t, empty.GrowthRate)
}

func TestLinearFit(t *testing.T) {
	slope, intercept := linearFit([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 1.0, slope, 1e-9)
	assert.InDelta(t, 1.0, intercept, 1e-9)

	slope, intercept = linearFit([]float64{4, 4, 4})
	assert.InDelta(t, 0.0, slope, 1e-9)
	assert.InDelta(t, 4.0, intercept, 1e-9)
}

func TestRSquaredConstantSeries(t *testing.T) {
	// a constant series has zero total variance; treat the flat fit as exact
	assert.Equal(t, 1.0, rSquared([]float64{4, 4, 4}, 0, 4))
}
