// Package analyzer computes market-trend signals over the accumulated
// posting history. Every function is a pure function of the snapshot passed
// in; the analyzer owns no state across calls.
package analyzer

import (
	"sort"
	"time"

	"jobtrend/internal/models"
)

// DailyCount is one calendar date's aggregated posting count. Dates with no
// postings are absent, not zero.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TrendForecast carries the regression-based growth signal.
type TrendForecast struct {
	DailyCounts            []DailyCount `json:"daily_counts"`
	GrowthRate             float64      `json:"growth_rate"`
	PredictedChangePercent float64      `json:"prediction"`
	Confidence             float64      `json:"r_squared"`
}

// DailyCounts groups postings by the UTC calendar date of acquisition and
// returns the buckets sorted ascending by date.
func DailyCounts(postings []models.JobPosting) []DailyCount {
	groups := make(map[string]int)
	for _, p := range postings {
		if p.ScrapedAt.IsZero() {
			continue
		}
		groups[p.ScrapedAt.UTC().Format("2006-01-02")]++
	}

	counts := make([]DailyCount, 0, len(groups))
	for date, count := range groups {
		counts = append(counts, DailyCount{Date: date, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
	return counts
}

// AnalyzeTrends fits an ordinary least-squares line to the bucketed count
// series and projects it 7 positions past the last bucket. The projection is
// expressed as percentage change against the trailing 7-bucket average
// (fewer when history is shorter), floored at -100%. Confidence is the R² of
// the fit. Fewer than 2 buckets yields a zero-valued forecast, not an error.
func AnalyzeTrends(postings []models.JobPosting) TrendForecast {
	counts := DailyCounts(postings)
	forecast := TrendForecast{DailyCounts: counts}
	if len(counts) < 2 {
		return forecast
	}

	ys := make([]float64, len(counts))
	for i, c := range counts {
		ys[i] = float64(c.Count)
	}

	slope, intercept := linearFit(ys)
	forecast.GrowthRate = slope
	forecast.Confidence = rSquared(ys, slope, intercept)

	// Project 7 positions past the last bucket index.
	horizon := float64(len(ys)-1) + 7
	raw := slope*horizon + intercept

	window := 7
	if len(ys) < window {
		window = len(ys)
	}
	var sum float64
	for _, y := range ys[len(ys)-window:] {
		sum += y
	}
	trailing := sum / float64(window)

	if trailing > 0 {
		forecast.PredictedChangePercent = (raw - trailing) / trailing * 100
	}
	if forecast.PredictedChangePercent < -100 {
		forecast.PredictedChangePercent = -100
	}
	return forecast
}

// linearFit returns the OLS slope and intercept for ys indexed 0..n-1.
func linearFit(ys []float64) (slope, intercept float64) {
	n := float64(len(ys))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// rSquared is the coefficient of determination of the fitted line over ys.
func rSquared(ys []float64, slope, intercept float64) float64 {
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot float64
	for i, y := range ys {
		fit := slope*float64(i) + intercept
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

// recentWindow splits postings into the last-7-days window and the 8-14 days
// prior window, both relative to now.
func recentWindow(postings []models.JobPosting, now time.Time) (recent, older []models.JobPosting) {
	weekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)
	for _, p := range postings {
		switch {
		case p.ScrapedAt.After(weekAgo):
			recent = append(recent, p)
		case p.ScrapedAt.After(twoWeeksAgo):
			older = append(older, p)
		}
	}
	return recent, older
}
