package browser

import (
	"strings"
	"testing"
	"time"

	"jobtrend/internal/config"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserAgentPool(t *testing.T) {
	require.NotEmpty(t, userAgents)
	for _, ua := range userAgents {
		assert.True(t, strings.HasPrefix(ua, "Mozilla/5.0"), "pool entries should look like real browsers: %s", ua)
	}
}

func TestRandomDelayBounds(t *testing.T) {
	start := time.Now()
	RandomDelay(50, 120)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestRandomDelayDegenerateWindow(t *testing.T) {
	start := time.Now()
	RandomDelay(30, 30)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

// setupPage launches a real browser page; integration-only.
func setupPage(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	t.Helper()
	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("could not launch browser: %v", err)
	}
	page, err := b.NewPage()
	require.NoError(t, err)
	return pw, b, page
}

func TestChallengeDetectedByTitle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	pw, b, page := setupPage(t)
	defer pw.Stop()
	defer b.Close()

	mockHTML := `<html><head><title>Just a moment...</title></head><body><h1>Checking your browser</h1></body></html>`
	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status: playwright.Int(200),
			Body:   mockHTML,
		})
	})

	_, err := page.Goto("https://blocked.example.com/")
	require.NoError(t, err)

	s := &Session{cfg: &config.Config{DelayMinMs: 1, DelayMaxMs: 2}}
	assert.True(t, s.ChallengeDetected(page))
}

func TestChallengeDetectedByCaptchaElement(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	pw, b, page := setupPage(t)
	defer pw.Stop()
	defer b.Close()

	mockHTML := `<html><head><title>Jobs</title></head><body><div class="captcha"></div></body></html>`
	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status: playwright.Int(200),
			Body:   mockHTML,
		})
	})

	_, err := page.Goto("https://captcha.example.com/")
	require.NoError(t, err)

	s := &Session{cfg: &config.Config{DelayMinMs: 1, DelayMaxMs: 2}}
	assert.True(t, s.ChallengeDetected(page))
}

func TestChallengeNotDetectedOnContent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	pw, b, page := setupPage(t)
	defer pw.Stop()
	defer b.Close()

	mockHTML := `<html><head><title>Search results</title></head><body><div class="job-card">Growth Manager</div></body></html>`
	page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status: playwright.Int(200),
			Body:   mockHTML,
		})
	})

	_, err := page.Goto("https://jobs.example.com/")
	require.NoError(t, err)

	s := &Session{cfg: &config.Config{DelayMinMs: 1, DelayMaxMs: 2}}
	assert.False(t, s.ChallengeDetected(page))
}
