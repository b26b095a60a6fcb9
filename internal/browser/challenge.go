package browser

import (
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// challengeTitles are page-title fragments served by anti-bot interstitials.
var challengeTitles = []string{
	"Just a moment",
	"Attention Required",
	"Cloudflare",
	"Access Denied",
	"Verify you are a human",
}

// challengeSelectors probe for CAPTCHA widgets embedded in otherwise normal pages.
var challengeSelectors = []string{
	`[data-testid="captcha"]`,
	".captcha",
	"#captcha",
	`[src*="captcha"]`,
	`iframe[src*="recaptcha"]`,
}

// ChallengeDetected reports whether the current page is a challenge
// interstitial instead of content. On detection it performs one randomized
// pause so the caller backs off before moving on; the same URL is not
// retried within a run.
func (s *Session) ChallengeDetected(page playwright.Page) bool {
	title, _ := page.Title()
	for _, marker := range challengeTitles {
		if strings.Contains(title, marker) {
			log.Printf("🛑 Challenge page detected (title: %q)", title)
			s.recordChallenge(page, "challenge-title")
			return true
		}
	}

	for _, selector := range challengeSelectors {
		count, err := page.Locator(selector).Count()
		if err != nil {
			continue
		}
		if count > 0 {
			log.Printf("🛑 CAPTCHA element detected (%s)", selector)
			s.recordChallenge(page, "challenge-captcha")
			return true
		}
	}
	return false
}

// recordChallenge captures the blocked page for later inspection and backs
// off once before the caller abandons the unit.
func (s *Session) recordChallenge(page playwright.Page, label string) {
	if path, err := CaptureScreenshot(page, label); err != nil {
		log.Printf("⚠️ Could not capture challenge screenshot: %v", err)
	} else {
		log.Printf("📸 Screenshot saved: %s", path)
	}
	s.Pace()
}
