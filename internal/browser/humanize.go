package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses for a uniformly random duration between min and max
// milliseconds. A degenerate window sleeps for min.
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	time.Sleep(time.Duration(rand.Intn(max-min)+min) * time.Millisecond)
}

// microPause is a short fraction of the session's configured pacing window,
// used between in-page gestures.
func (s *Session) microPause() {
	RandomDelay(s.cfg.DelayMinMs/10, s.cfg.DelayMaxMs/10)
}

// MouseJiggle moves the pointer to a random on-screen spot so the page sees
// activity between scripted actions.
func (s *Session) MouseJiggle(page playwright.Page) {
	x := float64(rand.Intn(800) + 100)
	y := float64(rand.Intn(600) + 100)

	page.Mouse().Move(x, y)
	s.microPause()
}

// SmoothScroll walks the viewport down with a small upward correction, then
// jumps to the bottom to trigger lazy-loaded results.
func (s *Session) SmoothScroll(page playwright.Page) {
	page.Mouse().Wheel(0, 500)
	s.microPause()

	page.Mouse().Wheel(0, -200)
	s.microPause()

	page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
}
