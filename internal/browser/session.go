package browser

import (
	"fmt"
	"log"
	"math/rand"

	"jobtrend/internal/config"

	"github.com/playwright-community/playwright-go"
)

// userAgents is a fixed pool of realistic desktop user agents. One is picked
// at random for every page so repeated visits do not share a fingerprint.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
}

var launchArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--disable-accelerated-2d-canvas",
	"--no-first-run",
	"--no-zygote",
	"--disable-gpu",
	"--disable-features=VizDisplayCompositor",
	"--window-size=1920,1080",
}

// stealthScript suppresses the navigator properties headless detection keys on.
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
if (window.navigator.permissions) {
	const originalQuery = window.navigator.permissions.query.bind(window.navigator.permissions);
	window.navigator.permissions.query = (parameters) => (
		parameters.name === 'notifications'
			? Promise.resolve({ state: Notification.permission })
			: originalQuery(parameters)
	);
}
`

// Session owns one headless browser process for the duration of a scraping
// run and hands out fingerprint-randomized pages.
type Session struct {
	cfg     *config.Config
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewSession(cfg *config.Config) (*Session, error) {
	log.Println("🚀 Initializing stealth browser...")

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args:     launchArgs,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	return &Session{cfg: cfg, pw: pw, browser: b}, nil
}

// NewStealthPage creates an isolated browser context with a random user agent,
// a common viewport, the stealth init script, and subresource blocking for
// images and stylesheets. Close the page with ClosePage after the unit of
// work, success or not.
func (s *Session) NewStealthPage() (playwright.Page, error) {
	ua := userAgents[rand.Intn(len(userAgents))]

	ctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(ua),
		Viewport:  &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	if err := ctx.AddInitScript(playwright.Script{Content: playwright.String(stealthScript)}); err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not inject stealth script: %w", err)
	}

	//block heavy subresources to cut load time and network fingerprint
	if err := ctx.Route("**/*", func(route playwright.Route) {
		switch route.Request().ResourceType() {
		case "image", "stylesheet", "font":
			route.Abort()
		default:
			route.Continue()
		}
	}); err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not set up request blocking: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not open page: %w", err)
	}
	return page, nil
}

// ClosePage tears down the page together with its isolated context.
func (s *Session) ClosePage(page playwright.Page) {
	if page == nil {
		return
	}
	page.Context().Close()
}

// Pace sleeps for a uniformly random duration within the configured window.
func (s *Session) Pace() {
	RandomDelay(s.cfg.DelayMinMs, s.cfg.DelayMaxMs)
}

func (s *Session) Close() {
	if s.browser != nil {
		s.browser.Close()
	}
	if s.pw != nil {
		s.pw.Stop()
	}
}
