package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

const screenshotDir = "logs/screenshots"

// CaptureScreenshot writes a timestamped full-page capture of the current
// page under logs/screenshots and returns its path, so blocked or otherwise
// surprising pages can be inspected after the run.
func CaptureScreenshot(page playwright.Page, label string) (string, error) {
	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(screenshotDir,
		fmt.Sprintf("%s_%s.png", label, time.Now().Format("2006-01-02_15-04-05")))

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
