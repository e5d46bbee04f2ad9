package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const screenshotTimestampFormat = "20060102_150405"

// Page combines a Browser with the workspace reports directory, so UI tests
// can capture artifacts next to the run logs.
type Page struct {
	*Browser
	reportsDir string
}

func NewPage(browser *Browser, reportsDir string) *Page {
	return &Page{Browser: browser, reportsDir: reportsDir}
}

// Open navigates to the URL and waits for the document body to be visible.
func (p *Page) Open(url string) error {
	if err := p.Navigate(url); err != nil {
		return err
	}
	return p.WaitVisible("body")
}

// Screenshot captures the current viewport as a PNG file in the reports
// directory, named after the label and the current time, and returns the
// path of the saved file.
func (p *Page) Screenshot(label string) (string, error) {
	data, err := p.Browser.Screenshot()
	if err != nil {
		return "", fmt.Errorf("could not capture screenshot: %w", err)
	}
	path := filepath.Join(p.reportsDir, screenshotFileName(label, time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec
		return "", fmt.Errorf("could not save screenshot: %w", err)
	}
	return path, nil
}

func screenshotFileName(label string, now time.Time) string {
	return fmt.Sprintf("%s_%s.png", label, now.Format(screenshotTimestampFormat))
}
