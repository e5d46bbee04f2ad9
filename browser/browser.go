package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

const (
	windowWidth  = 1920
	windowHeight = 1080

	waitPollInterval = 200 * time.Millisecond
)

// TimeoutError is returned by WaitFor when the condition does not hold within
// the configured timeout. The wait is not retried; the caller's test fails.
type TimeoutError struct {
	What    string
	Timeout time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.What)
}

// Browser is a running Chrome instance. Each operation runs in its own
// context bounded by the configured timeout, so a hung page cannot stall the
// whole run. Selectors are CSS selectors matched against the current page.
type Browser struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
	timeout     time.Duration
	logger      framework.Logger
}

// Launch starts a browser process according to the configuration. Only Chrome
// is supported; any other configured browser is an error. A failure to start
// the process (no usable Chrome binary, for instance) is an environment
// error reported to the caller, which should fail only the acquiring test.
func Launch(cfg config.Config, logger framework.Logger) (*Browser, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	if cfg.Browser != config.BrowserChrome {
		return nil, fmt.Errorf("cannot launch browser %q: only %q is supported",
			cfg.Browser, config.BrowserChrome)
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		// Chrome's default shared memory space is too small inside containers.
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(windowWidth, windowHeight),
		chromedp.CombinedOutput(newBrowserOutputWriter(logger)),
	}
	if cfg.Headless {
		opts = append(opts, chromedp.Headless)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Printf))

	b := &Browser{
		ctx:         ctx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
		timeout:     cfg.TimeoutDuration(),
		logger:      logger,
	}

	// The process only starts on the first Run, so do an empty one now: a broken
	// Chrome installation should fail the launch, not the first page action.
	if err := b.run(); err != nil {
		b.Close()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	b.logger.Printf("launched %s in %s mode", cfg.Browser,
		helpers.IfElse(cfg.Headless, "headless", "headed"))
	return b, nil
}

// Close terminates the browser process. It is safe to call after a failed
// launch.
func (b *Browser) Close() {
	_ = chromedp.Cancel(b.ctx)
	b.cancelCtx()
	b.cancelAlloc()
}

// Navigate loads the given URL and waits for the load to finish.
func (b *Browser) Navigate(url string) error {
	if err := b.run(chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("could not navigate to %s: %w", url, err)
	}
	return nil
}

// Title returns the current document title.
func (b *Browser) Title() (string, error) {
	var title string
	err := b.run(chromedp.Title(&title))
	return title, err
}

// Location returns the current page URL.
func (b *Browser) Location() (string, error) {
	var url string
	err := b.run(chromedp.Location(&url))
	return url, err
}

// Text returns the visible text of the first element matching the selector.
func (b *Browser) Text(selector string) (string, error) {
	var text string
	err := b.run(chromedp.Text(selector, &text, chromedp.ByQuery))
	return text, err
}

// SendKeys types text into the first element matching the selector.
func (b *Browser) SendKeys(selector, text string) error {
	return b.run(chromedp.SendKeys(selector, text, chromedp.ByQuery))
}

// Submit submits the form that the matching element belongs to.
func (b *Browser) Submit(selector string) error {
	return b.run(chromedp.Submit(selector, chromedp.ByQuery))
}

// Click clicks the first element matching the selector.
func (b *Browser) Click(selector string) error {
	return b.run(chromedp.Click(selector, chromedp.ByQuery))
}

// WaitVisible blocks until an element matching the selector is visible.
func (b *Browser) WaitVisible(selector string) error {
	return b.run(chromedp.WaitVisible(selector, chromedp.ByQuery))
}

// Nodes returns how many elements match the selector, which may be zero.
func (b *Browser) Nodes(selector string) (int, error) {
	var nodes []*cdp.Node
	err := b.run(chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)))
	return len(nodes), err
}

// Evaluate runs a JavaScript expression in the page and unmarshals its result
// into the given value.
func (b *Browser) Evaluate(js string, into interface{}) error {
	return b.run(chromedp.Evaluate(js, into))
}

// Screenshot captures the current viewport as a PNG.
func (b *Browser) Screenshot() ([]byte, error) {
	var buf []byte
	err := b.run(chromedp.CaptureScreenshot(&buf))
	return buf, err
}

// WaitFor polls the condition at a fixed interval until it returns true or
// the configured timeout elapses, in which case the returned error is a
// TimeoutError. An error from the condition itself ends the wait immediately.
func (b *Browser) WaitFor(what string, condition func() (bool, error)) error {
	deadline := time.Now().Add(b.timeout)
	for {
		ok, err := condition()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if time.Now().After(deadline) {
			return TimeoutError{What: what, Timeout: b.timeout}
		}
		time.Sleep(waitPollInterval)
	}
}

func (b *Browser) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}
