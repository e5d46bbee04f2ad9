package webtests

import (
	"os"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/browser"
	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

// The UI suite drives the public demo form unless the configuration points
// "webform_url" somewhere else.
const defaultWebFormURL = "https://www.selenium.dev/selenium/web-form.html"

func webFormURL(cfg config.Config) string {
	if v := cfg.Extra["webform_url"]; v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return defaultWebFormURL
}

func openWebForm(t *qatest.T) *browser.Page {
	p := testPage(t)
	require.NoError(t, p.Open(webFormURL(requireContext(t).harness.Config())))
	return p
}

func doWebFormTests(t *qatest.T) {
	t.Run("page title", func(t *qatest.T) {
		p := openWebForm(t)
		title, err := p.Title()
		require.NoError(t, err)
		assert.Equal(t, "Web form", title)
	})

	t.Run("fill and submit", func(t *qatest.T) {
		p := openWebForm(t)
		f := sharedFaker(t)

		require.NoError(t, p.SendKeys(`input[name="my-text"]`, f.Username()))
		require.NoError(t, p.SendKeys(`input[name="my-password"]`, f.Password(true, true, true, false, false, 10)))
		require.NoError(t, p.SendKeys(`textarea[name="my-textarea"]`, f.Sentence(6)))
		require.NoError(t, p.Click(`button[type="submit"]`))

		// The confirmation page renders the banner asynchronously.
		require.NoError(t, p.WaitVisible("#message"))
		message, err := p.Text("#message")
		require.NoError(t, err)
		assert.Equal(t, "Received!", message)

		location, err := p.Location()
		require.NoError(t, err)
		assert.Contains(t, location, "submitted-form")
	})

	t.Run("select an option", func(t *qatest.T) {
		p := openWebForm(t)
		require.NoError(t, p.SendKeys(`select[name="my-select"]`, "Two"))

		var value string
		require.NoError(t, p.Evaluate(`document.querySelector('select[name="my-select"]').value`, &value))
		assert.Equal(t, "2", value)
	})

	t.Run("explicit wait for rendered content", func(t *qatest.T) {
		p := openWebForm(t)
		err := p.WaitFor("the document to finish loading", func() (bool, error) {
			var state string
			if err := p.Evaluate("document.readyState", &state); err != nil {
				return false, err
			}
			return state == "complete", nil
		})
		require.NoError(t, err)

		count, err := p.Nodes("form input")
		require.NoError(t, err)
		assert.Greater(t, count, 3, "the form should render its input elements")
	})

	t.Run("screenshot artifact", func(t *qatest.T) {
		p := openWebForm(t)
		path, err := p.Screenshot("web_form")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, requireContext(t).harness.Workspace().ReportsDir),
			"screenshot %q should land in the reports directory", path)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		t.Debug("screenshot saved to %s", path)
	})

	t.Run("failure leaves a screenshot behind", func(t *qatest.T) {
		p := openWebForm(t)
		t.Defer(func() {
			if t.Failed() {
				if path, err := p.Screenshot("webforms_failure"); err == nil {
					t.Debug("failure screenshot saved to %s", path)
				}
			}
		})

		title, err := p.Title()
		require.NoError(t, err)
		assert.Equal(t, "Web form", title)
	})
}
