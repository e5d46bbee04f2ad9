package browser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/config"
)

func TestLaunchRejectsUnsupportedBrowser(t *testing.T) {
	for _, kind := range []config.BrowserKind{config.BrowserFirefox, config.BrowserEdge, "safari"} {
		t.Run(string(kind), func(t *testing.T) {
			cfg := config.Default()
			cfg.Browser = kind

			_, err := Launch(cfg, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "only \"chrome\" is supported")
		})
	}
}

func TestWaitFor(t *testing.T) {
	t.Run("returns immediately when the condition already holds", func(t *testing.T) {
		b := &Browser{timeout: time.Second}
		calls := 0
		err := b.WaitFor("anything", func() (bool, error) {
			calls++
			return true, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the condition fails", func(t *testing.T) {
		b := &Browser{timeout: time.Second}
		boom := errors.New("element query failed")
		err := b.WaitFor("anything", func() (bool, error) {
			return false, boom
		})
		assert.Equal(t, boom, err)
	})

	t.Run("times out when the condition never holds", func(t *testing.T) {
		b := &Browser{timeout: 50 * time.Millisecond}
		calls := 0
		err := b.WaitFor("results to appear", func() (bool, error) {
			calls++
			return false, nil
		})
		var timeoutErr TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, "results to appear", timeoutErr.What)
		assert.GreaterOrEqual(t, calls, 2)
	})
}

func TestTimeoutErrorMessage(t *testing.T) {
	err := TimeoutError{What: "results to appear", Timeout: 5 * time.Second}
	assert.Equal(t, "timed out after 5s waiting for results to appear", err.Error())
}
