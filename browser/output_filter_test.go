package browser

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/framework"
)

func TestFilteredWriter(t *testing.T) {
	var buf bytes.Buffer
	w := newFilteredWriter(&buf, []*regexp.Regexp{regexp.MustCompile("skip me")})

	n, err := w.Write([]byte("this line should skip me entirely\n"))
	require.NoError(t, err)
	assert.Equal(t, 34, n)

	n, err = w.Write([]byte("keep this\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	assert.Equal(t, "keep this\n", buf.String())
}

func TestLoggerWriter(t *testing.T) {
	logger := &framework.CapturingLogger{}
	w := loggerWriter{logger}

	_, err := w.Write([]byte("something happened\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("\n"))
	require.NoError(t, err)

	output := logger.Output()
	require.Len(t, output, 1)
	assert.Equal(t, "browser: something happened", output[0].Message)
}

func TestBrowserOutputWriterDropsKnownNoise(t *testing.T) {
	logger := &framework.CapturingLogger{}
	w := newBrowserOutputWriter(logger)

	for _, noise := range []string{
		"DevTools listening on ws://127.0.0.1:9222/devtools/browser/abc\n",
		"[0520/143015.123:ERROR:gpu_init.cc(523)] Passthrough is not supported\n",
		"Fontconfig error: Cannot load default config file\n",
	} {
		_, err := w.Write([]byte(noise))
		require.NoError(t, err)
	}
	_, err := w.Write([]byte("Received signal 11 SEGV_MAPERR\n"))
	require.NoError(t, err)

	output := logger.Output()
	require.Len(t, output, 1)
	assert.Equal(t, "browser: Received signal 11 SEGV_MAPERR", output[0].Message)
}
