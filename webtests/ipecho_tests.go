package webtests

import (
	"strconv"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/framework/qatest"
	"github.com/launchdarkly/webqa-harness/services"
)

// The echo service is an outside collaborator that some networks cannot reach, so
// every test here is non-critical: a failure is reported but does not fail the run.
func doIPEchoTests(t *qatest.T) {
	run := func(name string, action func(*qatest.T)) {
		t.Run(name, func(t *qatest.T) {
			t.NonCritical("the IP echo service is external and may be unreachable from this network")
			action(t)
		})
	}

	run("text format", func(t *qatest.T) {
		ip, err := ipEchoClient(t).TextIP()
		require.NoError(t, err)
		require.True(t, services.ValidIPAddress(ip), "service returned %q, which is not an IP address", ip)
	})

	run("json format", func(t *qatest.T) {
		ip, err := ipEchoClient(t).JSONIP()
		require.NoError(t, err)
		require.NotEmpty(t, ip)
		require.True(t, services.ValidIPAddress(ip), "service returned %q, which is not an IP address", ip)
	})

	run("both formats agree", func(t *qatest.T) {
		echo := ipEchoClient(t)
		textIP, err := echo.TextIP()
		require.NoError(t, err)
		jsonIP, err := echo.JSONIP()
		require.NoError(t, err)
		assert.Equal(t, textIP, jsonIP)
	})

	run("response declares a content type", func(t *qatest.T) {
		resp, err := ipEchoClient(t).Client().Get("/", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get("Content-Type"))
	})

	run("custom user agent is accepted", func(t *qatest.T) {
		cfg := requireContext(t).harness.Config()
		client, err := services.NewRESTClient(cfg, t.DebugLogger(),
			services.WithBaseURL(ipEchoBaseURL(cfg)),
			services.WithHeader("User-Agent", "webqa-harness"),
		)
		require.NoError(t, err)
		t.Defer(client.Close)

		ip, err := services.NewIPEcho(client).TextIP()
		require.NoError(t, err)
		assert.True(t, services.ValidIPAddress(ip), "service returned %q, which is not an IP address", ip)
	})

	run("repeated requests return one address", func(t *qatest.T) {
		echo := ipEchoClient(t)
		first, err := echo.TextIP()
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			next, err := echo.TextIP()
			require.NoError(t, err)
			assert.Equal(t, first, next)
		}
	})

	run("IPv4 octets are in range", func(t *qatest.T) {
		ip, err := ipEchoClient(t).TextIP()
		require.NoError(t, err)
		if strings.Contains(ip, ":") {
			t.SkipWithReason("service reported an IPv6 address")
		}
		octets := strings.Split(ip, ".")
		require.Len(t, octets, 4)
		for _, octet := range octets {
			n, err := strconv.Atoi(octet)
			require.NoError(t, err, "octet %q is not numeric", octet)
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, 255)
		}
	})
}
