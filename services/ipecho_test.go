package services

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

func TestIPEchoTextIP(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(200, nil, []byte("203.0.113.9\n"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		echo := NewIPEcho(clientForServer(t, server))

		ip, err := echo.TextIP()
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.9", ip)
		assert.True(t, ValidIPAddress(ip))
	})
}

func TestIPEchoJSONIP(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, jsonHeaders(), []byte(`{"ip": "203.0.113.9"}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		echo := NewIPEcho(clientForServer(t, server))

		ip, err := echo.JSONIP()
		require.NoError(t, err)
		assert.Equal(t, "203.0.113.9", ip)

		info := helpers.RequireValue(t, requests, time.Second)
		assert.Equal(t, "format=json", info.Request.URL.RawQuery)
	})
}

func TestIPEchoJSONIPRejectsMissingAddress(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(200, jsonHeaders(), []byte(`{"other": "stuff"}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		echo := NewIPEcho(clientForServer(t, server))

		_, err := echo.JSONIP()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "did not contain an address")
	})
}

func TestIPEchoReportsErrorStatus(t *testing.T) {
	handler := httphelpers.HandlerWithStatus(503)
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		echo := NewIPEcho(clientForServer(t, server))

		_, err := echo.TextIP()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected response status 503")
	})
}

func TestValidIPAddress(t *testing.T) {
	for _, valid := range []string{"203.0.113.9", "10.0.0.1", "2001:db8::1", "::1"} {
		assert.True(t, ValidIPAddress(valid), "should accept %q", valid)
	}
	for _, invalid := range []string{"", "not an ip", "999.1.1.1", "203.0.113", "203.0.113.9.9"} {
		assert.False(t, ValidIPAddress(invalid), "should reject %q", invalid)
	}
}
