package services

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// DefaultIPEchoURL is the public IP echo service used when the configuration
// does not override it with an "ipecho_url" setting.
const DefaultIPEchoURL = "https://api.ipify.org"

// IPEcho is a client for the IP echo service, which reports the caller's
// public IP address either as a plain text body or as a small JSON object.
type IPEcho struct {
	client *RESTClient
}

func NewIPEcho(client *RESTClient) *IPEcho {
	return &IPEcho{client: client}
}

// Client returns the underlying REST client, for tests that need to inspect raw
// responses.
func (c *IPEcho) Client() *RESTClient { return c.client }

// TextIP requests the address in the service's plain text format.
func (c *IPEcho) TextIP() (string, error) {
	resp, err := c.client.Get("/", nil)
	if err != nil {
		return "", err
	}
	if err := expectOKStatus(resp, "requesting the caller address"); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body)), nil
}

// JSONIP requests the address in the service's JSON format, {"ip": "..."}.
func (c *IPEcho) JSONIP() (string, error) {
	resp, err := c.client.Get("/", url.Values{"format": {"json"}})
	if err != nil {
		return "", err
	}
	if err := expectOKStatus(resp, "requesting the caller address"); err != nil {
		return "", err
	}
	var body struct {
		IP string `json:"ip"`
	}
	if err := resp.JSON(&body); err != nil {
		return "", err
	}
	if body.IP == "" {
		return "", fmt.Errorf("service response %q did not contain an address", string(resp.Body))
	}
	return body.IP, nil
}

// ValidIPAddress reports whether s parses as an IPv4 or IPv6 address.
func ValidIPAddress(s string) bool {
	return net.ParseIP(s) != nil
}
