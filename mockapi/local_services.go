package mockapi

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/launchdarkly/webqa-harness/framework"
)

// LocalServices is the pair of mock services bound to loopback listeners,
// used when a run should not depend on the network. Each service gets its own
// ephemeral port; the URLs are what the run configuration should point at.
type LocalServices struct {
	placeholderServer *http.Server
	ipEchoServer      *http.Server
	placeholderURL    string
	ipEchoURL         string
}

// StartLocalServices binds both mock services on 127.0.0.1 and starts serving.
func StartLocalServices(debugLogger framework.Logger) (*LocalServices, error) {
	placeholderListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("could not bind local placeholder service: %w", err)
	}
	ipEchoListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		_ = placeholderListener.Close()
		return nil, fmt.Errorf("could not bind local ip echo service: %w", err)
	}

	s := &LocalServices{
		placeholderServer: &http.Server{
			Handler:           NewPlaceholderService(debugLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		ipEchoServer: &http.Server{
			Handler:           NewIPEchoService(debugLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		placeholderURL: "http://" + placeholderListener.Addr().String(),
		ipEchoURL:      "http://" + ipEchoListener.Addr().String(),
	}
	go func() { _ = s.placeholderServer.Serve(placeholderListener) }()
	go func() { _ = s.ipEchoServer.Serve(ipEchoListener) }()
	return s, nil
}

// PlaceholderURL returns the base URL of the local placeholder service.
func (s *LocalServices) PlaceholderURL() string { return s.placeholderURL }

// IPEchoURL returns the base URL of the local IP echo service.
func (s *LocalServices) IPEchoURL() string { return s.ipEchoURL }

// Close stops both services immediately.
func (s *LocalServices) Close() {
	_ = s.placeholderServer.Close()
	_ = s.ipEchoServer.Close()
}
