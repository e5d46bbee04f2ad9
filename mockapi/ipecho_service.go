package mockapi

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/launchdarkly/webqa-harness/framework"
)

// IPEchoService is an in-process stand-in for the public IP echo service. It
// reports the caller's address as seen on the connection, as plain text by
// default or as JSON when the request asks for ?format=json.
type IPEchoService struct {
	debugLogger framework.Logger
}

func NewIPEchoService(debugLogger framework.Logger) *IPEchoService {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	return &IPEchoService{debugLogger: debugLogger}
}

func (s *IPEchoService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("ip echo service: %s %s", r.Method, r.URL)

	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}

	if r.URL.Query().Get("format") == "json" {
		data, _ := json.Marshal(map[string]string{"ip": ip})
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(data)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(ip))
}
