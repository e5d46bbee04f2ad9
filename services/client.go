package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

const maxLoggedBodyLength = 200

// RESTClient wraps a single http.Client configured from the harness
// configuration: base URL, request timeout, and JSON default headers. Every
// request and its response status are logged through the provided logger, so
// a test's debug output shows the traffic it caused.
//
// A RESTClient is safe for concurrent use once constructed; the option
// methods are only for use at construction time.
type RESTClient struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	logger     framework.Logger
}

// Response is the recorded outcome of a request: status code, headers, and
// the fully read body. The body has always been read and the connection
// released by the time a Response is returned.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON decodes the response body into target.
func (r Response) JSON(target interface{}) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("malformed JSON response body: %w", err)
	}
	return nil
}

type clientOptionFunc func(*RESTClient) error

func (f clientOptionFunc) Configure(c *RESTClient) error { return f(c) }

// WithBaseURL replaces the base URL taken from the configuration. Used for
// clients that talk to a service other than the primary one.
func WithBaseURL(baseURL string) helpers.ConfigOption[RESTClient] {
	return clientOptionFunc(func(c *RESTClient) error {
		if baseURL == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	})
}

// WithHeader adds a default header sent on every request.
func WithHeader(name, value string) helpers.ConfigOption[RESTClient] {
	return clientOptionFunc(func(c *RESTClient) error {
		c.headers.Set(name, value)
		return nil
	})
}

// WithHTTPClient replaces the underlying http.Client. The timeout from the
// configuration is not applied to a replacement client.
func WithHTTPClient(httpClient *http.Client) helpers.ConfigOption[RESTClient] {
	return clientOptionFunc(func(c *RESTClient) error {
		c.httpClient = httpClient
		return nil
	})
}

// NewRESTClient creates a client for the service at the configured base URL.
func NewRESTClient(
	cfg config.Config,
	logger framework.Logger,
	options ...helpers.ConfigOption[RESTClient],
) (*RESTClient, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c := &RESTClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		headers:    make(http.Header),
		httpClient: &http.Client{Timeout: cfg.TimeoutDuration()},
		logger:     logger,
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")
	if err := helpers.ApplyOptions(c, options...); err != nil {
		return nil, err
	}
	return c, nil
}

// BaseURL returns the URL that request paths are appended to.
func (c *RESTClient) BaseURL() string { return c.baseURL }

// Get performs a GET request. Query parameters may be nil.
func (c *RESTClient) Get(path string, params url.Values) (Response, error) {
	return c.do(http.MethodGet, path, params, nil)
}

// Post performs a POST request with a JSON-marshalled body.
func (c *RESTClient) Post(path string, body interface{}) (Response, error) {
	return c.do(http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON-marshalled body.
func (c *RESTClient) Put(path string, body interface{}) (Response, error) {
	return c.do(http.MethodPut, path, nil, body)
}

// Patch performs a PATCH request with a JSON-marshalled body.
func (c *RESTClient) Patch(path string, body interface{}) (Response, error) {
	return c.do(http.MethodPatch, path, nil, body)
}

// Delete performs a DELETE request.
func (c *RESTClient) Delete(path string) (Response, error) {
	return c.do(http.MethodDelete, path, nil, nil)
}

// GetJSON performs a GET request and decodes a successful JSON response into
// target. Any non-2xx status is an error.
func (c *RESTClient) GetJSON(path string, params url.Values, target interface{}) error {
	resp, err := c.Get(path, params)
	if err != nil {
		return err
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return fmt.Errorf("unexpected response status %d from %s", resp.Status, path)
	}
	return resp.JSON(target)
}

// Close releases any idle connections held by the client. The client must not
// be used after Close.
func (c *RESTClient) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *RESTClient) do(method, path string, params url.Values, body interface{}) (Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("could not marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return Response{}, err
	}
	req.Header = c.headers.Clone()
	if len(params) != 0 {
		req.URL.RawQuery = params.Encode()
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("%s %s failed: %s", method, req.URL, err)
		return Response{}, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("could not read response body: %w", err)
	}
	c.logger.Printf("%s %s -> %d %s", method, req.URL, resp.StatusCode, truncateForLog(respBody))
	return Response{Status: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

func truncateForLog(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if len(s) > maxLoggedBodyLength {
		s = s[:maxLoggedBodyLength] + "..."
	}
	return s
}
