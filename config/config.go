// Package config loads the run configuration for the harness. Settings come from a
// YAML file in the workspace; any setting that is absent falls back to a documented
// default, so a missing file simply means an all-defaults run.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"gopkg.in/yaml.v3"

	"github.com/launchdarkly/webqa-harness/framework/opt"
)

// Default configuration values, used for any setting the config file does not provide.
const (
	DefaultBaseURL        = "https://jsonplaceholder.typicode.com"
	DefaultTimeoutSeconds = 30
	DefaultBrowser        = BrowserChrome
	DefaultHeadless       = false
)

// BrowserKind identifies a browser that can be named in the configuration. Only
// Chrome can actually be launched by this harness; the other values are accepted in
// configuration but rejected at launch time.
type BrowserKind string

const (
	BrowserChrome  BrowserKind = "chrome"
	BrowserFirefox BrowserKind = "firefox"
	BrowserEdge    BrowserKind = "edge"
)

// Config is the run configuration. It is loaded once at session start and held by
// value afterwards; nothing mutates it during a run.
type Config struct {
	// BaseURL is the root URL of the REST API under test.
	BaseURL string

	// Timeout is the general request/wait timeout in seconds.
	Timeout int

	// Browser selects which browser the UI tests should launch.
	Browser BrowserKind

	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// Extra holds any unrecognized settings from the config file, untouched. Suites
	// can read their own settings from here without the loader knowing about them.
	Extra map[string]ldvalue.Value
}

// fileSettings is the YAML shape of the config file. Pointer fields distinguish
// "absent" from "present with a zero value" so that defaults only fill real gaps.
type fileSettings struct {
	BaseURL  *string                `yaml:"base_url"`
	Timeout  *int                   `yaml:"timeout"`
	Browser  *string                `yaml:"browser"`
	Headless *bool                  `yaml:"headless"`
	Extra    map[string]interface{} `yaml:",inline"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeoutSeconds,
		Browser:  DefaultBrowser,
		Headless: DefaultHeadless,
	}
}

// Load reads the configuration file at path and overlays it onto the defaults,
// key by key: settings present in the file win, missing settings keep their
// defaults. A nonexistent file yields the defaults. A file that cannot be read or
// parsed is a configuration error, which is fatal to the session.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
	}

	var file fileSettings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("malformed config file %s: %w", path, err)
	}

	cfg.BaseURL = opt.FromPtr(file.BaseURL).OrElse(cfg.BaseURL)
	cfg.Timeout = opt.FromPtr(file.Timeout).OrElse(cfg.Timeout)
	if browser := opt.FromPtr(file.Browser); browser.IsDefined() {
		cfg.Browser = BrowserKind(browser.Value())
	}
	cfg.Headless = opt.FromPtr(file.Headless).OrElse(cfg.Headless)

	if len(file.Extra) > 0 {
		cfg.Extra = make(map[string]ldvalue.Value, len(file.Extra))
		for key, value := range file.Extra {
			cfg.Extra[key] = ldvalue.CopyArbitraryValue(value)
		}
	}

	return cfg, nil
}

// TimeoutDuration returns the configured timeout as a time.Duration.
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Describe returns a one-line summary of the effective configuration, suitable for
// the session log.
func (c Config) Describe() string {
	return fmt.Sprintf("base_url=%s timeout=%ds browser=%s headless=%t",
		c.BaseURL, c.Timeout, c.Browser, c.Headless)
}
