package config

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

type configOptionFunc func(*Config) error

func (f configOptionFunc) Configure(c *Config) error { return f(c) }

// WithBaseURL overrides the base URL after the config file is loaded. The harness
// uses this to point a run at in-process mock services.
func WithBaseURL(url string) helpers.ConfigOption[Config] {
	return configOptionFunc(func(c *Config) error {
		c.BaseURL = url
		return nil
	})
}

// WithHeadless overrides the headless setting from the command line.
func WithHeadless(headless bool) helpers.ConfigOption[Config] {
	return configOptionFunc(func(c *Config) error {
		c.Headless = headless
		return nil
	})
}

// WithExtra sets one extra property, overriding any value loaded from the config
// file under the same key.
func WithExtra(key string, value ldvalue.Value) helpers.ConfigOption[Config] {
	return configOptionFunc(func(c *Config) error {
		if c.Extra == nil {
			c.Extra = make(map[string]ldvalue.Value)
		}
		c.Extra[key] = value
		return nil
	})
}
