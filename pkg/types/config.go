// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by every remote call.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "idloc/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the id.loc.gov search endpoint.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// MaxResults is the default result limit (default 20, 0 means all).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// PageDelay is the pause between consecutive page fetches within
	// one search, as politeness toward the remote service (default 1s).
	// It is never applied before the first page.
	PageDelay time.Duration `json:"page_delay" yaml:"page_delay"`
}

// FetchConfig holds settings for the entity fetcher.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`
}

// Config groups all idloc configuration.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{Timeout: 30 * time.Second, UserAgent: defaultUserAgent},
			Endpoint:   "https://id.loc.gov/search/",
			MaxResults: 20,
			PageDelay:  time.Second,
		},
		Fetch: FetchConfig{
			HTTPConfig: HTTPConfig{Timeout: 30 * time.Second, UserAgent: defaultUserAgent},
		},
	}
}

const defaultUserAgent = "idloc/0.1"
