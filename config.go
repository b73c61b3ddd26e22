// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds the settings of a Fetcher.
//
// The mapstructure tags let Config be decoded directly from a viper
// configuration, as the fetchx command does.
type Config struct {
	// URL is the absolute http or https URL fetched by Fetcher.Get and
	// Fetcher.Post. It is required.
	URL string `mapstructure:"url"`

	// Timeout bounds each fetch from sending the request until the last
	// body chunk is read. Zero means timeout.Default (5 seconds).
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate reports the first problem found in c, or nil if c is usable.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("fetchx: config: url is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("fetchx: config: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("fetchx: config: url scheme must be http or https, not %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("fetchx: config: url %q has no host", c.URL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("fetchx: config: negative timeout %s", c.Timeout)
	}
	return nil
}
