// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/fetchx/request"
)

// A Policy decides the timeout for a fetch.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the fetch described by e.
	// When Timeout is called, only e.Plan has been set.
	Timeout(e *request.Execution) time.Duration
}

// Default is the timeout used when none is configured.
const Default = 5 * time.Second

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds.
var DefaultPolicy Policy = Fixed(Default)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that always returns d.
func Fixed(d time.Duration) Policy {
	return fixed(d)
}

type fixed time.Duration

func (f fixed) Timeout(_ *request.Execution) time.Duration {
	return time.Duration(f)
}

// PolicyFunc adapts an ordinary function to the Policy interface, for
// example to vary the timeout by request method or host.
type PolicyFunc func(e *request.Execution) time.Duration

// Timeout returns f(e).
func (f PolicyFunc) Timeout(e *request.Execution) time.Duration {
	return f(e)
}
