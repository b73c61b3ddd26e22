// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command fetchx fetches a URL, streaming the response body while
// logging progress to stderr, and writes the body as text to stdout.
//
//	fetchx https://example.com/report
//	fetchx --data 'a=1&b=2' --timeout 30s https://example.com/form
//	FETCHX_TIMEOUT=1m fetchx --config fetchx.yaml -v
//
// Settings come from flags, FETCHX_* environment variables, and an
// optional config file, in that order of precedence. Unknown keys in
// the config file are an error.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
