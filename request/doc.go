// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes an HTTP request
to fetch) and Execution (describes the state of a Plan being fetched).

A Plan looks like a stripped-down http.Request with the server-side
fields removed and the body replaced by a pre-buffered []byte:

	p, err := request.NewPlan("GET", "https://example.com", nil)
	...
	e, err := fetcher.Do(p)
	...

A plan may be given a context, which bounds the whole fetch including
the time spent streaming the response body:

	p, err := request.NewPlanWithContext(ctx, "POST", "https://example.com/form", body)
	...

An Execution is both the result of a fetch and the value handed to
event handlers while the fetch is in flight. It records the response,
the number of body bytes and chunks received so far, the length the
server announced in its Content-Length header, and at the end the
assembled body and its decoded text.
*/
package request
