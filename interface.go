// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"

	"github.com/gogama/fetchx/request"
)

// FormContentType is the Content-Type header value sent with every
// POST made through Post, Fetcher.Post, and the fetchx command.
//
// The value deliberately lacks the "application/" prefix and is sent
// even when the body is not a URL-encoded form. Servers that care
// about the exact media type should be sent requests built with
// request.NewPlan and Fetcher.Do instead.
const FormContentType = "x-www-form-urlencoded"

// Doer is the interface that wraps the basic Do method.
//
// Do fetches a request plan, streaming the response body, and returns
// the final execution state (and error, if any). Fetcher implements
// the Doer interface.
type Doer interface {
	Do(p *request.Plan) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Get fetches a preconfigured URL with a GET request and returns the
// response body as text.
type Getter interface {
	Get(ctx context.Context) (string, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post fetches a preconfigured URL with a POST request carrying body
// and returns the response body as text.
type Poster interface {
	Post(ctx context.Context, body interface{}) (string, error)
}

// Executor is the interface that groups the basic Do, Get, and Post
// methods. Fetcher implements Executor.
type Executor interface {
	Doer
	Getter
	Poster
}

var _ Executor = (*Fetcher)(nil)

// Get uses the specified Doer to issue a GET to the specified URL.
//
// To make a request plan with custom headers, use request.NewPlan and
// d.Do.
func Get(ctx context.Context, d Doer, url string) (*request.Execution, error) {
	p, err := request.NewPlanWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(p)
}

// Post uses the specified Doer to issue a POST to the specified URL,
// with the Content-Type header set to FormContentType.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.BodyBytes, namely: string; []byte;
// url.Values; io.Reader; and io.ReadCloser.
func Post(ctx context.Context, d Doer, url string, body interface{}) (*request.Execution, error) {
	p, err := request.NewPlanWithContext(ctx, "POST", url, body)
	if err != nil {
		return nil, err
	}
	p.Header.Set("Content-Type", FormContentType)
	return d.Do(p)
}
