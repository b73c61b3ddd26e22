// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gogama/fetchx/fault"
	"github.com/gogama/fetchx/request"
	"github.com/gogama/fetchx/stream"
	"github.com/gogama/fetchx/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response whose body
	// can be read incrementally.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Fetcher fetches a URL and streams the response body, buffering the
// body chunk by chunk and decoding it into text once it has been read
// to the end. Each chunk is reported to the registered Observer and to
// AfterChunk event handlers as it arrives, and a progress line is
// logged.
//
// Create a Fetcher with New to bind it to a URL for Get and Post. The
// zero value is also usable, but only through Do.
//
// The zero value fetcher uses http.DefaultClient (from net/http) as the
// HTTPDoer, timeout.DefaultPolicy as the timeout policy, the standard
// logrus logger, and no event handlers.
//
// A Fetcher is safe for concurrent use by multiple goroutines once its
// exported fields are set. Every fetch has its own streaming state.
type Fetcher struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// TimeoutPolicy decides the timeout of each fetch.
	//
	// If TimeoutPolicy is nil, a fixed policy using the configured
	// timeout is used, or timeout.DefaultPolicy if none was configured.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a fetch.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
	// Logger receives progress lines at debug level.
	//
	// If Logger is nil, logrus.StandardLogger() is used.
	Logger logrus.FieldLogger
	// ChunkSize is the size of the buffer each body read is made into,
	// and so the largest chunk size. If ChunkSize is not positive,
	// stream.DefaultChunkSize is used.
	ChunkSize int

	config Config

	mu       sync.RWMutex
	observer Observer
}

// New returns a Fetcher bound to the URL and timeout in cfg. An error
// is returned if cfg is not valid.
func New(cfg Config) (*Fetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Fetcher{config: cfg}, nil
}

// Config returns the configuration the fetcher was created with.
func (f *Fetcher) Config() Config {
	return f.config
}

// On registers o to receive each chunk of every subsequent fetch. It
// replaces any previously registered observer; passing nil removes it.
//
// A fetch already in flight keeps the observer it started with.
func (f *Fetcher) On(o Observer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observer = o
}

// Get fetches the configured URL with a GET request and returns the
// whole response body decoded as UTF-8 text.
//
// Any error, whether in sending the request, reading the body, or
// decoding it, fails the whole fetch; no partial text is returned.
// Such an error has type *url.Error. Use fault.PhaseOf to learn which
// phase failed.
//
// An error building the request, such as a nil ctx, is returned as is
// and is not a *url.Error, since no request was made.
//
// A non-2XX status code is not an error: the body is streamed and
// returned like any other. Use Do to inspect the status code.
func (f *Fetcher) Get(ctx context.Context) (string, error) {
	e, err := Get(ctx, f, f.config.URL)
	if err != nil {
		return "", err
	}

	return e.Text, nil
}

// Post fetches the configured URL with a POST request carrying body,
// and returns the whole response body decoded as UTF-8 text.
//
// The Content-Type header is always set to FormContentType, whatever
// the body. The body may be any type accepted by request.BodyBytes,
// namely nil, string, []byte, url.Values, io.Reader, or io.ReadCloser.
//
// Errors are reported as for Get. A body of an unsupported type is an
// error building the request, so it is not a *url.Error.
func (f *Fetcher) Post(ctx context.Context, body interface{}) (string, error) {
	e, err := Post(ctx, f, f.config.URL, body)
	if err != nil {
		return "", err
	}

	return e.Text, nil
}

// Do fetches the request plan p and returns the final execution state.
//
// The response body is read one chunk at a time, with never more than
// one read outstanding. Each chunk is buffered, handed to the
// registered Observer, counted, logged, and announced to AfterChunk
// handlers, in that order. When the body is exhausted the chunks are
// joined into Execution.Body in arrival order and decoded once into
// Execution.Text.
//
// The returned Execution is never nil. If an error is returned, it is
// also stored in the execution's Err field, has the type *url.Error,
// and wraps a *fault.Error naming the phase that failed; the
// execution's Body is then nil and its Text empty.
func (f *Fetcher) Do(p *request.Plan) (*request.Execution, error) {
	e := &request.Execution{
		Plan: p,
	}

	handlers := f.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	handlers.run(BeforeExecutionStart, e)
	e.Start = time.Now()

	ctx, cancel := context.WithTimeout(p.Context(), f.timeoutPolicy().Timeout(e))
	defer cancel()

	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeRequest, e)
	resp, err := f.doer().Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, fault.Send, err)
	} else {
		e.Response = resp
		f.readBody(e, handlers)
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, e)
	return e, e.Err
}

func (f *Fetcher) readBody(e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()

	e.Expected = request.ContentLength(e.Response.Header)
	handlers.run(BeforeReadBody, e)

	observer := f.currentObserver()
	log := f.logger().WithField("url", e.Plan.URL.String())
	var buf stream.Buffer
	err := stream.Read(e.Response.Body, f.ChunkSize, func(chunk []byte) error {
		buf.Append(chunk)
		if observer != nil {
			observer.OnData(chunk)
		}
		e.Received += int64(len(chunk))
		e.Chunks++
		logProgress(log, e)
		e.Chunk = chunk
		handlers.run(AfterChunk, e)
		e.Chunk = nil
		return nil
	})
	if err != nil {
		e.Err = urlErrorWrap(e.Plan, fault.Read, err)
		return
	}

	log.WithField("received", e.Received).Debug("Stream read completely")
	body := buf.Bytes()
	buf.Reset()
	text, err := stream.Decode(body)
	if err != nil {
		e.Err = urlErrorWrap(e.Plan, fault.Decode, err)
		return
	}

	e.Body = body
	e.Text = text
	handlers.run(AfterReadBody, e)
}

func (f *Fetcher) currentObserver() Observer {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.observer
}

func (f *Fetcher) doer() HTTPDoer {
	if f.HTTPDoer == nil {
		return http.DefaultClient
	}

	return f.HTTPDoer
}

func (f *Fetcher) timeoutPolicy() timeout.Policy {
	if f.TimeoutPolicy != nil {
		return f.TimeoutPolicy
	}

	if f.config.Timeout == 0 {
		return timeout.DefaultPolicy
	}

	return timeout.Fixed(f.config.Timeout)
}

func (f *Fetcher) logger() logrus.FieldLogger {
	if f.Logger == nil {
		return logrus.StandardLogger()
	}

	return f.Logger
}

// urlErrorWrap tags err with phase and makes sure the result is a
// *url.Error. If err is already a *url.Error, as errors from
// http.Client are, its cause is tagged instead so it isn't wrapped
// twice.
func urlErrorWrap(p *request.Plan, phase fault.Phase, err error) error {
	if ue, ok := err.(*url.Error); ok {
		return &url.Error{
			Op:  ue.Op,
			URL: ue.URL,
			Err: fault.Wrap(phase, ue.Err),
		}
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: fault.Wrap(phase, err),
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
