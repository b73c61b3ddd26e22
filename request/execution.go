// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gogama/fetchx/fault"
)

// An Execution is the state of a single Plan being fetched.
//
// An Execution is created when the fetch starts, updated as the
// response arrives and each body chunk is read, and finally returned
// from the fetch. It is never shared between fetches.
//
// Event handlers receive the in-flight Execution and should treat its
// fields as read-only.
type Execution struct {
	// Plan specifies the plan being fetched. It is never nil.
	Plan *Plan

	// Start is the time the fetch started.
	Start time.Time

	// End is the time the fetch ended. It is the zero time while the
	// response body is still streaming.
	End time.Time

	// Request is the HTTP request sent for the plan.
	Request *http.Request

	// Response is the HTTP response received, or nil if sending the
	// request failed. Its body has been fully consumed and closed by
	// the time the fetch ends.
	Response *http.Response

	// Err is the error, if any, that ended the fetch. Whenever Err is
	// non-nil it has the type *url.Error, and its cause is a
	// *fault.Error giving the phase the fetch failed in.
	Err error

	// Expected is the total body length announced by the response's
	// Content-Length header. It is zero if the header is absent or is
	// not a number, so it is only good for reporting progress.
	Expected int64

	// Received is the number of body bytes read so far.
	Received int64

	// Chunks is the number of body chunks read so far.
	Chunks int

	// Chunk is the most recently read chunk. It is only valid during
	// the AfterChunk event; the fetch reuses its memory afterwards.
	Chunk []byte

	// Body is the complete response body, assembled from the chunks
	// once the stream has been read to the end. It is nil while
	// streaming and when the fetch failed.
	Body []byte

	// Text is Body decoded as UTF-8. It is only meaningful if the
	// fetch ended without error.
	Text string
}

// StatusCode returns the status code of the HTTP response, or 0 if
// there is no response.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no response. A nil header is safe for read-only operations.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return e.Response.Header
}

// ContentLength parses the Content-Length header of h. An absent or
// malformed header yields zero.
func ContentLength(h http.Header) int64 {
	n, err := strconv.ParseInt(h.Get("Content-Length"), 10, 64)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended. An execution that
// has started but not ended is still streaming the response body.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Timeout indicates whether Err is a timeout.
func (e *Execution) Timeout() bool {
	return fault.Categorize(e.Err) == fault.Timeout
}

// Phase returns the phase in which the execution failed, or
// fault.Unknown if Err is nil.
func (e *Execution) Phase() fault.Phase {
	return fault.PhaseOf(e.Err)
}
