// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Fetcher to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// fetch starts.
	//
	// When Fetcher fires BeforeExecutionStart, the execution is
	// non-nil but the only field that has been set is the plan.
	BeforeExecutionStart Event = iota
	// BeforeRequest identifies the event that occurs just before the
	// HTTP request is sent.
	//
	// When Fetcher fires BeforeRequest, the execution's request field
	// is set to the HTTP request that WILL BE sent after all
	// BeforeRequest handlers have finished. Handlers may modify the
	// request, for example to sign it, but should clone the URL and
	// Header before changing them since these initially reference the
	// same-named fields in the plan.
	BeforeRequest
	// BeforeReadBody identifies the event that occurs after an HTTP
	// response has been received but before its body is streamed.
	//
	// When Fetcher fires BeforeReadBody, the execution's response field
	// is set and its Expected field holds the length announced by the
	// response's Content-Length header (zero if unknown).
	//
	// BeforeReadBody never fires if sending the request failed.
	BeforeReadBody
	// AfterChunk identifies the event that occurs after each chunk of
	// the response body is read.
	//
	// When Fetcher fires AfterChunk, the chunk has already been
	// buffered and passed to the data observer, the execution's Chunk
	// field references it, and its Received and Chunks counters include
	// it. Together with Expected this makes AfterChunk the natural place
	// to report progress. The Chunk field must not be retained after
	// the handler returns.
	AfterChunk
	// AfterReadBody identifies the event that occurs after the response
	// body has been read to the end and decoded.
	//
	// When Fetcher fires AfterReadBody, the execution's Body and Text
	// fields are set. AfterReadBody does not fire if reading or
	// decoding the body failed.
	AfterReadBody
	// AfterExecutionEnd identifies the event that occurs after the
	// fetch ends, whether it succeeded or not.
	//
	// When Fetcher fires AfterExecutionEnd, the execution's end time is
	// set and either its Err field or its Text field holds the outcome.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeRequest",
	"BeforeReadBody",
	"AfterChunk",
	"AfterReadBody",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur during
// a fetch, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeRequest,
		BeforeReadBody,
		AfterChunk,
		AfterReadBody,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
