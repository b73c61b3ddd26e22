// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
	"syscall"
)

// A Phase identifies the stage of a fetch in which an error occurred.
type Phase int

const (
	// Unknown is the phase reported for nil errors and for errors that
	// were not produced by a fetch.
	Unknown Phase = iota
	// Send indicates the HTTP request could not be sent, or no HTTP
	// response was received. When a fetch fails in the Send phase, no
	// part of the response body has been read.
	Send
	// Read indicates an HTTP response was received but reading its
	// body failed part way through. Any chunks read before the failure
	// are discarded.
	Read
	// Decode indicates the whole body was read but could not be
	// decoded into text.
	Decode
)

var phaseNames = []string{
	"unknown",
	"send",
	"read",
	"decode",
}

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// An Error records an error together with the fetch phase it occurred
// in.
type Error struct {
	Phase Phase
	Err   error
}

// Wrap tags err with phase. A nil err yields nil. If err is already an
// *Error, it is returned unchanged so the phase closest to the cause
// wins.
func Wrap(phase Phase, err error) error {
	if err == nil {
		return nil
	}

	var fe *Error
	if errors.As(err, &fe) {
		return err
	}

	return &Error{Phase: phase, Err: err}
}

func (e *Error) Error() string {
	return e.Phase.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the wrapped error is a timeout.
func (e *Error) Timeout() bool {
	return Categorize(e.Err) == Timeout
}

// PhaseOf returns the phase of the first *Error found in err's chain,
// or Unknown if there is none.
func PhaseOf(err error) Phase {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Phase
	}

	return Unknown
}

// A Category is the transience category of an error, as reported by
// Categorize.
//
// The category Not means retrying the fetch is very unlikely to help.
// All other categories indicate a retry has some prospect of success.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout() function that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED). This often happens while the remote
	// service is starting or restarting.
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// TCP connection (syscall.ECONNRESET).
	ConnReset
)

// Categorize returns the transience category of the given error. A nil
// error, and an error that is not transient, both produce Not.
//
// Categorize looks at wrapped cause errors contained within err, not
// just err itself. It never consults a Temporary() method.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
