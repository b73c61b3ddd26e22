// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// An Observer is notified of each chunk of response body data as it
// arrives. Register one with Fetcher.On.
//
// OnData is called synchronously from the goroutine streaming the
// body, once per chunk and in arrival order, before the next chunk is
// read. The chunk is the raw data exactly as read; it must not be
// modified, and must not be retained after OnData returns, since its
// memory is reused for the next read. Copy it to keep it.
type Observer interface {
	OnData(chunk []byte)
}

// The ObserverFunc type is an adapter to allow the use of ordinary
// functions as observers.
type ObserverFunc func(chunk []byte)

// OnData calls f(chunk).
func (f ObserverFunc) OnData(chunk []byte) {
	f(chunk)
}
