// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault classifies errors from a streaming fetch. Every error
// produced by a fetch is tagged with the Phase in which it happened
// (sending the request, reading the response body, or decoding the
// accumulated body into text), and may additionally be sorted into a
// transience Category such as Timeout or ConnReset.
//
// Package fault depends only on the standard library packages "errors",
// "fmt", and "syscall", so it can be imported on its own by code that
// only wants to inspect fetch errors.
package fault
