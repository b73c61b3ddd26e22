// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"errors"
	"io"
)

// DefaultChunkSize is the read size used by Read when size is not
// positive.
const DefaultChunkSize = 32 * 1024

// ErrNoProgress is returned by Read when the reader keeps returning
// zero bytes and no error.
var ErrNoProgress = errors.New("stream: reader made no progress")

// maxEmptyReads matches the tolerance of bufio.Reader.
const maxEmptyReads = 100

// A ChunkFunc receives each chunk read by Read. The chunk is only valid
// until ChunkFunc returns, since Read reuses its buffer for the next
// read. Returning a non-nil error stops Read, which then returns that
// error.
type ChunkFunc func(chunk []byte) error

// Read reads r until io.EOF, calling fn with each non-empty chunk in
// the order the chunks were read. There is never more than one read
// outstanding against r: the next Read call on r is only issued after
// fn has returned for the previous chunk.
//
// Data returned together with an error is still passed to fn before the
// error is reported. Reaching io.EOF is not an error; any other read
// error is returned as is.
func Read(r io.Reader, size int, fn ChunkFunc) error {
	if size <= 0 {
		size = DefaultChunkSize
	}

	buf := make([]byte, size)
	empty := 0
	for {
		n, err := r.Read(buf)
		if n > 0 {
			empty = 0
			if fnErr := fn(buf[:n]); fnErr != nil {
				return fnErr
			}
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return ErrNoProgress
			}
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
	}
}
