// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stream

import (
	"golang.org/x/text/encoding/unicode"
)

// A Buffer accumulates chunks in arrival order. The zero value is an
// empty buffer ready to use.
//
// A Buffer is not safe for concurrent use. It is meant to be owned by
// a single fetch and dropped when the fetch ends.
type Buffer struct {
	chunks [][]byte
	n      int64
}

// Append adds a copy of chunk to the end of the buffer. The caller may
// reuse chunk once Append returns. Empty chunks are ignored.
func (b *Buffer) Append(chunk []byte) {
	if len(chunk) == 0 {
		return
	}

	c := make([]byte, len(chunk))
	copy(c, chunk)
	b.chunks = append(b.chunks, c)
	b.n += int64(len(c))
}

// Len returns the total number of bytes appended so far.
func (b *Buffer) Len() int64 {
	return b.n
}

// Chunks returns the number of non-empty chunks appended so far.
func (b *Buffer) Chunks() int {
	return len(b.chunks)
}

// Bytes joins the chunks into one newly allocated slice of exactly Len
// bytes, copying each chunk at the offset following the previous one.
// An empty buffer yields an empty, non-nil slice.
func (b *Buffer) Bytes() []byte {
	all := make([]byte, b.n)
	var pos int
	for _, c := range b.chunks {
		pos += copy(all[pos:], c)
	}
	return all
}

// Text joins the chunks and decodes the result as UTF-8. See Decode.
func (b *Buffer) Text() (string, error) {
	return Decode(b.Bytes())
}

// Reset empties the buffer, releasing the chunks it holds.
func (b *Buffer) Reset() {
	b.chunks = nil
	b.n = 0
}

// Decode decodes p as UTF-8 text the way a default text decoder does:
// a leading byte order mark is dropped and each invalid byte sequence
// is replaced by U+FFFD.
func Decode(p []byte) (string, error) {
	if len(p) == 0 {
		return "", nil
	}

	out, err := unicode.UTF8BOM.NewDecoder().Bytes(p)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
