// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package stream reads a response body as a sequence of chunks and turns
the accumulated chunks into text.

Read pulls chunks from an io.Reader strictly one at a time, so there is
never more than one outstanding read against the reader, and hands each
chunk to a callback in arrival order:

	var buf stream.Buffer
	err := stream.Read(body, stream.DefaultChunkSize, func(chunk []byte) error {
		buf.Append(chunk)
		return nil
	})
	...
	text, err := buf.Text()

A Buffer keeps the chunks it is given in order and only joins them when
asked for the result, at which point it allocates a single slice sized
to the total number of bytes received. Text decodes that slice as UTF-8
in one shot; there is no incremental decoding.
*/
package stream
