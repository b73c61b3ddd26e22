// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/gogama/fetchx/request"
)

// logProgress logs one progress observation: the bytes received so far
// against the length the server announced.
func logProgress(log logrus.FieldLogger, e *request.Execution) {
	log.WithFields(logrus.Fields{
		"received": e.Received,
		"expected": e.Expected,
		"chunks":   e.Chunks,
	}).Debugf("%s received of %s", humanize.Bytes(uint64(e.Received)), expectedSize(e.Expected))
}

func expectedSize(n int64) string {
	if n <= 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(n))
}
