// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines policies for bounding how long a fetch may
// take. The bound covers the whole fetch: sending the request, waiting
// for the response headers, and streaming the response body to the
// end.
package timeout
