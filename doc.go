// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetchx fetches a URL over HTTP, streams the response body chunk
by chunk while reporting progress, and returns the body decoded as
UTF-8 text.

Create a Fetcher bound to a URL to begin making requests.

	f, err := fetchx.New(fetchx.Config{
		URL:     "https://www.example.com/report",
		Timeout: 10 * time.Second,
	})
	...
	text, err := f.Get(ctx)
	...
	text, err := f.Post(ctx, url.Values{"key": {"Value"}})

To watch the body arrive, register an Observer. It is called once for
every chunk, in order, before the next chunk is read:

	f.On(fetchx.ObserverFunc(func(chunk []byte) {
		fmt.Fprintf(os.Stderr, "got %d bytes\n", len(chunk))
	}))

Progress lines ("4.1 kB received of 11 kB") are logged at debug level
through logrus; set Fetcher.Logger to redirect or silence them.

For control over how the fetcher sends HTTP requests and receives HTTP
responses, use a custom HTTPDoer, for example a GoLang standard HTTP
client with a tuned transport:

	f.HTTPDoer = &http.Client{
		..., // See package "net/http" for detailed documentation
	}

To hook into the fine-grained details of a fetch, install a handler
into the appropriate handler chain:

	handlers := &fetchx.HandlerGroup{}
	handlers.PushBack(fetchx.AfterChunk, fetchx.HandlerFunc(
		func(_ fetchx.Event, e *request.Execution) {
			bar.Set(e.Received, e.Expected)
		}),
	)
	f.Handlers = handlers

Every error returned by a fetch is a *url.Error wrapping a *fault.Error
that records whether the request could not be sent, the body could not
be read, or the body could not be decoded. A failed fetch never returns
partial text.
*/
package fetchx
