/*
Package transfer sends requests to the storage service and correlates asynchronous completions
with the caller that started them.

# Requests

A Request is bound to one destination URL and, for uploads, one multipart boundary. Create a new
Request per operation:

	r := transfer.NewRequest(uploadURL, transfer.WithLogger(logger))
	text, err := r.SubmitFiles(ctx, multipart.Form{FilePaths: paths})

SubmitFiles blocks for the whole round trip and returns the response body as text. A non-2xx
answer returns both the body and a boxsync.KindProtocol error so the caller can still translate it.

# Asynchronous operations

SubmitFilesAsync and FetchAsync return as soon as the request is accepted. Completion is delivered
to a Completer, normally a *State created with NewState:

	st, err := transfer.NewState(func(r transfer.Response[int]) {
		log.Println(r.UserState, r.Status, r.Err)
	}, 42)
	if err != nil {
		return err // nil callback
	}
	if err := r.SubmitFilesAsync(ctx, form, st); err != nil {
		return err // nothing was sent, the callback will not fire
	}

The body is written to the connection on one goroutine while the round trip runs on another. When
the write finishes the writing goroutine reads the response and completes the state. A server
that answers before reading the whole body still has its response read and translated; only a
failed round trip completes with a transport error. Redirects replay the encoded body. The
callback runs on that goroutine, never on the caller's, and fires exactly once. Cancelling ctx aborts the exchange
and still completes the state, with a boxsync.KindTransport error.

Response bodies are closed on every path.
*/
package transfer
