/*
Package boxsync is a client library for the Box.net v1 document storage API.

Every operation is offered in two flavors: a blocking call that returns a typed response, and a
non-blocking call that returns immediately and completes exactly once through a callback. The
callback receives the typed response together with the user state supplied when the operation was
started, so many operations can be in flight at once and still be told apart.

Packages

  - multipart encodes files and form fields into a multipart/form-data body.
  - transfer sends encoded bodies (and plain GET requests), synchronously or asynchronously, and
    owns the correlation state that carries a callback and user state across the async boundary.
  - status translates the server's status strings into typed result codes.
  - box ties the above together into a Manager with one method pair per API operation.
  - config loads Manager settings from a file and the environment.

Usage

	m := box.NewManager(
		box.WithAPIKey(os.Getenv("BOXSYNC_API_KEY")),
		box.WithAuthToken(token),
	)

	// blocking
	resp := m.UploadFiles(ctx, 0, []string{"/tmp/report.pdf"}, upload.WithShared(true))
	if resp.Err != nil {
		return resp.Err
	}

	// non-blocking
	err := m.UploadFilesAsync(ctx, 0, paths, func(r *box.UploadResponse) {
		fmt.Println(r.Status, r.UserState)
	}, "batch-42")

Errors

Errors returned synchronously from an async entry point are always precondition or local i/o
failures (nil callback, unreadable file); no request was sent. Anything that goes wrong after the
request was accepted is delivered through the callback. Use KindOf or IsKind to classify an error:

	if boxsync.IsKind(resp.Err, boxsync.KindTransport) {
		// network trouble, the status was never read
	}

A status string the library does not recognize yields an Unknown status and an error matching
ErrUnknownStatus, never a silent success.
*/
package boxsync
