/*
Package box is the high-level client. A Manager holds the API key, the user's auth token and the
service endpoints, and offers one blocking and one callback-completed method per operation.

# Usage

	m := box.NewManager(
		box.WithAPIKey(apiKey),
		box.WithAuthToken(token),
		box.WithLogger(logger),
	)

	resp := m.CreateFolder(ctx, 0, "reports", false)
	if resp.Err != nil {
		return resp.Err
	}

	err := m.DeleteAsync(ctx, resp.FolderID, box.ObjectTypeFolder, func(r *box.NodeResponse) {
		log.Println(r.Status, r.UserState)
	}, requestID)

Blocking methods never return a bare error; the failure is in the response's Err field along
with whatever status could be translated. Async methods return an error only when the operation
could not be started (nil callback, no files, unreadable file, bad proxy), in which case the
callback is never called. Otherwise the callback runs exactly once on a goroutine owned by the
request.

# Uploads

UploadFiles, OverwriteFile and FileNewCopy send files as multipart/form-data. The form can be tuned
with the options in package options/upload:

	m.UploadFiles(ctx, folderID, paths,
		upload.WithShared(true),
		upload.WithMessage("quarterly numbers"),
		upload.WithEmails("a@example.com", "b@example.com"),
	)

Each file the service reports on is listed in UploadResponse.Files with its own status.FileError.
*/
package box
