/*
Package multipart builds multipart/form-data request bodies for the upload endpoints.

A body is assembled from a Form: zero or more local files, an optional message, the mandatory
share flag, and zero or more notification addresses. Parts are written in that order and the
closing boundary is always last:

	--<boundary>
	Content-Disposition: form-data; name="<uuid>"; filename="report.pdf"
	Content-Type: application/octet-stream

	<file bytes>
	--<boundary>
	Content-Disposition: form-data; name="message"

	please review
	--<boundary>
	Content-Disposition: form-data; name="share"

	1
	--<boundary>
	Content-Disposition: form-data; name="emails[]"

	someone@example.com
	--<boundary>--

Each file part gets a fresh random field name; the server identifies files by filename only.

# Limits

Files are read whole into memory before anything is written, so the largest upload is bounded by
available memory. Reading every file up front also means an unreadable path fails the encode
without producing a partial body.

The boundary is a random 128-bit token and content is not escaped. WithCollisionCheck scans every
value and file for the token and refuses to encode on a match.
*/
package multipart
