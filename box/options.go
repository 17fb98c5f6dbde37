package box

import (
	"net/url"
	"time"
)

const (
	// DefaultUploadBaseURL is the base of the multipart upload endpoints.
	DefaultUploadBaseURL = "https://upload.box.net/api/1.0"
	// DefaultRESTBaseURL is the REST endpoint used for every non-upload action.
	DefaultRESTBaseURL = "https://www.box.net/api/1.0/rest"
)

// Options holds configuration options for the Manager.
type Options struct {
	// APIKey identifies the application to the service.
	APIKey string

	// AuthToken is the token of a logged-in user. Obtaining it is outside this library.
	AuthToken string

	// UploadBaseURL is the base of the upload, overwrite and new_copy endpoints.
	UploadBaseURL string

	// RESTBaseURL is the REST action endpoint.
	RESTBaseURL string

	// Proxy routes every request through an http, https or socks5 proxy when set.
	Proxy *url.URL

	// Timeout bounds each exchange. Zero means only the context applies.
	Timeout time.Duration

	// ResponseLimit caps the size of a response body in bytes. Zero means unlimited.
	ResponseLimit int64

	// CollisionCheck makes uploads fail when the multipart boundary occurs in the content.
	CollisionCheck bool
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		UploadBaseURL: DefaultUploadBaseURL,
		RESTBaseURL:   DefaultRESTBaseURL,
	}
}
