package options

// NewClientOption configures a value of type T at construction time.
// Example:
// ```
//
//	type retryOpt struct{ count int }
//	func (o *retryOpt) Apply(r *transfer.Request) {
//		r.retries = o.count
//	}
//	func (o *retryOpt) NewClientOptionName() string {
//		return "retryCount"
//	}
//
// ```
type NewClientOption[T any] interface {
	// Apply applies the option to the target.
	Apply(*T)

	// NewClientOptionName returns the name of the option.
	NewClientOptionName() string
}

// ApplyOptions applies opts to target in order. Nil options are skipped.
func ApplyOptions[T any](target *T, opts ...NewClientOption[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(target)
		}
	}
}

// UploadOption interface contains function that should be implemented by any custom option to qualify as an upload
// option. Upload options tune the multipart form sent with an upload, overwrite or new-copy request.
type UploadOption interface {
	UploadOptionName() string
}
