package mocks

import (
	"errors"
	"io"
	"strings"
	"sync/atomic"
)

// ErrInjected is returned by a ResponseBody once its failure point is reached.
var ErrInjected = errors.New("injected failure")

// ResponseBody is an io.ReadCloser standing in for an http.Response body. It serves Content and,
// when FailAfter is non-negative, fails with ErrInjected after that many bytes. Close calls are
// counted so tests can assert the body was released exactly once.
type ResponseBody struct {
	reader    io.Reader
	remaining int
	failing   bool
	closes    atomic.Int32
}

// NewResponseBody returns a body that serves content and never fails.
func NewResponseBody(content string) *ResponseBody {
	return &ResponseBody{reader: strings.NewReader(content)}
}

// NewFailingResponseBody returns a body that serves at most failAfter bytes of content and then
// returns ErrInjected.
func NewFailingResponseBody(content string, failAfter int) *ResponseBody {
	return &ResponseBody{reader: strings.NewReader(content), remaining: failAfter, failing: true}
}

// Read implements io.Reader
func (b *ResponseBody) Read(p []byte) (int, error) {
	if b.closes.Load() > 0 {
		return 0, errors.New("read on closed body")
	}
	if b.failing {
		if b.remaining <= 0 {
			return 0, ErrInjected
		}
		if len(p) > b.remaining {
			p = p[:b.remaining]
		}
		n, err := b.reader.Read(p)
		b.remaining -= n
		return n, err
	}
	return b.reader.Read(p)
}

// Close implements io.Closer
func (b *ResponseBody) Close() error {
	b.closes.Add(1)
	return nil
}

// Closes returns how many times Close was called.
func (b *ResponseBody) Closes() int {
	return int(b.closes.Load())
}
