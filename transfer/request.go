package transfer

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/multipart"
	"github.com/c2fo/boxsync/options"
	"github.com/c2fo/boxsync/utils"
)

const (
	// DefaultAcceptCharset is sent as Accept-Charset unless overridden.
	DefaultAcceptCharset = "ISO-8859-1"
	// DefaultAcceptEncoding is sent as Accept-Encoding unless overridden.
	DefaultAcceptEncoding = "gzip,deflate"

	opSubmit      = "submit"
	opSubmitAsync = "submit async"
	opFetch       = "fetch"
	opFetchAsync  = "fetch async"
	opRead        = "read response"

	errNoResponse = boxsync.Error("round trip returned neither a response nor an error")
)

// Doer sends an HTTP request and returns its response. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is a single exchange with one destination URL.
type Request struct {
	url            string
	doer           Doer
	proxy          *url.URL
	timeout        time.Duration
	acceptCharset  string
	acceptEncoding string
	responseLimit  int64
	encoder        *multipart.Encoder
	logger         *zap.Logger
}

// NewRequest returns a Request for destination url.
func NewRequest(url string, opts ...options.NewClientOption[Request]) *Request {
	r := &Request{
		url:            url,
		acceptCharset:  DefaultAcceptCharset,
		acceptEncoding: DefaultAcceptEncoding,
		logger:         zap.NewNop(),
	}

	options.ApplyOptions(r, opts...)

	if r.encoder == nil {
		r.encoder = multipart.NewEncoder()
	}

	return r
}

// URL returns the destination url.
func (r *Request) URL() string {
	return r.url
}

// Boundary returns the multipart boundary used by SubmitFiles.
func (r *Request) Boundary() string {
	return r.encoder.Boundary()
}

// Client returns the Doer used for the exchange, building an *http.Client from the proxy and
// timeout options if none was supplied.
func (r *Request) Client() (Doer, error) {
	if r.doer == nil {
		transport, err := newTransport(r.proxy)
		if err != nil {
			return nil, boxsync.NewOpError("client", boxsync.KindPrecondition, err)
		}
		r.doer = &http.Client{Transport: transport, Timeout: r.timeout}
	}
	return r.doer, nil
}

func (r *Request) newHTTPRequest(ctx context.Context, method string, body io.Reader, contentLength int64) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, r.url, body)
	if err != nil {
		return nil, utils.WrapRequestError(err)
	}
	req.Header.Set("Accept-Charset", r.acceptCharset)
	req.Header.Set("Accept-Encoding", r.acceptEncoding)
	if body != nil {
		req.ContentLength = contentLength
	}
	return req, nil
}

// closeBody closes a response body and logs failures, which are not actionable for the caller.
func (r *Request) closeBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	if err := resp.Body.Close(); err != nil {
		r.logger.Warn("closing response body", zap.Error(utils.WrapCloseError(err)))
	}
}

// deliver completes c, recovering a panicking callback so it cannot take down the process.
func (r *Request) deliver(c Completer, status string, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("completion callback panicked",
				zap.String("url_host", r.host()),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
		}
	}()
	c.Complete(status, err)
}

func (r *Request) host() string {
	u, err := url.Parse(r.url)
	if err != nil {
		return ""
	}
	return u.Host
}

type roundTrip struct {
	resp *http.Response
	err  error
}
