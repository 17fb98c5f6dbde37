package transfer

import (
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/c2fo/boxsync/multipart"
	"github.com/c2fo/boxsync/options"
)

const (
	optionNameDoer           = "doer"
	optionNameProxy          = "proxy"
	optionNameTimeout        = "timeout"
	optionNameAcceptCharset  = "acceptCharset"
	optionNameAcceptEncoding = "acceptEncoding"
	optionNameResponseLimit  = "responseLimit"
	optionNameEncoder        = "encoder"
	optionNameLogger         = "logger"
)

// WithDoer sets the Doer used to send the request. Takes precedence over WithProxy and WithTimeout.
func WithDoer(doer Doer) options.NewClientOption[Request] {
	return &doerOpt{doer: doer}
}

// WithHTTPClient is WithDoer for an *http.Client.
func WithHTTPClient(client *http.Client) options.NewClientOption[Request] {
	if client == nil {
		return &doerOpt{}
	}
	return &doerOpt{doer: client}
}

type doerOpt struct {
	doer Doer
}

func (o *doerOpt) Apply(r *Request) {
	r.doer = o.doer
}

func (o *doerOpt) NewClientOptionName() string {
	return optionNameDoer
}

// WithProxy routes the request through an http, https, socks5 or socks5h proxy.
func WithProxy(proxyURL *url.URL) options.NewClientOption[Request] {
	return &proxyOpt{proxy: proxyURL}
}

type proxyOpt struct {
	proxy *url.URL
}

func (o *proxyOpt) Apply(r *Request) {
	r.proxy = o.proxy
}

func (o *proxyOpt) NewClientOptionName() string {
	return optionNameProxy
}

// WithTimeout bounds the whole exchange, including reading the response. Zero means no limit.
func WithTimeout(timeout time.Duration) options.NewClientOption[Request] {
	return &timeoutOpt{timeout: timeout}
}

type timeoutOpt struct {
	timeout time.Duration
}

func (o *timeoutOpt) Apply(r *Request) {
	r.timeout = o.timeout
}

func (o *timeoutOpt) NewClientOptionName() string {
	return optionNameTimeout
}

// WithAcceptCharset sets the Accept-Charset header. Default is ISO-8859-1.
func WithAcceptCharset(charset string) options.NewClientOption[Request] {
	return &acceptCharsetOpt{charset: charset}
}

type acceptCharsetOpt struct {
	charset string
}

func (o *acceptCharsetOpt) Apply(r *Request) {
	r.acceptCharset = o.charset
}

func (o *acceptCharsetOpt) NewClientOptionName() string {
	return optionNameAcceptCharset
}

// WithAcceptEncoding sets the Accept-Encoding header. Default is gzip,deflate.
func WithAcceptEncoding(encoding string) options.NewClientOption[Request] {
	return &acceptEncodingOpt{encoding: encoding}
}

type acceptEncodingOpt struct {
	encoding string
}

func (o *acceptEncodingOpt) Apply(r *Request) {
	r.acceptEncoding = o.encoding
}

func (o *acceptEncodingOpt) NewClientOptionName() string {
	return optionNameAcceptEncoding
}

// WithResponseLimit caps the decoded response size in bytes. Zero or less means unlimited.
func WithResponseLimit(limit int64) options.NewClientOption[Request] {
	return &responseLimitOpt{limit: limit}
}

type responseLimitOpt struct {
	limit int64
}

func (o *responseLimitOpt) Apply(r *Request) {
	r.responseLimit = o.limit
}

func (o *responseLimitOpt) NewClientOptionName() string {
	return optionNameResponseLimit
}

// WithEncoder sets the multipart encoder, and with it the boundary.
func WithEncoder(encoder *multipart.Encoder) options.NewClientOption[Request] {
	return &encoderOpt{encoder: encoder}
}

type encoderOpt struct {
	encoder *multipart.Encoder
}

func (o *encoderOpt) Apply(r *Request) {
	r.encoder = o.encoder
}

func (o *encoderOpt) NewClientOptionName() string {
	return optionNameEncoder
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) options.NewClientOption[Request] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(r *Request) {
	if o.logger != nil {
		r.logger = o.logger
	}
}

func (o *loggerOpt) NewClientOptionName() string {
	return optionNameLogger
}
