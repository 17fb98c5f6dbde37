package box

import (
	"net/url"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/c2fo/boxsync/options"
	"github.com/c2fo/boxsync/transfer"
)

const (
	optionNameAPIKey         = "apiKey"
	optionNameAuthToken      = "authToken"
	optionNameUploadBaseURL  = "uploadBaseURL"
	optionNameRESTBaseURL    = "restBaseURL"
	optionNameProxy          = "proxy"
	optionNameTimeout        = "timeout"
	optionNameResponseLimit  = "responseLimit"
	optionNameCollisionCheck = "collisionCheck"
	optionNameOptions        = "options"
	optionNameDoer           = "doer"
	optionNameFs             = "fs"
	optionNameLogger         = "logger"
)

// WithAPIKey sets the application API key.
func WithAPIKey(key string) options.NewClientOption[Manager] {
	return &apiKeyOpt{key: key}
}

type apiKeyOpt struct {
	key string
}

func (o *apiKeyOpt) Apply(m *Manager) {
	m.options.APIKey = o.key
}

func (o *apiKeyOpt) NewClientOptionName() string {
	return optionNameAPIKey
}

// WithAuthToken sets the user auth token sent with every request.
func WithAuthToken(token string) options.NewClientOption[Manager] {
	return &authTokenOpt{token: token}
}

type authTokenOpt struct {
	token string
}

func (o *authTokenOpt) Apply(m *Manager) {
	m.options.AuthToken = o.token
}

func (o *authTokenOpt) NewClientOptionName() string {
	return optionNameAuthToken
}

// WithUploadBaseURL overrides DefaultUploadBaseURL.
func WithUploadBaseURL(base string) options.NewClientOption[Manager] {
	return &uploadBaseURLOpt{base: base}
}

type uploadBaseURLOpt struct {
	base string
}

func (o *uploadBaseURLOpt) Apply(m *Manager) {
	m.options.UploadBaseURL = o.base
}

func (o *uploadBaseURLOpt) NewClientOptionName() string {
	return optionNameUploadBaseURL
}

// WithRESTBaseURL overrides DefaultRESTBaseURL.
func WithRESTBaseURL(base string) options.NewClientOption[Manager] {
	return &restBaseURLOpt{base: base}
}

type restBaseURLOpt struct {
	base string
}

func (o *restBaseURLOpt) Apply(m *Manager) {
	m.options.RESTBaseURL = o.base
}

func (o *restBaseURLOpt) NewClientOptionName() string {
	return optionNameRESTBaseURL
}

// WithProxy routes requests through proxyURL.
func WithProxy(proxyURL *url.URL) options.NewClientOption[Manager] {
	return &proxyOpt{proxy: proxyURL}
}

type proxyOpt struct {
	proxy *url.URL
}

func (o *proxyOpt) Apply(m *Manager) {
	m.options.Proxy = o.proxy
}

func (o *proxyOpt) NewClientOptionName() string {
	return optionNameProxy
}

// WithTimeout bounds each exchange.
func WithTimeout(timeout time.Duration) options.NewClientOption[Manager] {
	return &timeoutOpt{timeout: timeout}
}

type timeoutOpt struct {
	timeout time.Duration
}

func (o *timeoutOpt) Apply(m *Manager) {
	m.options.Timeout = o.timeout
}

func (o *timeoutOpt) NewClientOptionName() string {
	return optionNameTimeout
}

// WithResponseLimit caps response bodies at limit bytes.
func WithResponseLimit(limit int64) options.NewClientOption[Manager] {
	return &responseLimitOpt{limit: limit}
}

type responseLimitOpt struct {
	limit int64
}

func (o *responseLimitOpt) Apply(m *Manager) {
	m.options.ResponseLimit = o.limit
}

func (o *responseLimitOpt) NewClientOptionName() string {
	return optionNameResponseLimit
}

// WithCollisionCheck enables the multipart boundary collision scan for uploads.
func WithCollisionCheck(enabled bool) options.NewClientOption[Manager] {
	return &collisionCheckOpt{enabled: enabled}
}

type collisionCheckOpt struct {
	enabled bool
}

func (o *collisionCheckOpt) Apply(m *Manager) {
	m.options.CollisionCheck = o.enabled
}

func (o *collisionCheckOpt) NewClientOptionName() string {
	return optionNameCollisionCheck
}

// WithOptions replaces all Options at once, as built by the config package.
func WithOptions(opts Options) options.NewClientOption[Manager] {
	return &optionsOpt{opts: opts}
}

type optionsOpt struct {
	opts Options
}

func (o *optionsOpt) Apply(m *Manager) {
	m.options = o.opts
}

func (o *optionsOpt) NewClientOptionName() string {
	return optionNameOptions
}

// WithDoer sets the Doer used for every request instead of an *http.Client built from Options.
func WithDoer(doer transfer.Doer) options.NewClientOption[Manager] {
	return &doerOpt{doer: doer}
}

type doerOpt struct {
	doer transfer.Doer
}

func (o *doerOpt) Apply(m *Manager) {
	m.doer = o.doer
}

func (o *doerOpt) NewClientOptionName() string {
	return optionNameDoer
}

// WithFs sets the filesystem uploaded files are read from.
func WithFs(fs afero.Fs) options.NewClientOption[Manager] {
	return &fsOpt{fs: fs}
}

type fsOpt struct {
	fs afero.Fs
}

func (o *fsOpt) Apply(m *Manager) {
	m.fs = o.fs
}

func (o *fsOpt) NewClientOptionName() string {
	return optionNameFs
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) options.NewClientOption[Manager] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *zap.Logger
}

func (o *loggerOpt) Apply(m *Manager) {
	if o.logger != nil {
		m.logger = o.logger
	}
}

func (o *loggerOpt) NewClientOptionName() string {
	return optionNameLogger
}
