package box

import (
	"net/url"
	"strconv"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/c2fo/boxsync/multipart"
	"github.com/c2fo/boxsync/options"
	"github.com/c2fo/boxsync/transfer"
	"github.com/c2fo/boxsync/utils"
)

// Manager issues requests against one account. It is safe for concurrent use.
type Manager struct {
	options Options
	fs      afero.Fs
	logger  *zap.Logger

	mu   sync.Mutex
	doer transfer.Doer
}

// NewManager initializer for Manager struct.
func NewManager(opts ...options.NewClientOption[Manager]) *Manager {
	m := &Manager{
		options: NewOptions(),
		logger:  zap.NewNop(),
	}

	options.ApplyOptions(m, opts...)

	return m
}

// Options returns the Manager's options.
func (m *Manager) Options() Options {
	return m.options
}

// Client returns the Doer shared by every request, building an *http.Client from Options on first
// use. A proxy with an unsupported scheme is reported here.
func (m *Manager) Client() (transfer.Doer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doer == nil {
		doer, err := transfer.NewRequest(m.options.RESTBaseURL,
			transfer.WithProxy(m.options.Proxy),
			transfer.WithTimeout(m.options.Timeout),
		).Client()
		if err != nil {
			return nil, err
		}
		m.doer = doer
	}

	return m.doer, nil
}

func (m *Manager) newRequest(destination string) (*transfer.Request, error) {
	doer, err := m.Client()
	if err != nil {
		return nil, err
	}

	encOpts := []options.NewClientOption[multipart.Encoder]{
		multipart.WithCollisionCheck(m.options.CollisionCheck),
	}
	if m.fs != nil {
		encOpts = append(encOpts, multipart.WithFs(m.fs))
	}

	return transfer.NewRequest(destination,
		transfer.WithDoer(doer),
		transfer.WithResponseLimit(m.options.ResponseLimit),
		transfer.WithEncoder(multipart.NewEncoder(encOpts...)),
		transfer.WithLogger(m.logger),
	), nil
}

// uploadURL builds <uploadBase>/<endpoint>/<authToken>/<id>.
func (m *Manager) uploadURL(endpoint string, id int64) string {
	return utils.JoinURL(m.options.UploadBaseURL, endpoint, m.options.AuthToken, strconv.FormatInt(id, 10))
}

// restURL builds <restBase>?action=<action>&api_key=..&auth_token=..&<params>.
func (m *Manager) restURL(action string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("action", action)
	params.Set("api_key", m.options.APIKey)
	params.Set("auth_token", m.options.AuthToken)
	return m.options.RESTBaseURL + "?" + params.Encode()
}
