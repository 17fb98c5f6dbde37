package transfer

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/utils"
)

// Fetch GETs the destination url and returns the response text. Errors follow SubmitFiles.
func (r *Request) Fetch(ctx context.Context) (string, error) {
	doer, err := r.Client()
	if err != nil {
		return "", err
	}

	req, err := r.newHTTPRequest(ctx, http.MethodGet, nil, 0)
	if err != nil {
		return "", boxsync.NewOpError(opFetch, boxsync.KindPrecondition, err)
	}

	resp, err := doer.Do(req)
	if err != nil {
		r.closeBody(resp)
		return "", boxsync.NewOpError(opFetch, boxsync.KindTransport, utils.WrapRequestError(err))
	}

	return r.readResponse(resp)
}

// FetchAsync starts a GET of the destination url and completes c exactly once, on another
// goroutine. A nil c is returned as a precondition error and nothing is sent.
func (r *Request) FetchAsync(ctx context.Context, c Completer) error {
	if c == nil {
		return boxsync.NewOpError(opFetchAsync, boxsync.KindPrecondition, boxsync.ErrNilCallback)
	}

	doer, err := r.Client()
	if err != nil {
		return err
	}

	req, err := r.newHTTPRequest(ctx, http.MethodGet, nil, 0)
	if err != nil {
		return boxsync.NewOpError(opFetchAsync, boxsync.KindPrecondition, err)
	}

	go func() {
		resp, err := doer.Do(req)
		if err != nil {
			r.closeBody(resp)
			r.deliver(c, "", boxsync.NewOpError(opFetchAsync, boxsync.KindTransport, utils.WrapRequestError(err)))
			return
		}
		status, err := r.readResponse(resp)
		r.logger.Debug("asynchronous fetch finished", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		r.deliver(c, status, err)
	}()

	return nil
}
