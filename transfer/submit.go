package transfer

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/multipart"
	"github.com/c2fo/boxsync/utils"
)

// SubmitFiles encodes form, POSTs it and blocks until the whole response has been read.
//
// A non-2xx response returns the body text together with a boxsync.KindProtocol error.
func (r *Request) SubmitFiles(ctx context.Context, form multipart.Form) (string, error) {
	body, err := r.encoder.Encode(form)
	if err != nil {
		return "", err
	}

	doer, err := r.Client()
	if err != nil {
		return "", err
	}

	req, err := r.newHTTPRequest(ctx, http.MethodPost, bytes.NewReader(body.Bytes), int64(body.Len()))
	if err != nil {
		return "", boxsync.NewOpError(opSubmit, boxsync.KindPrecondition, err)
	}
	req.Header.Set("Content-Type", body.ContentType())

	r.logger.Debug("submitting multipart request",
		zap.String("url_host", req.URL.Host),
		zap.Int("files", len(form.FilePaths)),
		zap.Int("bytes", body.Len()),
	)

	resp, err := doer.Do(req)
	if err != nil {
		r.closeBody(resp)
		return "", boxsync.NewOpError(opSubmit, boxsync.KindTransport, utils.WrapRequestError(err))
	}

	return r.readResponse(resp)
}

// SubmitFilesAsync encodes form and starts the exchange, returning as soon as it is under way.
// c is completed exactly once, on another goroutine, with the response text or the failure.
//
// A nil c, an unreadable file or a bad client configuration is returned here instead, before any
// network activity, and c is never completed.
func (r *Request) SubmitFilesAsync(ctx context.Context, form multipart.Form, c Completer) error {
	if c == nil {
		return boxsync.NewOpError(opSubmitAsync, boxsync.KindPrecondition, boxsync.ErrNilCallback)
	}

	body, err := r.encoder.Encode(form)
	if err != nil {
		return err
	}

	doer, err := r.Client()
	if err != nil {
		return err
	}

	pr, pw := io.Pipe()
	req, err := r.newHTTPRequest(ctx, http.MethodPost, pr, int64(body.Len()))
	if err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return boxsync.NewOpError(opSubmitAsync, boxsync.KindPrecondition, err)
	}
	req.Header.Set("Content-Type", body.ContentType())
	// Redirects and transport retries replay the encoded body instead of the consumed pipe.
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body.Bytes)), nil
	}

	r.logger.Debug("starting asynchronous multipart request",
		zap.String("url_host", req.URL.Host),
		zap.Int("files", len(form.FilePaths)),
		zap.Int("bytes", body.Len()),
	)

	done := make(chan roundTrip, 1)
	go func() {
		resp, err := doer.Do(req)
		// The transport normally closes the body itself. Closing it again releases a writer
		// still blocked on a Doer that returned without draining it.
		_ = pr.Close()
		done <- roundTrip{resp: resp, err: err}
	}()

	go r.writeAndComplete(pw, body.Bytes, done, c)

	return nil
}

// writeAndComplete writes payload into the request pipe, then reads the response once the round
// trip resolves. A response always wins over a failed write: the server may answer before it has
// consumed the whole body.
func (r *Request) writeAndComplete(pw *io.PipeWriter, payload []byte, done <-chan roundTrip, c Completer) {
	_, werr := pw.Write(payload)
	_ = pw.CloseWithError(werr)

	rt := <-done

	if rt.err != nil {
		r.closeBody(rt.resp)
		wrapped := utils.WrapRequestError(rt.err)
		if werr != nil {
			wrapped = utils.WrapWriteError(rt.err)
		}
		r.deliver(c, "", boxsync.NewOpError(opSubmitAsync, boxsync.KindTransport, wrapped))
		return
	}

	if rt.resp == nil {
		cause := werr
		if cause == nil {
			cause = errNoResponse
		}
		r.deliver(c, "", boxsync.NewOpError(opSubmitAsync, boxsync.KindTransport, utils.WrapRequestError(cause)))
		return
	}

	if werr != nil {
		r.logger.Debug("server answered before reading the whole body",
			zap.Int("status_code", rt.resp.StatusCode),
			zap.Error(werr),
		)
	}

	status, err := r.readResponse(rt.resp)
	r.logger.Debug("asynchronous multipart request finished", zap.Int("status_code", rt.resp.StatusCode), zap.Error(err))
	r.deliver(c, status, err)
}
