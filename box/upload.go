package box

import (
	"context"

	"go.uber.org/zap"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/multipart"
	"github.com/c2fo/boxsync/options"
	"github.com/c2fo/boxsync/options/upload"
	"github.com/c2fo/boxsync/transfer"
)

const (
	endpointUpload    = "upload"
	endpointOverwrite = "overwrite"
	endpointNewCopy   = "new_copy"
)

// uploadState travels with an asynchronous upload.
type uploadState struct {
	userState any
	endpoint  string
	id        int64
}

// UploadFiles uploads paths into the folder folderID (0 is the root folder).
func (m *Manager) UploadFiles(ctx context.Context, folderID int64, paths []string, opts ...options.UploadOption) *UploadResponse {
	return m.submit(ctx, endpointUpload, folderID, paths, opts)
}

// UploadFilesAsync is UploadFiles completed through cb, which receives userState back.
func (m *Manager) UploadFilesAsync(
	ctx context.Context,
	folderID int64,
	paths []string,
	cb func(*UploadResponse),
	userState any,
	opts ...options.UploadOption,
) error {
	return m.submitAsync(ctx, endpointUpload, folderID, paths, cb, userState, opts)
}

// OverwriteFile replaces the content of fileID with the file at path.
func (m *Manager) OverwriteFile(ctx context.Context, fileID int64, path string, opts ...options.UploadOption) *UploadResponse {
	return m.submit(ctx, endpointOverwrite, fileID, []string{path}, opts)
}

// OverwriteFileAsync is OverwriteFile completed through cb.
func (m *Manager) OverwriteFileAsync(
	ctx context.Context,
	fileID int64,
	path string,
	cb func(*UploadResponse),
	userState any,
	opts ...options.UploadOption,
) error {
	return m.submitAsync(ctx, endpointOverwrite, fileID, []string{path}, cb, userState, opts)
}

// FileNewCopy uploads path as a new copy of fileID, stored next to it as "name (n).ext".
func (m *Manager) FileNewCopy(ctx context.Context, fileID int64, path string, opts ...options.UploadOption) *UploadResponse {
	return m.submit(ctx, endpointNewCopy, fileID, []string{path}, opts)
}

// FileNewCopyAsync is FileNewCopy completed through cb.
func (m *Manager) FileNewCopyAsync(
	ctx context.Context,
	fileID int64,
	path string,
	cb func(*UploadResponse),
	userState any,
	opts ...options.UploadOption,
) error {
	return m.submitAsync(ctx, endpointNewCopy, fileID, []string{path}, cb, userState, opts)
}

func (m *Manager) submit(ctx context.Context, endpoint string, id int64, paths []string, opts []options.UploadOption) *UploadResponse {
	if len(paths) == 0 {
		return &UploadResponse{Err: boxsync.NewOpError(endpoint, boxsync.KindPrecondition, boxsync.ErrNoFiles)}
	}

	req, err := m.newRequest(m.uploadURL(endpoint, id))
	if err != nil {
		return &UploadResponse{Err: err}
	}

	text, err := req.SubmitFiles(ctx, newForm(paths, opts))
	resp := newUploadResponse(text, err, nil)
	m.logger.Debug("upload finished",
		zap.String("endpoint", endpoint),
		zap.Int64("id", id),
		zap.Stringer("status", resp.Status),
		zap.Error(resp.Err),
	)
	return resp
}

func (m *Manager) submitAsync(
	ctx context.Context,
	endpoint string,
	id int64,
	paths []string,
	cb func(*UploadResponse),
	userState any,
	opts []options.UploadOption,
) error {
	if cb == nil {
		return boxsync.NewOpError(endpoint, boxsync.KindPrecondition, boxsync.ErrNilCallback)
	}
	if len(paths) == 0 {
		return boxsync.NewOpError(endpoint, boxsync.KindPrecondition, boxsync.ErrNoFiles)
	}

	req, err := m.newRequest(m.uploadURL(endpoint, id))
	if err != nil {
		return err
	}

	state, err := transfer.NewState(func(r transfer.Response[uploadState]) {
		resp := newUploadResponse(r.Status, r.Err, r.UserState.userState)
		m.logger.Debug("asynchronous upload finished",
			zap.String("endpoint", r.UserState.endpoint),
			zap.Int64("id", r.UserState.id),
			zap.Stringer("status", resp.Status),
			zap.Error(resp.Err),
		)
		cb(resp)
	}, uploadState{userState: userState, endpoint: endpoint, id: id})
	if err != nil {
		return err
	}

	return req.SubmitFilesAsync(ctx, newForm(paths, opts), state)
}

func newForm(paths []string, opts []options.UploadOption) multipart.Form {
	form := multipart.Form{FilePaths: paths}
	for _, o := range opts {
		switch o := o.(type) {
		case *upload.Shared:
			form.Shared = bool(*o)
		case *upload.Message:
			form.Message = string(*o)
		case *upload.Emails:
			form.Emails = append(form.Emails, (*o)...)
		default:
		}
	}
	return form
}
