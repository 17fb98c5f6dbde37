package box

import (
	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/status"
)

const opTranslate = "translate response"

// UploadResponse is the result of UploadFiles, OverwriteFile or FileNewCopy.
type UploadResponse struct {
	Status status.Upload
	// Files lists every file the service reported on, stored or not.
	Files     []UploadedFile
	Err       error
	UserState any
}

// UploadedFile is one file of an upload as reported by the service.
type UploadedFile struct {
	ID         int64
	FolderID   int64
	Name       string
	Shared     bool
	PublicName string
	// Error is status.FileErrorNone when the file was stored.
	Error status.FileError
}

// CreateFolderResponse is the result of CreateFolder.
type CreateFolderResponse struct {
	Status     status.CreateFolder
	FolderID   int64
	FolderName string
	Err        error
	UserState  any
}

// NodeResponse is the result of Delete, Rename, Move or Copy.
type NodeResponse struct {
	Status    status.Node
	Err       error
	UserState any
}

// ShareResponse is the result of PublicShare, PublicUnshare or PrivateShare.
type ShareResponse struct {
	Status status.Share
	// PublicName is set by a successful PublicShare.
	PublicName string
	Err        error
	UserState  any
}

// SetDescriptionResponse is the result of SetDescription.
type SetDescriptionResponse struct {
	Status    status.SetDescription
	Err       error
	UserState any
}

// translate turns response text into an envelope and a status code. A failure that left no
// response to read is returned as is with a zero code. For a non-2xx response the body is still
// translated, and the protocol error is returned unless translation itself failed.
func translate[T any](text string, callErr error, parse func(string) (T, error)) (*status.Envelope, T, error) {
	var zero T
	if callErr != nil && !boxsync.IsKind(callErr, boxsync.KindProtocol) {
		return nil, zero, callErr
	}

	env, err := status.ParseResponse(text)
	if err != nil {
		return nil, zero, boxsync.NewOpError(opTranslate, boxsync.KindProtocol, err)
	}

	code, err := parse(env.Status)
	if err != nil {
		return env, code, err
	}

	return env, code, callErr
}

func newUploadResponse(text string, callErr error, userState any) *UploadResponse {
	env, code, err := translate(text, callErr, status.ParseUpload)
	resp := &UploadResponse{Status: code, Err: err, UserState: userState}
	if env == nil {
		return resp
	}
	for _, f := range env.Files {
		// unmapped file errors stay FileErrorUnknown
		fileErr, _ := status.ParseFileError(f.Error)
		resp.Files = append(resp.Files, UploadedFile{
			ID:         f.ID,
			FolderID:   f.FolderID,
			Name:       f.Name,
			Shared:     f.Shared == 1,
			PublicName: f.PublicName,
			Error:      fileErr,
		})
	}
	return resp
}

func newCreateFolderResponse(text string, callErr error, userState any) *CreateFolderResponse {
	env, code, err := translate(text, callErr, status.ParseCreateFolder)
	resp := &CreateFolderResponse{Status: code, Err: err, UserState: userState}
	if env != nil {
		resp.FolderID = env.FolderID
		resp.FolderName = env.FolderName
	}
	return resp
}

func nodeResponseBuilder(parse func(string) (status.Node, error)) func(string, error, any) *NodeResponse {
	return func(text string, callErr error, userState any) *NodeResponse {
		_, code, err := translate(text, callErr, parse)
		return &NodeResponse{Status: code, Err: err, UserState: userState}
	}
}

func shareResponseBuilder(parse func(string) (status.Share, error)) func(string, error, any) *ShareResponse {
	return func(text string, callErr error, userState any) *ShareResponse {
		env, code, err := translate(text, callErr, parse)
		resp := &ShareResponse{Status: code, Err: err, UserState: userState}
		if env != nil {
			resp.PublicName = env.PublicName
		}
		return resp
	}
}

func newSetDescriptionResponse(text string, callErr error, userState any) *SetDescriptionResponse {
	_, code, err := translate(text, callErr, status.ParseSetDescription)
	return &SetDescriptionResponse{Status: code, Err: err, UserState: userState}
}
