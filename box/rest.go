package box

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/status"
	"github.com/c2fo/boxsync/transfer"
)

const (
	actionCreateFolder   = "create_folder"
	actionDelete         = "delete"
	actionRename         = "rename"
	actionMove           = "move"
	actionCopy           = "copy"
	actionPublicShare    = "public_share"
	actionPublicUnshare  = "public_unshare"
	actionPrivateShare   = "private_share"
	actionSetDescription = "set_description"
)

var (
	newDeleteResponse        = nodeResponseBuilder(status.ParseDelete)
	newRenameResponse        = nodeResponseBuilder(status.ParseRename)
	newMoveResponse          = nodeResponseBuilder(status.ParseMove)
	newCopyResponse          = nodeResponseBuilder(status.ParseCopy)
	newPublicShareResponse   = shareResponseBuilder(status.ParsePublicShare)
	newPublicUnshareResponse = shareResponseBuilder(status.ParsePublicUnshare)
	newPrivateShareResponse  = shareResponseBuilder(status.ParsePrivateShare)
)

// restState travels with an asynchronous REST action.
type restState struct {
	userState any
	action    string
}

// CreateFolder creates a folder called name under parentID.
func (m *Manager) CreateFolder(ctx context.Context, parentID int64, name string, shared bool) *CreateFolderResponse {
	text, err := m.fetch(ctx, actionCreateFolder, createFolderParams(parentID, name, shared), nil)
	return newCreateFolderResponse(text, err, nil)
}

// CreateFolderAsync is CreateFolder completed through cb.
func (m *Manager) CreateFolderAsync(
	ctx context.Context,
	parentID int64,
	name string,
	shared bool,
	cb func(*CreateFolderResponse),
	userState any,
) error {
	return fetchAsync(ctx, m, actionCreateFolder, createFolderParams(parentID, name, shared), nil, newCreateFolderResponse, cb, userState)
}

// Delete removes a file or folder.
func (m *Manager) Delete(ctx context.Context, id int64, t ObjectType) *NodeResponse {
	params, err := targetParams(t, id)
	text, err := m.fetch(ctx, actionDelete, params, err)
	return newDeleteResponse(text, err, nil)
}

// DeleteAsync is Delete completed through cb.
func (m *Manager) DeleteAsync(ctx context.Context, id int64, t ObjectType, cb func(*NodeResponse), userState any) error {
	params, err := targetParams(t, id)
	return fetchAsync(ctx, m, actionDelete, params, err, newDeleteResponse, cb, userState)
}

// Rename gives a file or folder a new name.
func (m *Manager) Rename(ctx context.Context, id int64, t ObjectType, newName string) *NodeResponse {
	params, err := renameParams(t, id, newName)
	text, err := m.fetch(ctx, actionRename, params, err)
	return newRenameResponse(text, err, nil)
}

// RenameAsync is Rename completed through cb.
func (m *Manager) RenameAsync(
	ctx context.Context,
	id int64,
	t ObjectType,
	newName string,
	cb func(*NodeResponse),
	userState any,
) error {
	params, err := renameParams(t, id, newName)
	return fetchAsync(ctx, m, actionRename, params, err, newRenameResponse, cb, userState)
}

// Move moves a file or folder into destinationFolderID.
func (m *Manager) Move(ctx context.Context, id int64, t ObjectType, destinationFolderID int64) *NodeResponse {
	params, err := destinationParams(t, id, destinationFolderID)
	text, err := m.fetch(ctx, actionMove, params, err)
	return newMoveResponse(text, err, nil)
}

// MoveAsync is Move completed through cb.
func (m *Manager) MoveAsync(
	ctx context.Context,
	id int64,
	t ObjectType,
	destinationFolderID int64,
	cb func(*NodeResponse),
	userState any,
) error {
	params, err := destinationParams(t, id, destinationFolderID)
	return fetchAsync(ctx, m, actionMove, params, err, newMoveResponse, cb, userState)
}

// Copy copies a file into destinationFolderID. Folders cannot be copied.
func (m *Manager) Copy(ctx context.Context, fileID, destinationFolderID int64) *NodeResponse {
	params, err := destinationParams(ObjectTypeFile, fileID, destinationFolderID)
	text, err := m.fetch(ctx, actionCopy, params, err)
	return newCopyResponse(text, err, nil)
}

// CopyAsync is Copy completed through cb.
func (m *Manager) CopyAsync(ctx context.Context, fileID, destinationFolderID int64, cb func(*NodeResponse), userState any) error {
	params, err := destinationParams(ObjectTypeFile, fileID, destinationFolderID)
	return fetchAsync(ctx, m, actionCopy, params, err, newCopyResponse, cb, userState)
}

// PublicShare makes a file or folder publicly reachable. password, message and emails are optional.
func (m *Manager) PublicShare(ctx context.Context, id int64, t ObjectType, password, message string, emails []string) *ShareResponse {
	params, err := publicShareParams(t, id, password, message, emails)
	text, err := m.fetch(ctx, actionPublicShare, params, err)
	return newPublicShareResponse(text, err, nil)
}

// PublicShareAsync is PublicShare completed through cb.
func (m *Manager) PublicShareAsync(
	ctx context.Context,
	id int64,
	t ObjectType,
	password, message string,
	emails []string,
	cb func(*ShareResponse),
	userState any,
) error {
	params, err := publicShareParams(t, id, password, message, emails)
	return fetchAsync(ctx, m, actionPublicShare, params, err, newPublicShareResponse, cb, userState)
}

// PublicUnshare revokes public access to a file or folder.
func (m *Manager) PublicUnshare(ctx context.Context, id int64, t ObjectType) *ShareResponse {
	params, err := targetParams(t, id)
	text, err := m.fetch(ctx, actionPublicUnshare, params, err)
	return newPublicUnshareResponse(text, err, nil)
}

// PublicUnshareAsync is PublicUnshare completed through cb.
func (m *Manager) PublicUnshareAsync(ctx context.Context, id int64, t ObjectType, cb func(*ShareResponse), userState any) error {
	params, err := targetParams(t, id)
	return fetchAsync(ctx, m, actionPublicUnshare, params, err, newPublicUnshareResponse, cb, userState)
}

// PrivateShare shares a file or folder with the given collaborators. When notify is set the server
// mails them message.
func (m *Manager) PrivateShare(ctx context.Context, id int64, t ObjectType, emails []string, message string, notify bool) *ShareResponse {
	params, err := privateShareParams(t, id, emails, message, notify)
	text, err := m.fetch(ctx, actionPrivateShare, params, err)
	return newPrivateShareResponse(text, err, nil)
}

// PrivateShareAsync is PrivateShare completed through cb.
func (m *Manager) PrivateShareAsync(
	ctx context.Context,
	id int64,
	t ObjectType,
	emails []string,
	message string,
	notify bool,
	cb func(*ShareResponse),
	userState any,
) error {
	params, err := privateShareParams(t, id, emails, message, notify)
	return fetchAsync(ctx, m, actionPrivateShare, params, err, newPrivateShareResponse, cb, userState)
}

// SetDescription sets the description of a file or folder.
func (m *Manager) SetDescription(ctx context.Context, id int64, t ObjectType, description string) *SetDescriptionResponse {
	params, err := descriptionParams(t, id, description)
	text, err := m.fetch(ctx, actionSetDescription, params, err)
	return newSetDescriptionResponse(text, err, nil)
}

// SetDescriptionAsync is SetDescription completed through cb.
func (m *Manager) SetDescriptionAsync(
	ctx context.Context,
	id int64,
	t ObjectType,
	description string,
	cb func(*SetDescriptionResponse),
	userState any,
) error {
	params, err := descriptionParams(t, id, description)
	return fetchAsync(ctx, m, actionSetDescription, params, err, newSetDescriptionResponse, cb, userState)
}

// fetch runs action synchronously. A non-nil paramsErr is returned as a precondition error
// without sending anything.
func (m *Manager) fetch(ctx context.Context, action string, params url.Values, paramsErr error) (string, error) {
	if paramsErr != nil {
		return "", boxsync.NewOpError(action, boxsync.KindPrecondition, paramsErr)
	}

	req, err := m.newRequest(m.restURL(action, params))
	if err != nil {
		return "", err
	}

	m.logger.Debug("sending rest action", zap.String("action", action))
	return req.Fetch(ctx)
}

func fetchAsync[R any](
	ctx context.Context,
	m *Manager,
	action string,
	params url.Values,
	paramsErr error,
	build func(string, error, any) *R,
	cb func(*R),
	userState any,
) error {
	if cb == nil {
		return boxsync.NewOpError(action, boxsync.KindPrecondition, boxsync.ErrNilCallback)
	}
	if paramsErr != nil {
		return boxsync.NewOpError(action, boxsync.KindPrecondition, paramsErr)
	}

	req, err := m.newRequest(m.restURL(action, params))
	if err != nil {
		return err
	}

	state, err := transfer.NewState(func(r transfer.Response[restState]) {
		m.logger.Debug("asynchronous rest action finished", zap.String("action", r.UserState.action), zap.Error(r.Err))
		cb(build(r.Status, r.Err, r.UserState.userState))
	}, restState{userState: userState, action: action})
	if err != nil {
		return err
	}

	return req.FetchAsync(ctx, state)
}

func createFolderParams(parentID int64, name string, shared bool) url.Values {
	share := "0"
	if shared {
		share = "1"
	}
	return url.Values{
		"parent_id": {strconv.FormatInt(parentID, 10)},
		"name":      {name},
		"share":     {share},
	}
}

func targetParams(t ObjectType, id int64) (url.Values, error) {
	target, err := t.target()
	if err != nil {
		return nil, err
	}
	return url.Values{
		"target":    {target},
		"target_id": {strconv.FormatInt(id, 10)},
	}, nil
}

func renameParams(t ObjectType, id int64, newName string) (url.Values, error) {
	params, err := targetParams(t, id)
	if err != nil {
		return nil, err
	}
	params.Set("new_name", newName)
	return params, nil
}

func destinationParams(t ObjectType, id, destinationFolderID int64) (url.Values, error) {
	params, err := targetParams(t, id)
	if err != nil {
		return nil, err
	}
	params.Set("destination_id", strconv.FormatInt(destinationFolderID, 10))
	return params, nil
}

func publicShareParams(t ObjectType, id int64, password, message string, emails []string) (url.Values, error) {
	params, err := targetParams(t, id)
	if err != nil {
		return nil, err
	}
	params.Set("password", password)
	params.Set("message", message)
	for _, e := range emails {
		params.Add("emails[]", e)
	}
	return params, nil
}

func privateShareParams(t ObjectType, id int64, emails []string, message string, notify bool) (url.Values, error) {
	params, err := targetParams(t, id)
	if err != nil {
		return nil, err
	}
	for _, e := range emails {
		params.Add("emails[]", e)
	}
	params.Set("message", message)
	params.Set("notify", strconv.FormatBool(notify))
	return params, nil
}

func descriptionParams(t ObjectType, id int64, description string) (url.Values, error) {
	params, err := targetParams(t, id)
	if err != nil {
		return nil, err
	}
	params.Set("description", description)
	return params, nil
}
