package status

// Upload is the outcome of an upload, overwrite or new-copy request.
type Upload int

const (
	// UploadUnknown - the status string was missing or not recognised
	UploadUnknown Upload = iota
	// UploadSuccessful - every file was stored
	UploadSuccessful
	// UploadFailed - at least one file was rejected, see the per-file errors
	UploadFailed
	// UploadNotLoggedIn - the auth token is missing or expired
	UploadNotLoggedIn
	// UploadApplicationRestricted - the api key may not perform uploads
	UploadApplicationRestricted
)

var uploadStatuses = map[string]Upload{
	"upload_ok":                UploadSuccessful,
	"upload_some_files_failed": UploadFailed,
	notLoggedIn:                UploadNotLoggedIn,
	notLoggedID:                UploadNotLoggedIn,
	applicationRestricted:      UploadApplicationRestricted,
}

var uploadNames = []string{"Unknown", "Successful", "Failed", "NotLoggedIn", "ApplicationRestricted"}

func (s Upload) String() string { return name(uploadNames, int(s)) }

// ParseUpload maps an upload status string.
func ParseUpload(raw string) (Upload, error) {
	return lookup(uploadStatuses, raw, UploadUnknown)
}

// CreateFolder is the outcome of a create folder request.
type CreateFolder int

const (
	// CreateFolderUnknown - the status string was missing or not recognised
	CreateFolderUnknown CreateFolder = iota
	// CreateFolderSuccessful - the folder was created
	CreateFolderSuccessful
	// CreateFolderNoParentFolder - the parent folder does not exist
	CreateFolderNoParentFolder
	// CreateFolderNotLoggedIn - the auth token is missing or expired
	CreateFolderNotLoggedIn
	// CreateFolderApplicationRestricted - the api key may not create folders
	CreateFolderApplicationRestricted
)

var createFolderStatuses = map[string]CreateFolder{
	"create_ok":           CreateFolderSuccessful,
	"e_no_parent_folder":  CreateFolderNoParentFolder,
	notLoggedIn:           CreateFolderNotLoggedIn,
	applicationRestricted: CreateFolderApplicationRestricted,
}

var createFolderNames = []string{"Unknown", "Successful", "NoParentFolder", "NotLoggedIn", "ApplicationRestricted"}

func (s CreateFolder) String() string { return name(createFolderNames, int(s)) }

// ParseCreateFolder maps a create folder status string.
func ParseCreateFolder(raw string) (CreateFolder, error) {
	return lookup(createFolderStatuses, raw, CreateFolderUnknown)
}

// Node is the outcome of a delete, rename, move or copy request. Each action has its own success
// and failure strings; the rest are shared.
type Node int

const (
	// NodeUnknown - the status string was missing or not recognised
	NodeUnknown Node = iota
	// NodeSuccessful - the action was applied
	NodeSuccessful
	// NodeFailed - the server refused the action
	NodeFailed
	// NodeNotLoggedIn - the auth token is missing or expired
	NodeNotLoggedIn
	// NodeApplicationRestricted - the api key may not perform the action
	NodeApplicationRestricted
)

var nodeNames = []string{"Unknown", "Successful", "Failed", "NotLoggedIn", "ApplicationRestricted"}

func (s Node) String() string { return name(nodeNames, int(s)) }

func nodeTable(action string) map[string]Node {
	return map[string]Node{
		"s_" + action + "_node": NodeSuccessful,
		"e_" + action + "_node": NodeFailed,
		notLoggedIn:             NodeNotLoggedIn,
		applicationRestricted:   NodeApplicationRestricted,
	}
}

var (
	deleteStatuses = nodeTable("delete")
	renameStatuses = nodeTable("rename")
	moveStatuses   = nodeTable("move")
	copyStatuses   = nodeTable("copy")
)

// ParseDelete maps a delete status string.
func ParseDelete(raw string) (Node, error) {
	return lookup(deleteStatuses, raw, NodeUnknown)
}

// ParseRename maps a rename status string.
func ParseRename(raw string) (Node, error) {
	return lookup(renameStatuses, raw, NodeUnknown)
}

// ParseMove maps a move status string.
func ParseMove(raw string) (Node, error) {
	return lookup(moveStatuses, raw, NodeUnknown)
}

// ParseCopy maps a copy status string.
func ParseCopy(raw string) (Node, error) {
	return lookup(copyStatuses, raw, NodeUnknown)
}

// Share is the outcome of a public share, public unshare or private share request.
type Share int

const (
	// ShareUnknown - the status string was missing or not recognised
	ShareUnknown Share = iota
	// ShareSuccessful - the sharing change was applied
	ShareSuccessful
	// ShareFailed - the server refused the sharing change
	ShareFailed
	// ShareWrongNode - the target does not exist or has the wrong type
	ShareWrongNode
	// ShareNotLoggedIn - the auth token is missing or expired
	ShareNotLoggedIn
	// ShareApplicationRestricted - the api key may not change sharing
	ShareApplicationRestricted
)

var shareNames = []string{"Unknown", "Successful", "Failed", "WrongNode", "NotLoggedIn", "ApplicationRestricted"}

func (s Share) String() string { return name(shareNames, int(s)) }

var publicShareStatuses = map[string]Share{
	"share_ok":            ShareSuccessful,
	"share_error":         ShareFailed,
	wrongNode:             ShareWrongNode,
	notLoggedIn:           ShareNotLoggedIn,
	applicationRestricted: ShareApplicationRestricted,
}

var publicUnshareStatuses = map[string]Share{
	"unshare_ok":          ShareSuccessful,
	"unshare_error":       ShareFailed,
	wrongNode:             ShareWrongNode,
	notLoggedIn:           ShareNotLoggedIn,
	applicationRestricted: ShareApplicationRestricted,
}

var privateShareStatuses = map[string]Share{
	"private_share_ok":    ShareSuccessful,
	"private_share_error": ShareFailed,
	wrongNode:             ShareWrongNode,
	notLoggedIn:           ShareNotLoggedIn,
	applicationRestricted: ShareApplicationRestricted,
}

// ParsePublicShare maps a public share status string.
func ParsePublicShare(raw string) (Share, error) {
	return lookup(publicShareStatuses, raw, ShareUnknown)
}

// ParsePublicUnshare maps a public unshare status string.
func ParsePublicUnshare(raw string) (Share, error) {
	return lookup(publicUnshareStatuses, raw, ShareUnknown)
}

// ParsePrivateShare maps a private share status string.
func ParsePrivateShare(raw string) (Share, error) {
	return lookup(privateShareStatuses, raw, ShareUnknown)
}

// SetDescription is the outcome of a set description request.
type SetDescription int

const (
	// SetDescriptionUnknown - the status string was missing or not recognised
	SetDescriptionUnknown SetDescription = iota
	// SetDescriptionSuccessful - the description was stored
	SetDescriptionSuccessful
	// SetDescriptionFailed - the server refused the description
	SetDescriptionFailed
	// SetDescriptionNotLoggedIn - the auth token is missing or expired
	SetDescriptionNotLoggedIn
	// SetDescriptionApplicationRestricted - the api key may not set descriptions
	SetDescriptionApplicationRestricted
)

var setDescriptionStatuses = map[string]SetDescription{
	"s_set_description":   SetDescriptionSuccessful,
	"e_set_description":   SetDescriptionFailed,
	notLoggedIn:           SetDescriptionNotLoggedIn,
	notLoggedID:           SetDescriptionNotLoggedIn,
	applicationRestricted: SetDescriptionApplicationRestricted,
}

var setDescriptionNames = []string{"Unknown", "Successful", "Failed", "NotLoggedIn", "ApplicationRestricted"}

func (s SetDescription) String() string { return name(setDescriptionNames, int(s)) }

// ParseSetDescription maps a set description status string.
func ParseSetDescription(raw string) (SetDescription, error) {
	return lookup(setDescriptionStatuses, raw, SetDescriptionUnknown)
}

// FileError describes why a single file of an upload was rejected.
type FileError int

const (
	// FileErrorUnknown - the error attribute was not recognised
	FileErrorUnknown FileError = iota
	// FileErrorNotEnoughFreeSpace - the account has no room for the file
	FileErrorNotEnoughFreeSpace
	// FileErrorFileSizeLimitExceeded - the file is larger than the account allows
	FileErrorFileSizeLimitExceeded
	// FileErrorAccessDenied - the destination folder is not writable
	FileErrorAccessDenied
	// FileErrorNone - the file was stored
	FileErrorNone
)

var fileErrors = map[string]FileError{
	"":                        FileErrorNone,
	"not_enough_free_space":   FileErrorNotEnoughFreeSpace,
	"filesize_limit_exceeded": FileErrorFileSizeLimitExceeded,
	"access_denied":           FileErrorAccessDenied,
}

var fileErrorNames = []string{"Unknown", "NotEnoughFreeSpace", "FileSizeLimitExceeded", "AccessDenied", "None"}

func (e FileError) String() string { return name(fileErrorNames, int(e)) }

// ParseFileError maps the error attribute of an uploaded file. An empty attribute means the file
// was stored.
func ParseFileError(raw string) (FileError, error) {
	return lookup(fileErrors, raw, FileErrorUnknown)
}
