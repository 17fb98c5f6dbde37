package box

import "github.com/c2fo/boxsync"

// ObjectType names the kind of node an action targets.
type ObjectType int

const (
	// ObjectTypeUnknown is the zero ObjectType and is rejected by every action.
	ObjectTypeUnknown ObjectType = iota
	// ObjectTypeFile targets a file.
	ObjectTypeFile
	// ObjectTypeFolder targets a folder.
	ObjectTypeFolder
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeFile:
		return "file"
	case ObjectTypeFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// target returns the wire name of t.
func (t ObjectType) target() (string, error) {
	switch t {
	case ObjectTypeFile, ObjectTypeFolder:
		return t.String(), nil
	default:
		return "", boxsync.ErrUnsupportedObjectType
	}
}
