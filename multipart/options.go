package multipart

import (
	"github.com/spf13/afero"

	"github.com/c2fo/boxsync/options"
)

const (
	optionNameBoundary       = "boundary"
	optionNameCollisionCheck = "collisionCheck"
	optionNameFs             = "fs"
)

// WithBoundary fixes the boundary token instead of generating one.
// The token must be 1 to 70 characters from the RFC 2046 boundary alphabet.
func WithBoundary(boundary string) options.NewClientOption[Encoder] {
	return &boundaryOpt{boundary: boundary}
}

type boundaryOpt struct {
	boundary string
}

func (o *boundaryOpt) Apply(e *Encoder) {
	e.boundary = o.boundary
}

func (o *boundaryOpt) NewClientOptionName() string {
	return optionNameBoundary
}

// WithCollisionCheck makes Encode fail with boxsync.ErrBoundaryCollision when the boundary token
// occurs in a value, a filename or file content. Off by default.
func WithCollisionCheck(enabled bool) options.NewClientOption[Encoder] {
	return &collisionCheckOpt{enabled: enabled}
}

type collisionCheckOpt struct {
	enabled bool
}

func (o *collisionCheckOpt) Apply(e *Encoder) {
	e.collisionCheck = o.enabled
}

func (o *collisionCheckOpt) NewClientOptionName() string {
	return optionNameCollisionCheck
}

// WithFs sets the filesystem files are read from. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) options.NewClientOption[Encoder] {
	return &fsOpt{fs: fs}
}

type fsOpt struct {
	fs afero.Fs
}

func (o *fsOpt) Apply(e *Encoder) {
	e.fs = o.fs
}

func (o *fsOpt) NewClientOptionName() string {
	return optionNameFs
}
