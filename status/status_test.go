package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/boxsync"
)

type StatusTestSuite struct {
	suite.Suite
}

func (s *StatusTestSuite) TestParseUpload() {
	tests := map[string]Upload{
		"upload_ok":                UploadSuccessful,
		"UPLOAD_OK":                UploadSuccessful,
		" upload_ok\n":             UploadSuccessful,
		"upload_some_files_failed": UploadFailed,
		"not_logged_in":            UploadNotLoggedIn,
		"not_logged_id":            UploadNotLoggedIn,
		"application_restricted":   UploadApplicationRestricted,
	}
	for raw, want := range tests {
		got, err := ParseUpload(raw)
		s.Require().NoError(err, raw)
		s.Equal(want, got, raw)
	}
}

func (s *StatusTestSuite) TestUnknownIsDistinctFromFailed() {
	got, err := ParseUpload("upload_maybe")
	s.Equal(UploadUnknown, got)
	s.NotEqual(UploadFailed, got)
	s.Require().Error(err)
	s.ErrorIs(err, boxsync.ErrUnknownStatus)

	var unknown *UnknownStatusError
	s.Require().True(errors.As(err, &unknown))
	s.Equal("upload_maybe", unknown.Status)
	s.Contains(err.Error(), "upload_maybe")
}

func (s *StatusTestSuite) TestZeroValuesAreUnknown() {
	s.Equal(UploadUnknown, Upload(0))
	s.Equal(CreateFolderUnknown, CreateFolder(0))
	s.Equal(NodeUnknown, Node(0))
	s.Equal(ShareUnknown, Share(0))
	s.Equal(SetDescriptionUnknown, SetDescription(0))
	s.Equal(FileErrorUnknown, FileError(0))
}

func (s *StatusTestSuite) TestParseCreateFolder() {
	got, err := ParseCreateFolder("create_ok")
	s.Require().NoError(err)
	s.Equal(CreateFolderSuccessful, got)

	got, err = ParseCreateFolder("e_no_parent_folder")
	s.Require().NoError(err)
	s.Equal(CreateFolderNoParentFolder, got)
	s.Equal("NoParentFolder", got.String())
}

func (s *StatusTestSuite) TestParseNodeActions() {
	parsers := map[string]func(string) (Node, error){
		"delete": ParseDelete,
		"rename": ParseRename,
		"move":   ParseMove,
		"copy":   ParseCopy,
	}
	for action, parse := range parsers {
		got, err := parse("s_" + action + "_node")
		s.Require().NoError(err, action)
		s.Equal(NodeSuccessful, got, action)

		got, err = parse("e_" + action + "_node")
		s.Require().NoError(err, action)
		s.Equal(NodeFailed, got, action)

		got, err = parse("not_logged_in")
		s.Require().NoError(err, action)
		s.Equal(NodeNotLoggedIn, got, action)
	}

	// success strings do not leak between actions
	got, err := ParseDelete("s_move_node")
	s.Equal(NodeUnknown, got)
	s.ErrorIs(err, boxsync.ErrUnknownStatus)
}

func (s *StatusTestSuite) TestParseShare() {
	got, err := ParsePublicShare("share_ok")
	s.Require().NoError(err)
	s.Equal(ShareSuccessful, got)

	got, err = ParsePublicShare("wrong_node")
	s.Require().NoError(err)
	s.Equal(ShareWrongNode, got)

	got, err = ParsePublicUnshare("unshare_error")
	s.Require().NoError(err)
	s.Equal(ShareFailed, got)

	_, err = ParsePublicUnshare("share_ok")
	s.ErrorIs(err, boxsync.ErrUnknownStatus)

	got, err = ParsePrivateShare("PRIVATE_SHARE_OK")
	s.Require().NoError(err)
	s.Equal(ShareSuccessful, got)

	got, err = ParsePrivateShare("private_share_error")
	s.Require().NoError(err)
	s.Equal(ShareFailed, got)

	_, err = ParsePrivateShare("share_ok")
	s.ErrorIs(err, boxsync.ErrUnknownStatus)
}

func (s *StatusTestSuite) TestParseSetDescription() {
	got, err := ParseSetDescription("s_set_description")
	s.Require().NoError(err)
	s.Equal(SetDescriptionSuccessful, got)

	got, err = ParseSetDescription("e_set_description")
	s.Require().NoError(err)
	s.Equal(SetDescriptionFailed, got)
}

func (s *StatusTestSuite) TestParseFileError() {
	tests := map[string]FileError{
		"":                        FileErrorNone,
		"not_enough_free_space":   FileErrorNotEnoughFreeSpace,
		"filesize_limit_exceeded": FileErrorFileSizeLimitExceeded,
		"access_denied":           FileErrorAccessDenied,
	}
	for raw, want := range tests {
		got, err := ParseFileError(raw)
		s.Require().NoError(err, raw)
		s.Equal(want, got, raw)
	}

	got, err := ParseFileError("disk_on_fire")
	s.Equal(FileErrorUnknown, got)
	s.ErrorIs(err, boxsync.ErrUnknownStatus)
}

func (s *StatusTestSuite) TestString() {
	s.Equal("Successful", UploadSuccessful.String())
	s.Equal("Unknown", NodeUnknown.String())
	s.Equal("AccessDenied", FileErrorAccessDenied.String())
	s.Equal("Status(42)", Upload(42).String())
}

func TestStatusTestSuite(t *testing.T) {
	suite.Run(t, new(StatusTestSuite))
}
