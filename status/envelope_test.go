package status

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EnvelopeTestSuite struct {
	suite.Suite
}

func (s *EnvelopeTestSuite) TestUploadResponse() {
	text := `<?xml version="1.0" encoding="ISO-8859-1"?>
<response>
  <status>upload_some_files_failed</status>
  <files>
    <file file_name="report.pdf" id="1001" folder_id="0" shared="1" public_name="abc123"/>
    <file file_name="café.bin" error="filesize_limit_exceeded"/>
  </files>
</response>`

	env, err := ParseResponse(text)
	s.Require().NoError(err)
	s.Equal("upload_some_files_failed", env.Status)
	s.Require().Len(env.Files, 2)

	s.Equal(File{Name: "report.pdf", ID: 1001, FolderID: 0, Shared: 1, PublicName: "abc123"}, env.Files[0])
	s.Equal("café.bin", env.Files[1].Name)
	s.Equal("filesize_limit_exceeded", env.Files[1].Error)
}

func (s *EnvelopeTestSuite) TestRestResponses() {
	env, err := ParseResponse(`<response><status>create_ok</status><folder><folder_id>77</folder_id><folder_name>docs</folder_name></folder></response>`)
	s.Require().NoError(err)
	s.Equal("create_ok", env.Status)
	s.EqualValues(77, env.FolderID)
	s.Equal("docs", env.FolderName)

	env, err = ParseResponse(`<response><status>share_ok</status><public_name>xyz</public_name></response>`)
	s.Require().NoError(err)
	s.Equal("xyz", env.PublicName)
}

func (s *EnvelopeTestSuite) TestBareStatus() {
	env, err := ParseResponse("  s_delete_node\r\n")
	s.Require().NoError(err)
	s.Equal("s_delete_node", env.Status)
	s.Empty(env.Files)
}

func (s *EnvelopeTestSuite) TestMalformed() {
	_, err := ParseResponse("<response><status>upload_ok</status>")
	s.Require().Error(err)
	s.Contains(err.Error(), "decode error")
}

func TestEnvelopeTestSuite(t *testing.T) {
	suite.Run(t, new(EnvelopeTestSuite))
}
