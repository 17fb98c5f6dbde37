package multipart

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/boxsync"
)

type decodedPart struct {
	name     string
	filename string
	ctype    string
	content  string
}

type EncoderTestSuite struct {
	suite.Suite
	fs afero.Fs
}

func (s *EncoderTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.writeFile("/data/a.txt", "hi")
	s.writeFile("/data/b.bin", "\x00\x01\x02binary\r\n--not-a-boundary")
	s.writeFile("/data/empty.txt", "")
}

func (s *EncoderTestSuite) writeFile(name, content string) {
	s.Require().NoError(afero.WriteFile(s.fs, name, []byte(content), 0o644))
}

// decode parses body with the standard multipart grammar.
func (s *EncoderTestSuite) decode(body *Body) []decodedPart {
	mediaType, params, err := mime.ParseMediaType(body.ContentType())
	s.Require().NoError(err)
	s.Require().Equal("multipart/form-data", mediaType)
	s.Require().Equal(body.Boundary, params["boundary"])

	r := multipart.NewReader(bytes.NewReader(body.Bytes), params["boundary"])
	var parts []decodedPart
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			break
		}
		s.Require().NoError(err)
		content, err := io.ReadAll(p)
		s.Require().NoError(err)
		parts = append(parts, decodedPart{
			name:     p.FormName(),
			filename: p.FileName(),
			ctype:    p.Header.Get("Content-Type"),
			content:  string(content),
		})
	}
	return parts
}

func (s *EncoderTestSuite) TestNewBoundary() {
	b := NewBoundary()
	s.Regexp(regexp.MustCompile(`^[0-9a-f]{32}$`), b)
	s.NotEqual(b, NewBoundary(), "boundaries must be generated per call")
}

func (s *EncoderTestSuite) TestSingleFileScenario() {
	e := NewEncoder(WithFs(s.fs))

	body, err := e.Encode(Form{FilePaths: []string{"/data/a.txt"}})
	s.Require().NoError(err)

	parts := s.decode(body)
	s.Require().Len(parts, 2)

	file := parts[0]
	_, err = uuid.Parse(file.name)
	s.NoError(err, "file field name should be a generated token")
	s.Equal("a.txt", file.filename)
	s.Equal("application/octet-stream", file.ctype)
	s.Equal("hi", file.content)

	s.Equal(decodedPart{name: "share", content: "0"}, parts[1])

	s.True(bytes.HasSuffix(body.Bytes, []byte("--"+e.Boundary()+"--\r\n")), "closing boundary must be last")
	s.True(bytes.HasPrefix(body.Bytes, []byte("--"+e.Boundary()+"\r\n")), "body starts with a boundary line")
}

func (s *EncoderTestSuite) TestExactWireLayout() {
	e := NewEncoder(WithFs(s.fs), WithBoundary("b0undary"))

	body, err := e.Encode(Form{Shared: true, Message: "note", Emails: []string{"x@y.z"}})
	s.Require().NoError(err)

	expected := "--b0undary\r\n" +
		"Content-Disposition: form-data; name=\"message\"\r\n\r\n" +
		"note\r\n" +
		"--b0undary\r\n" +
		"Content-Disposition: form-data; name=\"share\"\r\n\r\n" +
		"1\r\n" +
		"--b0undary\r\n" +
		"Content-Disposition: form-data; name=\"emails[]\"\r\n\r\n" +
		"x@y.z\r\n" +
		"--b0undary--\r\n"
	s.Equal(expected, string(body.Bytes))
	s.Equal(len(expected), body.Len())
	s.Equal("multipart/form-data;boundary=b0undary", body.ContentType())
}

func (s *EncoderTestSuite) TestRoundTripCombinations() {
	fileSets := [][]string{
		nil,
		{"/data/a.txt"},
		{"/data/a.txt", "/data/b.bin", "/data/empty.txt"},
	}
	messages := []string{"", "please review", "multi\r\nline ünïcode"}
	emailSets := [][]string{nil, {"one@example.com"}, {"one@example.com", "two@example.com", "three@example.com"}}
	contents := map[string]string{
		"a.txt":     "hi",
		"b.bin":     "\x00\x01\x02binary\r\n--not-a-boundary",
		"empty.txt": "",
	}

	for _, files := range fileSets {
		for _, msg := range messages {
			for _, emails := range emailSets {
				for _, shared := range []bool{true, false} {
					name := fmt.Sprintf("files=%d/msg=%q/emails=%d/shared=%t", len(files), msg, len(emails), shared)
					s.Run(name, func() {
						form := Form{FilePaths: files, Shared: shared, Message: msg, Emails: emails}
						body, err := NewEncoder(WithFs(s.fs)).Encode(form)
						s.Require().NoError(err)

						var gotFiles []string
						var gotEmails []string
						gotMessage, gotShare, shareCount := "", "", 0
						for _, p := range s.decode(body) {
							switch {
							case p.filename != "":
								s.Equal(contents[p.filename], p.content)
								gotFiles = append(gotFiles, p.filename)
							case p.name == FieldMessage:
								gotMessage = p.content
							case p.name == FieldShare:
								gotShare = p.content
								shareCount++
							case p.name == FieldEmails:
								gotEmails = append(gotEmails, p.content)
							default:
								s.Failf("unexpected part", "%+v", p)
							}
						}

						s.Len(gotFiles, len(files))
						s.Equal(msg, gotMessage)
						s.Equal(1, shareCount, "share part is always present exactly once")
						s.Equal(shareValue(shared), gotShare)
						s.Equal(len(emails), len(gotEmails))
						if len(emails) > 0 {
							s.Equal(emails, gotEmails)
						}
					})
				}
			}
		}
	}
}

func (s *EncoderTestSuite) TestFileFieldNamesAreUnique() {
	body, err := NewEncoder(WithFs(s.fs)).Encode(Form{FilePaths: []string{"/data/a.txt", "/data/a.txt"}})
	s.Require().NoError(err)

	parts := s.decode(body)
	s.Require().Len(parts, 3)
	s.NotEqual(parts[0].name, parts[1].name)
}

func (s *EncoderTestSuite) TestFilenameQuoting() {
	s.writeFile(`/data/we"ird.txt`, "q")

	body, err := NewEncoder(WithFs(s.fs)).Encode(Form{FilePaths: []string{`/data/we"ird.txt`}})
	s.Require().NoError(err)

	parts := s.decode(body)
	s.Equal(`we"ird.txt`, parts[0].filename)
}

func (s *EncoderTestSuite) TestUnreadableFiles() {
	body, err := NewEncoder(WithFs(s.fs)).Encode(Form{
		FilePaths: []string{"/data/a.txt", "/missing/one.txt", "/missing/two.txt"},
	})
	s.Require().Error(err)
	s.Nil(body, "no partial body is produced")
	s.True(boxsync.IsKind(err, boxsync.KindLocalIO))
	s.Contains(err.Error(), "one.txt")
	s.Contains(err.Error(), "two.txt")
}

func (s *EncoderTestSuite) TestCollisionCheck() {
	boundary := "fixedboundary"
	s.writeFile("/data/collide.txt", "prefix "+boundary+" suffix")

	s.Run("disabled by default", func() {
		_, err := NewEncoder(WithFs(s.fs), WithBoundary(boundary)).Encode(Form{FilePaths: []string{"/data/collide.txt"}})
		s.NoError(err)
	})

	s.Run("file content", func() {
		_, err := NewEncoder(WithFs(s.fs), WithBoundary(boundary), WithCollisionCheck(true)).
			Encode(Form{FilePaths: []string{"/data/collide.txt"}})
		s.Require().Error(err)
		s.ErrorIs(err, boxsync.ErrBoundaryCollision)
		s.True(boxsync.IsKind(err, boxsync.KindPrecondition))
	})

	s.Run("message", func() {
		_, err := NewEncoder(WithFs(s.fs), WithBoundary(boundary), WithCollisionCheck(true)).
			Encode(Form{Message: "see " + boundary})
		s.ErrorIs(err, boxsync.ErrBoundaryCollision)
	})

	s.Run("no collision", func() {
		_, err := NewEncoder(WithFs(s.fs), WithBoundary(boundary), WithCollisionCheck(true)).
			Encode(Form{FilePaths: []string{"/data/a.txt"}, Emails: []string{"a@b.c"}})
		s.NoError(err)
	})
}

func (s *EncoderTestSuite) TestInvalidBoundary() {
	_, err := NewEncoder(WithFs(s.fs), WithBoundary("bad\nboundary")).Encode(Form{})
	s.Require().Error(err)
	s.True(boxsync.IsKind(err, boxsync.KindPrecondition))
}

func (s *EncoderTestSuite) TestOptions() {
	fs := afero.NewMemMapFs()
	tests := []struct {
		name         string
		opt          interface{ NewClientOptionName() string }
		expectedName string
		apply        func(*Encoder)
		validate     func(*Encoder)
	}{
		{
			name:         "WithBoundary",
			opt:          WithBoundary("abc"),
			expectedName: optionNameBoundary,
			apply:        WithBoundary("abc").Apply,
			validate:     func(e *Encoder) { s.Equal("abc", e.Boundary()) },
		},
		{
			name:         "WithCollisionCheck",
			opt:          WithCollisionCheck(true),
			expectedName: optionNameCollisionCheck,
			apply:        WithCollisionCheck(true).Apply,
			validate:     func(e *Encoder) { s.True(e.collisionCheck) },
		},
		{
			name:         "WithFs",
			opt:          WithFs(fs),
			expectedName: optionNameFs,
			apply:        WithFs(fs).Apply,
			validate:     func(e *Encoder) { s.Equal(fs, e.fs) },
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			e := NewEncoder()
			tt.apply(e)
			tt.validate(e)
			s.Equal(tt.expectedName, tt.opt.NewClientOptionName())
		})
	}
}

func TestEncoderTestSuite(t *testing.T) {
	suite.Run(t, new(EncoderTestSuite))
}
