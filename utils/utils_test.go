package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/boxsync/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

func (s *utilsSuite) TestRemoveSlashes() {
	s.Equal("https://upload.box.net/api/1.0", utils.RemoveTrailingSlash("https://upload.box.net/api/1.0//"))
	s.Equal("upload", utils.RemoveLeadingSlash("/upload"))
}

func (s *utilsSuite) TestJoinURL() {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{
			base:     "https://upload.box.net/api/1.0/",
			segments: []string{"upload", "tok", "0"},
			expected: "https://upload.box.net/api/1.0/upload/tok/0",
		},
		{
			base:     "https://upload.box.net/api/1.0",
			segments: []string{"/overwrite", "a b", "12"},
			expected: "https://upload.box.net/api/1.0/overwrite/a%20b/12",
		},
		{
			base:     "http://127.0.0.1:8080",
			segments: nil,
			expected: "http://127.0.0.1:8080",
		},
	}

	for _, tt := range tests {
		s.Equal(tt.expected, utils.JoinURL(tt.base, tt.segments...))
	}
}

func (s *utilsSuite) TestExpandPath() {
	home, err := os.UserHomeDir()
	s.Require().NoError(err)

	got, err := utils.ExpandPath("~/uploads/a.txt")
	s.Require().NoError(err)
	s.Equal(filepath.Join(home, "uploads", "a.txt"), got)

	got, err = utils.ExpandPath("/abs/a.txt")
	s.Require().NoError(err)
	s.Equal("/abs/a.txt", got, "absolute paths are untouched")
}

func (s *utilsSuite) TestBaseName() {
	s.Equal("a.txt", utils.BaseName("/tmp/dir/a.txt"))
	s.Equal("a.txt", utils.BaseName("a.txt"))
}

func (s *utilsSuite) TestUnixTime() {
	s.Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), utils.FromUnixTime(0))
	s.Equal(time.Date(2009, 2, 13, 23, 31, 30, 0, time.UTC), utils.FromUnixTime(1234567890))
	s.Equal(time.Date(2009, 2, 13, 23, 31, 30, 500000000, time.UTC), utils.FromUnixTime(1234567890.5))

	t := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	s.InDelta(float64(t.Unix()), utils.ToUnixTime(t), 1e-6)
	s.True(t.Equal(utils.FromUnixTime(utils.ToUnixTime(t))))
}

func TestUtils(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
