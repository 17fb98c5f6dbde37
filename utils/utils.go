package utils

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(path string) string {
	return strings.TrimLeft(path, "/")
}

// ExpandPath expands a leading ~ to the current user's home directory.
func ExpandPath(p string) (string, error) {
	return homedir.Expand(p)
}

// BaseName returns the last element of a local file path, as sent in a multipart filename.
func BaseName(p string) string {
	return filepath.Base(p)
}

// JoinURL appends path-escaped segments to base, separated by single slashes.
//
//	JoinURL("https://upload.box.net/api/1.0/", "upload", "tok", "0") : https://upload.box.net/api/1.0/upload/tok/0
func JoinURL(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(RemoveTrailingSlash(base))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(RemoveLeadingSlash(s)))
	}
	return b.String()
}
