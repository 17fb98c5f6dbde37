package status

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/c2fo/boxsync/utils"
)

// Envelope is the <response> document returned by the service.
type Envelope struct {
	XMLName    xml.Name `xml:"response"`
	Status     string   `xml:"status"`
	FolderID   int64    `xml:"folder>folder_id"`
	FolderName string   `xml:"folder>folder_name"`
	PublicName string   `xml:"public_name"`
	Files      []File   `xml:"files>file"`
}

// File is one entry of the files list returned by an upload.
type File struct {
	Name       string `xml:"file_name,attr"`
	ID         int64  `xml:"id,attr"`
	FolderID   int64  `xml:"folder_id,attr"`
	Shared     int    `xml:"shared,attr"`
	PublicName string `xml:"public_name,attr"`
	Error      string `xml:"error,attr"`
}

// ParseResponse parses the service response. Text that is not an XML document is taken to be a bare
// status string.
func ParseResponse(text string) (*Envelope, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "<") {
		return &Envelope{Status: trimmed}, nil
	}

	env := &Envelope{}
	dec := xml.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(env); err != nil {
		return nil, utils.WrapDecodeError(err)
	}
	env.Status = strings.TrimSpace(env.Status)
	return env, nil
}

// charsetReader accepts any declared encoding. Response text has already been decoded to UTF-8, so a
// prolog still naming the wire charset must not be applied twice.
func charsetReader(_ string, input io.Reader) (io.Reader, error) {
	return input, nil
}
