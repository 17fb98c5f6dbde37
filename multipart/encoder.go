package multipart

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/options"
	"github.com/c2fo/boxsync/utils"
)

const (
	// FieldMessage is the form field carrying the notification message.
	FieldMessage = "message"
	// FieldShare is the form field carrying the share flag.
	FieldShare = "share"
	// FieldEmails is the repeated form field carrying notification addresses.
	FieldEmails = "emails[]"

	fileContentType = "application/octet-stream"
	opEncode        = "encode"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Form lists the parts of an upload body.
type Form struct {
	// FilePaths are local files sent as file parts. May be empty.
	FilePaths []string
	// Shared is sent as share=1 or share=0.
	Shared bool
	// Message is sent only when non-empty.
	Message string
	// Emails are sent as one emails[] part each.
	Emails []string
}

// Body is an encoded multipart/form-data payload.
type Body struct {
	Boundary string
	Bytes    []byte
}

// ContentType returns the Content-Type header value for the body.
func (b *Body) ContentType() string {
	return "multipart/form-data;boundary=" + b.Boundary
}

// Len returns the encoded length in bytes.
func (b *Body) Len() int {
	return len(b.Bytes)
}

// NewBoundary returns a random boundary token: a v4 UUID without dashes.
func NewBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Encoder serializes Forms against a single boundary token.
type Encoder struct {
	boundary       string
	collisionCheck bool
	fs             afero.Fs
}

// NewEncoder returns an Encoder with a freshly generated boundary.
func NewEncoder(opts ...options.NewClientOption[Encoder]) *Encoder {
	e := &Encoder{
		boundary: NewBoundary(),
		fs:       afero.NewOsFs(),
	}

	options.ApplyOptions(e, opts...)

	return e
}

// Boundary returns the encoder's boundary token.
func (e *Encoder) Boundary() string {
	return e.boundary
}

// Encode reads every file in form and writes the complete body. Unreadable files are all reported
// together as a single boxsync.KindLocalIO error and no body is returned.
func (e *Encoder) Encode(form Form) (*Body, error) {
	files, err := e.readFiles(form.FilePaths)
	if err != nil {
		return nil, boxsync.NewOpError(opEncode, boxsync.KindLocalIO, utils.WrapReadError(err))
	}

	if e.collisionCheck {
		if err := e.checkCollisions(form, files); err != nil {
			return nil, boxsync.NewOpError(opEncode, boxsync.KindPrecondition, err)
		}
	}

	size := 0
	for _, f := range files {
		size += len(f.content) + 256
	}
	buf := bytes.NewBuffer(make([]byte, 0, size+512))

	w := multipart.NewWriter(buf)
	if err := w.SetBoundary(e.boundary); err != nil {
		return nil, boxsync.NewOpError(opEncode, boxsync.KindPrecondition, utils.WrapEncodeError(err))
	}

	for _, f := range files {
		if err := writeFile(w, f); err != nil {
			return nil, boxsync.NewOpError(opEncode, boxsync.KindLocalIO, utils.WrapEncodeError(err))
		}
	}

	if form.Message != "" {
		if err := w.WriteField(FieldMessage, form.Message); err != nil {
			return nil, boxsync.NewOpError(opEncode, boxsync.KindLocalIO, utils.WrapEncodeError(err))
		}
	}

	if err := w.WriteField(FieldShare, shareValue(form.Shared)); err != nil {
		return nil, boxsync.NewOpError(opEncode, boxsync.KindLocalIO, utils.WrapEncodeError(err))
	}

	for _, email := range form.Emails {
		if err := w.WriteField(FieldEmails, email); err != nil {
			return nil, boxsync.NewOpError(opEncode, boxsync.KindLocalIO, utils.WrapEncodeError(err))
		}
	}

	if err := w.Close(); err != nil {
		return nil, boxsync.NewOpError(opEncode, boxsync.KindLocalIO, utils.WrapEncodeError(err))
	}

	return &Body{Boundary: e.boundary, Bytes: buf.Bytes()}, nil
}

type fileContent struct {
	name    string
	content []byte
}

func (e *Encoder) readFiles(paths []string) ([]fileContent, error) {
	var result *multierror.Error
	files := make([]fileContent, 0, len(paths))

	for _, p := range paths {
		expanded, err := utils.ExpandPath(p)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", p, err))
			continue
		}
		content, err := afero.ReadFile(e.fs, expanded)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		files = append(files, fileContent{name: utils.BaseName(expanded), content: content})
	}

	return files, result.ErrorOrNil()
}

func (e *Encoder) checkCollisions(form Form, files []fileContent) error {
	token := []byte(e.boundary)
	values := append([]string{form.Message}, form.Emails...)
	for _, v := range values {
		if strings.Contains(v, e.boundary) {
			return boxsync.ErrBoundaryCollision
		}
	}
	for _, f := range files {
		if strings.Contains(f.name, e.boundary) || bytes.Contains(f.content, token) {
			return fmt.Errorf("%s: %w", f.name, boxsync.ErrBoundaryCollision)
		}
	}
	return nil
}

func writeFile(w *multipart.Writer, f fileContent) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uuid.NewString(), quoteEscaper.Replace(f.name)))
	h.Set("Content-Type", fileContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.content)
	return err
}

func shareValue(shared bool) string {
	if shared {
		return "1"
	}
	return "0"
}
