package transfer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"golang.org/x/net/html/charset"

	"github.com/c2fo/boxsync"
	"github.com/c2fo/boxsync/utils"
)

// ResponseTooLargeError reports that the response body exceeded the configured limit.
type ResponseTooLargeError struct {
	Limit int64
}

func (e ResponseTooLargeError) Error() string {
	return fmt.Sprintf("response body exceeded limit of %d bytes", e.Limit)
}

// IsResponseTooLarge reports whether err indicates a response limit violation.
func IsResponseTooLarge(err error) bool {
	var limitErr ResponseTooLargeError
	return errors.As(err, &limitErr)
}

// readResponse reads, decompresses and decodes the whole body of resp, and always closes it.
func (r *Request) readResponse(resp *http.Response) (string, error) {
	defer r.closeBody(resp)

	reader, err := decodeBody(resp)
	if err != nil {
		return "", boxsync.NewOpError(opRead, boxsync.KindTransport, utils.WrapDecodeError(err))
	}

	data, err := readAllWithLimit(reader, r.responseLimit)
	if err != nil {
		return "", boxsync.NewOpError(opRead, boxsync.KindTransport, utils.WrapReadError(err))
	}

	text := string(data)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return text, &boxsync.OpError{
			Op:         opRead,
			Kind:       boxsync.KindProtocol,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response %q", resp.Status),
		}
	}

	return text, nil
}

// decodeBody undoes Content-Encoding and converts a declared non-UTF-8 charset to UTF-8.
// Setting Accept-Encoding by hand turns off the transport's own gzip handling, so it happens here.
func decodeBody(resp *http.Response) (io.Reader, error) {
	var reader io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "gzip", "x-gzip":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
		reader = gz
	case "deflate":
		br := bufio.NewReader(reader)
		if isZlibHeader(br) {
			zr, err := zlib.NewReader(br)
			if err != nil {
				return nil, err
			}
			reader = zr
		} else {
			reader = flate.NewReader(br)
		}
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}

	if name := declaredCharset(resp.Header.Get("Content-Type")); name != "" {
		enc, canonical := charset.Lookup(name)
		if enc != nil && canonical != "utf-8" {
			reader = enc.NewDecoder().Reader(reader)
		}
	}

	return reader, nil
}

// isZlibHeader reports whether the stream starts with an RFC 1950 header. Servers disagree on
// whether "deflate" means zlib-wrapped or raw deflate.
func isZlibHeader(br *bufio.Reader) bool {
	hdr, err := br.Peek(2)
	if err != nil {
		return false
	}
	return hdr[0]&0x0f == 8 && (uint16(hdr[0])<<8|uint16(hdr[1]))%31 == 0
}

func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

func readAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	lr := &io.LimitedReader{R: r, N: limit + 1}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ResponseTooLargeError{Limit: limit}
	}
	return data, nil
}
