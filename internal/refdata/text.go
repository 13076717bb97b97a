package refdata

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// textEncoding is one candidate encoding for tabular text files.
type textEncoding struct {
	name string
	enc  encoding.Encoding
}

// textEncodings are tried in order. x/text's Shift_JIS decoder accepts the
// CP932 extensions, so one entry covers both Windows and JIS variants.
var textEncodings = []textEncoding{
	{"utf-8", unicode.UTF8},
	{"utf-8-sig", unicode.UTF8BOM},
	{"shift_jis", japanese.ShiftJIS},
}

var errReplacement = errors.New("input contains bytes invalid in this encoding")

// DecodeError reports that no candidate encoding could decode a file.
type DecodeError struct {
	Path  string
	Tried []string
	Err   error // last decoding failure
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: tried %s: %v", e.Path, strings.Join(e.Tried, ", "), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// LoadText reads path and decodes it with the first candidate encoding that
// succeeds without a decoding error.
func LoadText(path string) (string, error) {
	text, _, err := loadText(path)
	return text, err
}

// loadText is LoadText that also reports the encoding that won.
func loadText(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	text, name, err := decodeText(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return "", "", err
	}
	return text, name, nil
}

func decodeText(data []byte) (string, string, error) {
	de := &DecodeError{}
	for _, te := range textEncodings {
		de.Tried = append(de.Tried, te.name)
		text, err := decodeStrict(data, te.enc)
		if err != nil {
			de.Err = fmt.Errorf("%s: %w", te.name, err)
			continue
		}
		return text, te.name, nil
	}
	return "", "", de
}

// decodeStrict decodes data and rejects output in which the decoder had to
// substitute U+FFFD for undecodable input.
func decodeStrict(data []byte, enc encoding.Encoding) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	const replacement = "\uFFFD"
	if bytes.Count(out, []byte(replacement)) > bytes.Count(data, []byte(replacement)) {
		return "", errReplacement
	}
	return string(out), nil
}
