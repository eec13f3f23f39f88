package domain

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const DefaultEncoding = "utf-8"

// Encoding is the text encoding used when reading and writing files. The
// zero value is UTF-8. It implements pflag.Value.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// ParseEncoding looks up an encoding by its WHATWG label, e.g. "utf-8",
// "latin1" or "windows-1252".
func ParseEncoding(label string) (Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}
	return Encoding{name: name, enc: enc}, nil
}

// KnownEncodings returns a short list of labels for help text.
func KnownEncodings() string {
	return strings.Join([]string{"utf-8", "utf-16le", "utf-16be", "iso-8859-1", "windows-1252", "shift_jis"}, ", ")
}

func (e *Encoding) String() string {
	if e.name == "" {
		return DefaultEncoding
	}
	return e.name
}

func (e *Encoding) Set(label string) error {
	parsed, err := ParseEncoding(label)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e *Encoding) Type() string {
	return "encoding"
}

func (e *Encoding) isUTF8() bool {
	return e.name == "" || e.name == DefaultEncoding
}

// Decode converts raw file bytes to text. Invalid input is an error rather
// than being replaced, whatever the encoding.
func (e *Encoding) Decode(data []byte) (string, error) {
	if e.isUTF8() {
		if !utf8.Valid(data) {
			return "", ErrUndecodable
		}
		return string(data), nil
	}
	decoded, err := e.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if e.replacedInvalid(data, decoded) {
		return "", ErrUndecodable
	}
	return string(decoded), nil
}

// replacedInvalid reports whether the decoder substituted U+FFFD for bytes
// that were not an encoded U+FFFD in data.
func (e *Encoding) replacedInvalid(data, decoded []byte) bool {
	found := bytes.Count(decoded, []byte(string(utf8.RuneError)))
	if found == 0 {
		return false
	}
	encoded, err := e.enc.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	if err != nil {
		return true
	}
	return found > bytes.Count(data, encoded)
}

// Encode converts text to bytes, failing on runes the encoding cannot
// represent.
func (e *Encoding) Encode(content string) ([]byte, error) {
	if e.isUTF8() {
		return []byte(content), nil
	}
	encoded, err := e.enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("failed to encode content as %s: %w", e.name, err)
	}
	return encoded, nil
}
