package document

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	apperrors "github.com/shhac/textviewer/internal/errors"
)

// DefaultCharset is used when no charset is configured.
const DefaultCharset = "utf-8"

// Codec reads and writes document text in one fixed charset.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// NewCodec returns a codec for the named charset. Names are resolved with
// the WHATWG encoding labels, so "utf-8", "latin1" and "windows-1252" all work.
func NewCodec(charset string) (*Codec, error) {
	name := strings.TrimSpace(charset)
	if name == "" {
		name = DefaultCharset
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCharset, charset)
	}

	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}

	return &Codec{name: canonical, enc: enc}, nil
}

// Charset returns the canonical charset name.
func (c *Codec) Charset() string {
	return c.name
}

// Decode reads all of r and converts it to text. Invalid byte sequences
// become U+FFFD.
func (c *Codec) Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, c.enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("read %s text: %w", c.name, err)
	}
	return string(data), nil
}

// Encode writes text to w. Runes the charset cannot represent fail the write.
func (c *Codec) Encode(w io.Writer, text string) error {
	tw := transform.NewWriter(w, c.enc.NewEncoder())
	if _, err := io.WriteString(tw, text); err != nil {
		return fmt.Errorf("write %s text: %w", c.name, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("flush %s text: %w", c.name, err)
	}
	return nil
}
