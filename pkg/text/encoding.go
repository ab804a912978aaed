package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, name)
	}
	return e, nil
}

func canonicalEncoding(name string) (string, error) {
	e, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	canonical, err := htmlindex.Name(e)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, name)
	}
	return strings.ToUpper(canonical), nil
}

// Decode converts b from the named encoding into a Text tagged with that
// encoding.
func Decode(b []byte, enc string) (Text, error) {
	e, err := lookupEncoding(enc)
	if err != nil {
		return Text{}, err
	}
	canonical, err := canonicalEncoding(enc)
	if err != nil {
		return Text{}, err
	}
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return Text{}, fmt.Errorf("text: decode %s: %w", canonical, err)
	}
	return New(string(out), func(t *Text) { t.enc = canonical }), nil
}

// Encode renders t in its declared encoding.
func (t Text) Encode() ([]byte, error) {
	e, err := lookupEncoding(t.enc)
	if err != nil {
		return nil, err
	}
	out, err := e.NewEncoder().Bytes([]byte(t.s))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrUnencodable, t.Encoding(), err)
	}
	return out, nil
}

// ConvertEncoding retags t with enc after checking that every character is
// representable in it.
func (t Text) ConvertEncoding(enc string) (Text, error) {
	canonical, err := canonicalEncoding(enc)
	if err != nil {
		return t, err
	}
	out := Text{s: t.s, enc: canonical}
	if _, err := out.Encode(); err != nil {
		return t, err
	}
	return out, nil
}

// ToUTF8 retags t as UTF-8. Content is unchanged since it is always held as
// UTF-8.
func (t Text) ToUTF8() Text { return Text{s: t.s, enc: DefaultEncoding} }
