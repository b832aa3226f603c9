package eir

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// String renders the reference in its canonical text form, the same
// one [Ref.MarshalText] produces. Invalid references render with
// a placeholder rather than fail.
func (r Ref) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("<invalid-ref %q %q %q>", r.Lib, r.Owner, r.Name)
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*Ref)(nil)

// UnmarshalText parses the canonical reference form:
//
//	"lib/path".Name
//	"lib/path".Owner.Name
func (r *Ref) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	// 1) split at the quoted library
	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted library: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted library in reference: %q", s)
	}
	end++ // include the first quote

	lib := s[1:end]
	if lib == "" {
		return fmt.Errorf("library cannot be empty in reference: %q", s)
	}

	rest := strings.TrimPrefix(s[end+1:], ".")
	if rest == "" {
		return fmt.Errorf("reference must contain a name: %q", s)
	}

	parts := strings.Split(rest, ".")
	if len(parts) < 1 || len(parts) > 2 {
		return fmt.Errorf("reference must have 1 or 2 identifiers after library: %q", s)
	}

	for _, p := range parts {
		if !isIdent(p) {
			return fmt.Errorf("invalid identifier %q in reference %q", p, s)
		}
	}

	r.Lib = lib
	switch len(parts) {
	case 1:
		r.Owner = ""
		r.Name = parts[0]
	case 2:
		r.Owner = parts[0]
		r.Name = parts[1]
	}

	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func (r Ref) MarshalText() ([]byte, error) {
	if r.Lib == "" {
		return nil, fmt.Errorf("cannot marshal Ref: empty Lib")
	}
	if r.Name == "" {
		return nil, fmt.Errorf("cannot marshal Ref: empty Name")
	}

	// Base: "lib"
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Lib)
	b.WriteByte('"')
	b.WriteByte('.')

	// Optional owner type
	if r.Owner != "" {
		b.WriteString(r.Owner)
		b.WriteByte('.')
	}

	// Name
	b.WriteString(r.Name)

	return []byte(b.String()), nil
}
