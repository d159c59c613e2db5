package ident

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefix marks identifier text as stored in document links.
const Prefix = "uuid:"

const (
	canonicalLen = 36
	compactLen   = 22
	shortLen     = 8
)

// Parse decodes identifier text in either the 36 character canonical
// hex-and-hyphen form or the 22 character URL-safe base64 form, with
// or without the "uuid:" prefix. Any other input fails with
// ErrInvalidIdentifier.
func Parse(s string) (uuid.UUID, error) {
	ref := strings.TrimPrefix(s, Prefix)
	switch len(ref) {
	case canonicalLen:
		id, err := uuid.Parse(ref)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, s, err)
		}
		return id, nil
	case compactLen:
		// the compact form strips the trailing "==" padding
		d, err := base64.URLEncoding.DecodeString(ref + "==")
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, s, err)
		}
		id, err := uuid.FromBytes(d)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, s, err)
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
}

// Canonical returns the 36 character form used in stored links.
func Canonical(id uuid.UUID) string {
	return id.String()
}

// Compact returns the 22 character URL-safe base64 form of the raw
// identifier bytes, padding stripped.
func Compact(id uuid.UUID) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(id[:]), "=")
}

// Short returns the first 8 characters of the canonical form, for
// compact human display.
func Short(id uuid.UUID) string {
	return Canonical(id)[:shortLen]
}

// Link renders id as it appears in a stored document link target.
func Link(id uuid.UUID) string {
	return Prefix + Canonical(id)
}
