package ident

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseRoundTrip(t *testing.T) {
	for range 32 {
		id := uuid.New()
		for _, in := range []string{
			Canonical(id),
			Prefix + Canonical(id),
			Compact(id),
			Prefix + Compact(id),
		} {
			got, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", in, err)
			}
			if got != id {
				t.Errorf("Parse(%q) = %s, want %s", in, got, id)
			}
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"uuid:",
		"0815",
		"c6a05ad5-7f78-4a23-8e02",
		strings.Repeat("z", 36),
		strings.Repeat("!", 22),
		"uuid:uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("Parse(%q): got %v, want ErrInvalidIdentifier", in, err)
		}
	}
}

func TestEncodings(t *testing.T) {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	if got := Canonical(id); len(got) != 36 {
		t.Errorf("Canonical length %d", len(got))
	}
	if got := Compact(id); len(got) != 22 || strings.Contains(got, "=") {
		t.Errorf("Compact(%s) = %q", id, got)
	}
	if got := Short(id); got != "c6a05ad5" {
		t.Errorf("Short(%s) = %q", id, got)
	}
	if got := Link(id); got != "uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23" {
		t.Errorf("Link(%s) = %q", id, got)
	}
}
