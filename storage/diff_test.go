package storage

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	from := "- a\n- b\n- c\n"
	to := "- a\n- x\n- c\n"
	out := FormatDiff(Diff(from, to), false)
	for _, want := range []string{" - a\n", "-- b\n", "+- x\n", " - c\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}

func TestDiffEqual(t *testing.T) {
	doc := "- a\n"
	out := FormatDiff(Diff(doc, doc), false)
	if out != " - a\n" {
		t.Errorf("got %q", out)
	}
}
