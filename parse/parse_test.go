package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/invdot/inv-format/go-inv/encode"
	"github.com/invdot/inv-format/go-inv/ir"
)

type parseTest struct {
	in string
	e  error
}

var okTests = []parseTest{
	{in: ""},
	{in: "- a\n"},
	{in: "- a\n- b\n"},
	{in: "- a\n\t- b\n\t- c\n"},
	{in: "- a [](uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23)\n"},
	{in: "- a [](uuid:xqBa1X94SiOOAl1bLA5KIw)\n"},
	{in: "- [[#Tools]]\n\n# Tools\n- hammer\n"},
	{in: "- box\n\t- [[#Tools]]\n\n# Tools\n- hammer\n\t- shaft\n"},
	{in: "- [[#A]]\n- [[#B]]\n\n# A\n- x\n\n# B\n- y\n"},
	// hoisted section containing another hoist reference
	{in: "- [[#A]]\n\n# A\n- [[#B]]\n\n# B\n- deep\n"},
}

func TestParseOK(t *testing.T) {
	for _, pt := range okTests {
		if _, err := ParseString(pt.in); err != nil {
			t.Errorf("Parse(%q): %v", pt.in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	id := "uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23"
	pts := []parseTest{
		// top level paragraph
		{in: "loose text\n", e: ErrStructural},
		// wrong heading level
		{in: "## Tools\n", e: ErrStructural},
		// heading without a preceding hoist reference
		{in: "# Tools\n- hammer\n", e: ErrStructural},
		// same hoist name referenced twice
		{in: "- [[#A]]\n- [[#A]]\n\n# A\n- x\n", e: ErrStructural},
		// label and hoist reference on one item
		{in: "- stuff [[#A]]\n\n# A\n- x\n", e: ErrStructural},
		// two text runs on one item
		{in: "- one\ntwo\n", e: ErrStructural},
		// two links on one item
		{in: "- a [](" + id + ") [](" + id + ")\n", e: ErrStructural},
		// undecodable identifier
		{in: "- a [](uuid:xyz)\n", e: ErrStructural},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if err == nil {
			t.Errorf("Parse(%q): expected error", pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("Parse(%q): got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseTree(t *testing.T) {
	root, err := ParseString(
		"- box [](uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23)\n" +
			"\t- [[#Tools]]\n" +
			"\n# Tools\n" +
			"- hammer\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	box := root.Children[0]
	if box.Name != "box" || box.ID == nil || box.Hoisted {
		t.Errorf("box = %q id=%v hoisted=%v", box.Name, box.ID, box.Hoisted)
	}
	tools := box.Children[0]
	if tools.Name != "Tools" || !tools.Hoisted {
		t.Errorf("tools = %q hoisted=%v", tools.Name, tools.Hoisted)
	}
	hammer := tools.Children[0]
	if hammer.Name != "hammer" {
		t.Errorf("hammer = %q", hammer.Name)
	}
	// parent links are set on the whole tree
	if hammer.Parent != tools || tools.Parent != box || box.Parent != root {
		t.Errorf("parent links not wired")
	}
}

func TestParseFilename(t *testing.T) {
	_, err := ParseString("## nope\n", WithFilename("inv.md"))
	if err == nil || !strings.Contains(err.Error(), "inv.md") {
		t.Errorf("error %v does not name the file", err)
	}
}

// Re-rendering a parsed document and parsing it again must yield an
// equal tree, and the second render must be byte identical.
func TestParseEncodeRoundTrip(t *testing.T) {
	for _, pt := range okTests {
		root, err := ParseString(pt.in)
		if err != nil {
			t.Fatal(err)
		}
		out := encode.MustString(root)
		again, err := ParseString(out)
		if err != nil {
			t.Fatalf("reparse of %q: %v", out, err)
		}
		if !ir.Equal(root, again) {
			t.Errorf("round trip of %q changed the tree:\n%s", pt.in, out)
		}
		if out2 := encode.MustString(again); out2 != out {
			t.Errorf("second render differs:\n%q\n%q", out, out2)
		}
	}
}
