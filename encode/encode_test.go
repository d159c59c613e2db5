package encode

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/invdot/inv-format/go-inv/ir"
)

func testTree() *ir.Item {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	root := ir.NewRoot().WithChildren(
		ir.New("box").WithID(id).WithChildren(
			ir.NewHoist("Tools").WithChildren(
				ir.New("hammer"),
				ir.New("saw"),
			),
		),
		ir.New("shelf"),
	)
	ir.UpdateParents(root)
	return root
}

func TestEncode(t *testing.T) {
	want := "- box [](uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23)\n" +
		"\t- [[#Tools]]\n" +
		"- shelf\n" +
		"\n# Tools\n" +
		"- hammer\n" +
		"- saw\n"
	if got := MustString(testTree()); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	root := ir.NewRoot().WithChildren(
		ir.New("a").WithChildren(ir.New("b").WithChildren(ir.New("c"))),
	)
	want := "- a\n    - b\n        - c\n"
	if got := MustString(root, Indent("    ")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Hoisted sections come out in breadth first order over the whole
// tree, independent of where the references sit.
func TestEncodeSectionOrder(t *testing.T) {
	root := ir.NewRoot().WithChildren(
		ir.New("a").WithChildren(
			ir.NewHoist("Deep").WithChildren(ir.New("x")),
		),
		ir.NewHoist("Top").WithChildren(ir.New("y")),
	)
	got := MustString(root)
	top, deep := strings.Index(got, "# Top"), strings.Index(got, "# Deep")
	if top < 0 || deep < 0 || top > deep {
		t.Errorf("section order wrong:\n%s", got)
	}
}

func TestDisplay(t *testing.T) {
	var b strings.Builder
	if err := Display(testTree(), &b); err != nil {
		t.Fatal(err)
	}
	want := "root\n" +
		"  box (c6a05ad5)\n" +
		"    *Tools\n" +
		"      hammer\n" +
		"      saw\n" +
		"  shelf\n"
	if got := b.String(); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}
