package markup

import (
	"errors"
	"testing"
)

func TestConvertDocument(t *testing.T) {
	src := "- box [](uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23)\n" +
		"\t- [[#Tools]]\n" +
		"\n# Tools\n" +
		"- hammer\n"
	nodes, err := Convert([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d top level nodes, want 3", len(nodes))
	}
	if nodes[0].Kind != List || nodes[1].Kind != Heading || nodes[2].Kind != List {
		t.Fatalf("top level kinds %v %v %v", nodes[0].Kind, nodes[1].Kind, nodes[2].Kind)
	}
	if nodes[1].Text != "Tools" {
		t.Errorf("heading text %q, want Tools", nodes[1].Text)
	}

	li := nodes[0].Children[0]
	if li.Kind != ListItem || len(li.Children) != 3 {
		t.Fatalf("list item %v with %d children", li.Kind, len(li.Children))
	}
	if li.Children[0].Kind != Text || li.Children[0].Text != "box" {
		t.Errorf("label node %v %q", li.Children[0].Kind, li.Children[0].Text)
	}
	if li.Children[1].Kind != Link || li.Children[1].Dest != "uuid:c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23" {
		t.Errorf("link node %v %q", li.Children[1].Kind, li.Children[1].Dest)
	}
	sub := li.Children[2]
	if sub.Kind != List || len(sub.Children) != 1 {
		t.Fatalf("sublist %v with %d children", sub.Kind, len(sub.Children))
	}
	ref := sub.Children[0].Children[0]
	if ref.Kind != HoistRef || ref.Text != "Tools" {
		t.Errorf("hoist ref %v %q", ref.Kind, ref.Text)
	}
}

func TestConvertSeparateLines(t *testing.T) {
	// a lazy continuation line is a second text run, not part of the
	// first
	nodes, err := Convert([]byte("- one\ntwo\n"))
	if err != nil {
		t.Fatal(err)
	}
	li := nodes[0].Children[0]
	if len(li.Children) != 2 {
		t.Fatalf("got %d inline nodes, want 2", len(li.Children))
	}
	for i, want := range []string{"one", "two"} {
		if li.Children[i].Kind != Text || li.Children[i].Text != want {
			t.Errorf("node %d: %v %q, want Text %q",
				i, li.Children[i].Kind, li.Children[i].Text, want)
		}
	}
}

func TestConvertUnsupported(t *testing.T) {
	for _, in := range []string{
		"plain paragraph\n",
		"## second level\n",
		"> quoted\n",
		"    indented code\n",
	} {
		if _, err := Convert([]byte(in)); !errors.Is(err, ErrUnsupportedMarkup) {
			t.Errorf("Convert(%q): got %v, want ErrUnsupportedMarkup", in, err)
		}
	}
}
