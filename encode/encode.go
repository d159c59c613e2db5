package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
)

type EncState struct {
	indent string
}

// Encode writes the document serialization of the tree at root.
//
// Every item except the root renders as a "- " line: a [[#Name]]
// token when hoisted, the raw name otherwise, then an empty link
// carrying the canonical identifier when one is set. Hoisted items do
// not render their children inline; after the primary tree, each
// hoisted item anywhere in the tree gets a blank line, a "# Name"
// heading and its children rendered under the same rules.
func Encode(root *ir.Item, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	if err := renderItems(w, root.Children, es); err != nil {
		return err
	}
	for _, h := range ir.Flatten(root, ir.BreadthFirst) {
		if !h.Hoisted {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n# %s\n", h.Name); err != nil {
			return err
		}
		if err := renderItems(w, h.Children, es); err != nil {
			return err
		}
	}
	return nil
}

// MustString encodes root and panics on write failure; handy for
// tests and in-memory rendering.
func MustString(root *ir.Item, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(root, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}

func renderItems(w io.Writer, items []*ir.Item, es *EncState) error {
	type frame struct {
		item  *ir.Item
		depth int
	}
	stack := make([]frame, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, frame{items[i], 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := writeLine(w, f.item, f.depth, es); err != nil {
			return err
		}
		if f.item.Hoisted {
			// children defer to the item's heading section
			continue
		}
		for i := len(f.item.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.item.Children[i], f.depth + 1})
		}
	}
	return nil
}

func writeLine(w io.Writer, item *ir.Item, depth int, es *EncState) error {
	var b strings.Builder
	for range depth {
		b.WriteString(es.indent)
	}
	b.WriteString("- ")
	if item.Hoisted {
		b.WriteString("[[#")
		b.WriteString(item.Name)
		b.WriteString("]]")
	} else {
		b.WriteString(item.Name)
	}
	if item.ID != nil {
		b.WriteString(" [](")
		b.WriteString(ident.Link(*item.ID))
		b.WriteString(")")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
