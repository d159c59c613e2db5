package encode

import (
	"io"
	"strings"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
)

type displayState struct {
	colors *Colors
}

type DisplayOption func(*displayState)

func DisplayColors(c *Colors) DisplayOption {
	return func(ds *displayState) { ds.colors = c }
}

// Display writes a human oriented listing of the subtree at root:
// one line per item, two spaces per nesting level, a * marker on
// hoisted items and the short identifier in parentheses. Unlike
// Encode, hoisted subtrees print inline at their logical location.
func Display(root *ir.Item, w io.Writer, opts ...DisplayOption) error {
	ds := &displayState{}
	for _, opt := range opts {
		opt(ds)
	}
	type frame struct {
		item  *ir.Item
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var b strings.Builder
		for range f.depth {
			b.WriteString("  ")
		}
		name := f.item.Name
		if f.item.Hoisted {
			name = "*" + name
			if ds.colors != nil {
				name = ds.colors.Hoist("%s", name)
			}
		} else if ds.colors != nil {
			name = ds.colors.Name("%s", name)
		}
		b.WriteString(name)
		if f.item.ID != nil {
			short := " (" + ident.Short(*f.item.ID) + ")"
			if ds.colors != nil {
				short = ds.colors.Ident("%s", short)
			}
			b.WriteString(short)
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for i := len(f.item.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.item.Children[i], f.depth + 1})
		}
	}
	return nil
}
