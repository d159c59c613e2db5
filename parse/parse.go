// Package parse provides inventory document parsing support.
package parse

import (
	"strings"

	"github.com/invdot/inv-format/go-inv/debug"
	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
	"github.com/invdot/inv-format/go-inv/markup"
)

// Parse reads a full inventory document and returns its item tree
// with parent links recomputed.
func Parse(d []byte, opts ...ParseOption) (*ir.Item, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	nodes, err := markup.Convert(d)
	if err != nil {
		return nil, pOpts.errf("%w: %w", ErrStructural, err)
	}
	root, err := document(nodes, pOpts)
	if err != nil {
		return nil, err
	}
	ir.UpdateParents(root)
	return root, nil
}

// ParseString parses an in-memory document.
func ParseString(s string, opts ...ParseOption) (*ir.Item, error) {
	return Parse([]byte(s), opts...)
}

// document consumes the alternation of top level lists and headings.
// Lists append to the current root, which starts at the synthetic
// document root; a heading re-targets the current root at a
// previously registered hoist reference. The hoist table is local to
// one parse invocation.
func document(nodes []*markup.Node, opts *parseOpts) (*ir.Item, error) {
	root := ir.NewRoot()
	hoists := map[string]*ir.Item{}
	cur := root
	for _, n := range nodes {
		switch n.Kind {
		case markup.List:
			items, err := list(n, hoists, opts)
			if err != nil {
				return nil, err
			}
			cur.Children = append(cur.Children, items...)
		case markup.Heading:
			h, ok := hoists[n.Text]
			if !ok {
				return nil, opts.errf("%w: heading %q does not name a hoist reference", ErrStructural, n.Text)
			}
			cur = h
		default:
			return nil, opts.errf("%w: %s at top level", ErrStructural, n.Kind)
		}
	}
	if debug.Parse() {
		debug.Logf("parse: %d top level nodes, %d hoist sections\n", len(nodes), len(hoists))
	}
	return root, nil
}

func list(n *markup.Node, hoists map[string]*ir.Item, opts *parseOpts) ([]*ir.Item, error) {
	items := make([]*ir.Item, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind != markup.ListItem {
			return nil, opts.errf("%w: %s in list", ErrStructural, c.Kind)
		}
		item, err := listItem(c, hoists, opts)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func listItem(li *markup.Node, hoists map[string]*ir.Item, opts *parseOpts) (*ir.Item, error) {
	var (
		labels []string
		refs   []string
		links  []string
		subs   []*markup.Node
	)
	for _, c := range li.Children {
		switch c.Kind {
		case markup.Text:
			labels = append(labels, strings.TrimSpace(c.Text))
		case markup.HoistRef:
			refs = append(refs, strings.TrimSpace(c.Text))
		case markup.Link:
			links = append(links, c.Dest)
		case markup.List:
			subs = append(subs, c)
		default:
			return nil, opts.errf("%w: %s in list item", ErrStructural, c.Kind)
		}
	}

	var item *ir.Item
	switch {
	case len(refs) == 1 && len(labels) == 0:
		item = ir.NewHoist(refs[0])
		if _, dup := hoists[item.Name]; dup {
			return nil, opts.errf("%w: duplicate hoist reference %q", ErrStructural, item.Name)
		}
		hoists[item.Name] = item
	case len(refs) == 0 && len(labels) == 1:
		item = ir.New(labels[0])
	default:
		return nil, opts.errf("%w: list item needs exactly one label or hoist reference, got %d labels and %d references", ErrStructural, len(labels), len(refs))
	}

	if len(subs) > 1 {
		return nil, opts.errf("%w: %d nested lists under %q", ErrStructural, len(subs), item.Name)
	}
	if len(subs) == 1 {
		children, err := list(subs[0], hoists, opts)
		if err != nil {
			return nil, err
		}
		item.Children = children
	}

	if len(links) > 1 {
		return nil, opts.errf("%w: %d identifier links under %q", ErrStructural, len(links), item.Name)
	}
	if len(links) == 1 {
		id, err := ident.Parse(links[0])
		if err != nil {
			return nil, opts.errf("%w: item %q: %w", ErrStructural, item.Name, err)
		}
		item.ID = &id
	}
	return item, nil
}
