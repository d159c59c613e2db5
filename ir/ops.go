package ir

import (
	"fmt"

	"github.com/invdot/inv-format/go-inv/ident"
)

// Move detaches item from its current parent and appends it as the
// last child of into. Moving the root, or moving an item into itself
// or its own subtree, fails with ErrInvalidOperation. The caller must
// run UpdateParents afterwards.
func Move(item, into *Item) error {
	if item.Parent == nil {
		return fmt.Errorf("%w: %q has no parent", ErrInvalidOperation, item.Name)
	}
	for p := into; p != nil; p = p.Parent {
		if p == item {
			return fmt.Errorf("%w: %q is inside %q", ErrInvalidOperation, into.Name, item.Name)
		}
	}
	detach(item)
	into.Children = append(into.Children, item)
	return nil
}

// Checkout moves item to be a direct child of the document root.
func Checkout(item, root *Item) error {
	return Move(item, root)
}

// SetIdentifier parses text with the identifier codec and assigns
// the result to item.
func SetIdentifier(item *Item, text string) error {
	id, err := ident.Parse(text)
	if err != nil {
		return err
	}
	item.ID = &id
	return nil
}

func ClearIdentifier(item *Item) {
	item.ID = nil
}

func SetHoisted(item *Item, v bool) {
	item.Hoisted = v
}

func detach(item *Item) {
	p := item.Parent
	for i, c := range p.Children {
		if c == item {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			return
		}
	}
}
