package ir

import "github.com/google/uuid"

// Item is a single node in the inventory tree.
//
// ID is optional and, when present, unique across the document.
// Hoisted marks an item whose children are stored in a separate
// top-level document section rather than inline at the item's nested
// location.
//
// Parent is derived from the Children slices by UpdateParents; it is
// never authoritative.
type Item struct {
	Name     string
	ID       *uuid.UUID
	Children []*Item
	Parent   *Item
	Hoisted  bool
}

// NewRoot returns the synthetic root of a document tree. Its name
// carries no meaning and is never rendered.
func NewRoot() *Item {
	return &Item{Name: "root"}
}

func New(name string) *Item {
	return &Item{Name: name}
}

// NewHoist returns a hoisted item, the in-tree stand-in for a
// subtree stored in its own document section.
func NewHoist(name string) *Item {
	return &Item{Name: name, Hoisted: true}
}

func (i *Item) WithID(id uuid.UUID) *Item {
	i.ID = &id
	return i
}

func (i *Item) WithChildren(children ...*Item) *Item {
	i.Children = children
	return i
}
