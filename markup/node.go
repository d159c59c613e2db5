package markup

// Kind discriminates the node vocabulary of the document grammar.
type Kind int

const (
	List Kind = iota
	ListItem
	Heading
	Link
	HoistRef
	Text
)

func (k Kind) String() string {
	switch k {
	case List:
		return "List"
	case ListItem:
		return "ListItem"
	case Heading:
		return "Heading"
	case Link:
		return "Link"
	case HoistRef:
		return "HoistRef"
	case Text:
		return "Text"
	}
	return "<unknown kind>"
}

// Node is one attributed node produced by the converter.
//
// Text carries the node's textual attribute: the label of a Text
// node, the heading text of a Heading, or the inner name of a
// HoistRef. Dest carries a Link's target. Only List and ListItem
// nodes have children.
type Node struct {
	Kind     Kind
	Text     string
	Dest     string
	Children []*Node
}
