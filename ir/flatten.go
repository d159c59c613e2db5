package ir

// Order selects the traversal order used by Flatten.
type Order int

const (
	// BreadthFirst visits items level by level, children in their
	// original order.
	BreadthFirst Order = iota
	// DepthFirst visits items in pre-order, matching top to bottom
	// document order.
	DepthFirst
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "BreadthFirst"
	case DepthFirst:
		return "DepthFirst"
	}
	return "<unknown order>"
}

// Flatten returns every item in the subtree at root exactly once,
// root first, in the given order.
func Flatten(root *Item, order Order) []*Item {
	q := []*Item{root}
	res := make([]*Item, 0, 16)
	for len(q) > 0 {
		var e *Item
		if order == DepthFirst {
			e = q[len(q)-1]
			q = q[:len(q)-1]
		} else {
			e = q[0]
			q = q[1:]
		}
		res = append(res, e)
		if order == DepthFirst {
			// push in reverse so children pop left to right
			for i := len(e.Children) - 1; i >= 0; i-- {
				q = append(q, e.Children[i])
			}
		} else {
			q = append(q, e.Children...)
		}
	}
	return res
}
