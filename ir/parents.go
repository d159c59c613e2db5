package ir

// UpdateParents recomputes the Parent of every item below root from
// the current Children slices. It must run after any mutation of a
// Children slice before the tree is read again.
func UpdateParents(root *Item) {
	stack := []*Item{root}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range e.Children {
			c.Parent = e
			stack = append(stack, c)
		}
	}
}
