package ir

// Equal reports whether two trees agree on name, identifier, hoisted
// flag and child order at every node. Parent links are ignored.
func Equal(a, b *Item) bool {
	type pair struct{ a, b *Item }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.Name != p.b.Name || p.a.Hoisted != p.b.Hoisted {
			return false
		}
		if (p.a.ID == nil) != (p.b.ID == nil) {
			return false
		}
		if p.a.ID != nil && *p.a.ID != *p.b.ID {
			return false
		}
		if len(p.a.Children) != len(p.b.Children) {
			return false
		}
		for i := range p.a.Children {
			stack = append(stack, pair{p.a.Children[i], p.b.Children[i]})
		}
	}
	return true
}
