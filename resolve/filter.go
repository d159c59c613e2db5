package resolve

import (
	"fmt"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
)

// itemEnv is the expression environment for one item.
type itemEnv struct {
	Name    string `expr:"name"`
	Ident   string `expr:"ident"`
	Short   string `expr:"short"`
	Hoisted bool   `expr:"hoisted"`
	Depth   int    `expr:"depth"`
	Path    string `expr:"path"`
}

// Filter returns the items, in document order, for which the boolean
// expression src holds. The expression sees name, ident, short,
// hoisted, depth and path for each item; the synthetic root is
// excluded. Parent links must be current for path and depth.
func Filter(src string, root *ir.Item) ([]*ir.Item, error) {
	prg, err := expr.Compile(src, expr.Env(itemEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	var res []*ir.Item
	for _, it := range ir.Flatten(root, ir.DepthFirst) {
		if it == root {
			continue
		}
		ok, err := match(prg, it)
		if err != nil {
			return nil, fmt.Errorf("filter %q: item %q: %w", src, it.Name, err)
		}
		if ok {
			res = append(res, it)
		}
	}
	return res, nil
}

func match(prg *vm.Program, it *ir.Item) (bool, error) {
	env := itemEnv{
		Name:    it.Name,
		Hoisted: it.Hoisted,
	}
	if it.ID != nil {
		env.Ident = ident.Canonical(*it.ID)
		env.Short = ident.Short(*it.ID)
	}
	var trail []string
	for p := it; p != nil && p.Parent != nil; p = p.Parent {
		trail = append(trail, p.Name)
	}
	slices.Reverse(trail)
	env.Depth = len(trail)
	env.Path = strings.Join(trail, "/")
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, _ := out.(bool)
	return b, nil
}
