package resolve

import (
	"fmt"
	"strings"

	"github.com/invdot/inv-format/go-inv/debug"
	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
)

// minNameQuery is the shortest query eligible for name matching.
// Shorter fragments match too easily and are treated as typos.
const minNameQuery = 5

// Resolve maps query to exactly one item in the tree at root.
//
// A query that decodes as a full identifier matches only by
// identifier. Otherwise the query is tried, case insensitively, as a
// prefix of every item's canonical identifier text and then, when
// nameMatch is set and the query is at least five characters, as a
// prefix of every item's name. Identifier matches always win over
// name matches.
//
// Resolve is a pure function of its arguments; it fails with
// ErrNotFound or with an AmbiguousError carrying both candidate
// counts.
func Resolve(query string, root *ir.Item, nameMatch bool) (*ir.Item, error) {
	items := ir.Flatten(root, ir.BreadthFirst)

	if id, err := ident.Parse(query); err == nil {
		for _, it := range items {
			if it.ID != nil && *it.ID == id {
				return it, nil
			}
		}
		return nil, fmt.Errorf("%w: identifier %s", ErrNotFound, ident.Short(id))
	}

	q := strings.ToLower(query)
	var identCands, nameCands []*ir.Item
	for _, it := range items {
		if it.ID != nil && strings.HasPrefix(ident.Canonical(*it.ID), q) {
			identCands = append(identCands, it)
		}
		if strings.HasPrefix(strings.ToLower(it.Name), q) {
			nameCands = append(nameCands, it)
		}
	}
	if debug.Resolve() {
		debug.Logf("resolve: %q: %d identifier and %d name candidates\n",
			query, len(identCands), len(nameCands))
	}
	if len(identCands) == 1 {
		return identCands[0], nil
	}
	if nameMatch && len(query) >= minNameQuery && len(nameCands) == 1 {
		return nameCands[0], nil
	}
	if len(identCands) == 0 && len(nameCands) <= 1 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return nil, &AmbiguousError{
		Query:           query,
		IdentCandidates: len(identCands),
		NameCandidates:  len(nameCands),
	}
}
