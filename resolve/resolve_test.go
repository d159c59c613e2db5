package resolve

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/invdot/inv-format/go-inv/ident"
	"github.com/invdot/inv-format/go-inv/ir"
)

func tree(items ...*ir.Item) *ir.Item {
	root := ir.NewRoot().WithChildren(items...)
	ir.UpdateParents(root)
	return root
}

func TestResolveFullIdentifier(t *testing.T) {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	a := ir.New("a").WithID(id)
	root := tree(a, ir.New("b"))

	for _, q := range []string{
		ident.Canonical(id),
		ident.Compact(id),
		ident.Link(id),
	} {
		got, err := Resolve(q, root, true)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", q, err)
		}
		if got != a {
			t.Errorf("Resolve(%q) = %v, want a", q, got)
		}
	}

	// a full identifier that is absent never falls back to prefix
	// matching
	_, err := Resolve(uuid.New().String(), root, true)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestResolveIdentifierPrefix(t *testing.T) {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	a := ir.New("a").WithID(id)
	root := tree(a, ir.New("b"))

	got, err := Resolve("c6a05", root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != a {
		t.Errorf("got %v, want a", got)
	}
}

// An identifier prefix match beats a name prefix match on the same
// query.
func TestResolveIdentifierWins(t *testing.T) {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	a := ir.New("a").WithID(id)
	b := ir.New("c6a05ad5 junk drawer")
	root := tree(a, b)

	got, err := Resolve("c6a05ad5", root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != a {
		t.Errorf("got %q, want the identified item", got.Name)
	}
}

func TestResolveNameMatch(t *testing.T) {
	a := ir.New("Toolbox")
	root := tree(a, ir.New("Shelf"))

	got, err := Resolve("toolb", root, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != a {
		t.Errorf("got %v, want Toolbox", got)
	}

	// same query with name matching off
	if _, err := Resolve("toolb", root, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("nameMatch off: got %v, want ErrNotFound", err)
	}

	// fragments under five characters never match by name
	if _, err := Resolve("Tool", root, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("short fragment: got %v, want ErrNotFound", err)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	root := tree(ir.New("Box one"), ir.New("Box two"))

	_, err := Resolve("Box", root, true)
	var amb *AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("got %v, want AmbiguousError", err)
	}
	if amb.IdentCandidates != 0 || amb.NameCandidates != 2 {
		t.Errorf("candidates = (%d, %d), want (0, 2)", amb.IdentCandidates, amb.NameCandidates)
	}
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("AmbiguousError does not unwrap to ErrAmbiguous")
	}
}

func TestResolveDeterministic(t *testing.T) {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	root := tree(ir.New("Toolbox").WithID(id), ir.New("Shelf"))
	first, err := Resolve("toolb", root, true)
	if err != nil {
		t.Fatal(err)
	}
	for range 8 {
		got, err := Resolve("toolb", root, true)
		if err != nil || got != first {
			t.Fatalf("resolution changed: %v, %v", got, err)
		}
	}
}
