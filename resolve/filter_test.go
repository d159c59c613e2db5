package resolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/invdot/inv-format/go-inv/ir"
)

func filterTree() *ir.Item {
	id := uuid.MustParse("c6a05ad5-7f78-4a23-8e02-5d5b2c0e4a23")
	return tree(
		ir.New("box").WithID(id).WithChildren(
			ir.NewHoist("Tools").WithChildren(
				ir.New("hammer"),
				ir.New("saw"),
			),
		),
		ir.New("shelf"),
	)
}

func filterNames(t *testing.T, src string) []string {
	t.Helper()
	items, err := Filter(src, filterTree())
	if err != nil {
		t.Fatalf("Filter(%q): %v", src, err)
	}
	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

func TestFilter(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want []string
	}{
		{`hoisted`, []string{"Tools"}},
		{`depth == 1`, []string{"box", "shelf"}},
		{`name startsWith "s"`, []string{"saw", "shelf"}},
		{`path contains "Tools/"`, []string{"hammer", "saw"}},
		{`short == "c6a05ad5"`, []string{"box"}},
		{`ident == ""`, []string{"Tools", "hammer", "saw", "shelf"}},
		{`false`, nil},
	} {
		if got := filterNames(t, tc.src); !cmp.Equal(tc.want, got) {
			t.Errorf("Filter(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestFilterBadExpression(t *testing.T) {
	for _, src := range []string{`name +`, `depth`, `nosuch == 1`} {
		if _, err := Filter(src, filterTree()); err == nil {
			t.Errorf("Filter(%q): expected error", src)
		}
	}
}
