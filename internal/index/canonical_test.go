package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/testutil"
)

func exampleDB() *metadata.Database {
	return testutil.Database(
		testutil.Module("base", testutil.WithModel("m1", "res.partner", "")),
		testutil.Module("sale", testutil.Depends("base"),
			testutil.WithModel("m2", "res.partner", "res.partner"),
			testutil.WithModel("m3", "sale.order", ""),
			testutil.WithView("v1", "sale_order"),
		),
	)
}

type entry struct {
	name   string
	module string
	key    string
}

func entries(refs []Ref) []entry {
	out := make([]entry, len(refs))
	for i, r := range refs {
		out[i] = entry{name: r.Name(), module: r.Module, key: r.Key}
	}
	return out
}

func TestCanonicalModels_Example(t *testing.T) {
	got := CanonicalModels(exampleDB())

	assert.Equal(t, []entry{
		{name: "res.partner", module: "base", key: "m1"},
		{name: "sale.order", module: "sale", key: "m3"},
	}, entries(got))
}

func TestCanonicalModels_Precedence(t *testing.T) {
	tests := []struct {
		name string
		db   *metadata.Database
		want []entry
	}{
		{
			name: "base encountered after extension wins",
			db: testutil.Database(
				testutil.Module("sale", testutil.WithModel("ext", "res.partner", "res.partner")),
				testutil.Module("base", testutil.WithModel("m1", "res.partner", "")),
			),
			want: []entry{{name: "res.partner", module: "base", key: "m1"}},
		},
		{
			name: "last base wins",
			db: testutil.Database(
				testutil.Module("a", testutil.WithModel("x", "res.partner", "")),
				testutil.Module("b", testutil.WithModel("y", "res.partner", "")),
			),
			want: []entry{{name: "res.partner", module: "b", key: "y"}},
		},
		{
			name: "extension only fills a gap",
			db: testutil.Database(
				testutil.Module("a", testutil.WithModel("x", "res.partner", "res.users")),
				testutil.Module("b", testutil.WithModel("y", "res.partner", "res.partner")),
			),
			want: []entry{{name: "res.partner", module: "a", key: "x"}},
		},
		{
			name: "models without _name are skipped",
			db: testutil.Database(
				testutil.Module("a",
					testutil.WithModel("pure_ext", "", "res.partner"),
					testutil.WithModel("aux", "", ""),
					testutil.WithModelRecord("null", nil),
				),
			),
			want: []entry{},
		},
		{
			name: "base later in the same module wins",
			db: testutil.Database(
				testutil.Module("a",
					testutil.WithModel("x", "res.partner", ""),
					testutil.WithModel("y", "res.partner", ""),
				),
			),
			want: []entry{{name: "res.partner", module: "a", key: "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entries(CanonicalModels(tt.db)))
		})
	}
}

func TestCanonicalModels_UniqueAndSorted(t *testing.T) {
	db := testutil.Database(
		testutil.Module("base",
			testutil.WithModel("a", "res.partner", ""),
			testutil.WithModel("b", "Zeta.model", ""),
			testutil.WithModel("c", "alpha.model", ""),
		),
		testutil.Module("sale",
			testutil.WithModel("d", "res.partner", "res.partner"),
			testutil.WithModel("e", "beta.model", "alpha.model"),
			testutil.WithModel("f", "ALPHA.model", ""),
		),
	)

	got := CanonicalModels(db)

	seen := make(map[string]bool)
	for _, ref := range got {
		require.False(t, seen[ref.Name()], "duplicate entry for %s", ref.Name())
		seen[ref.Name()] = true
	}
	assert.Len(t, got, 5)

	for i := 1; i < len(got); i++ {
		prev, cur := strings.ToLower(got[i-1].Name()), strings.ToLower(got[i].Name())
		assert.LessOrEqual(t, prev, cur)
	}

	// names equal ignoring case keep first-appearance order
	assert.Equal(t, "alpha.model", got[0].Name())
	assert.Equal(t, "ALPHA.model", got[1].Name())
}

func TestCanonicalModels_Empty(t *testing.T) {
	assert.Empty(t, CanonicalModels(testutil.Database()))
	assert.Empty(t, CanonicalModels(nil))
}
