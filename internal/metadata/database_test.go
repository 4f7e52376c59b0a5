package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameSet map[string]bool

func (s nameSet) Has(name string) bool { return s[name] }

func TestDatabase_Restrict(t *testing.T) {
	db := New(
		&Module{Name: "base"},
		&Module{Name: "sale", Manifest: Manifest{Depends: []string{"base"}}},
		&Module{Name: "stock"},
	)

	restricted := db.Restrict(nameSet{"stock": true, "base": true, "absent": true})

	assert.Equal(t, []string{"base", "stock"}, restricted.Names())
	assert.False(t, restricted.Has("sale"))
	assert.False(t, restricted.Has("absent"))
	assert.Equal(t, 3, db.Len(), "original database is untouched")

	base, ok := restricted.Module("base")
	require.True(t, ok)
	original, _ := db.Module("base")
	assert.Same(t, original, base)
}

func TestDatabase_New_ReplacesDuplicateInPlace(t *testing.T) {
	first := &Module{Name: "base"}
	second := &Module{Name: "base", Manifest: Manifest{Version: "2"}}

	db := New(first, &Module{Name: "sale"}, second)

	assert.Equal(t, []string{"base", "sale"}, db.Names())
	got, _ := db.Module("base")
	assert.Same(t, second, got)
}

func TestDatabase_NilSafe(t *testing.T) {
	var db *Database

	assert.Equal(t, 0, db.Len())
	assert.Nil(t, db.Names())
	assert.False(t, db.Has("base"))
	for range db.Modules() {
		t.Fatal("nil database yields no modules")
	}
}

func TestOrdered_SetKeepsPosition(t *testing.T) {
	o := NewOrdered[int]()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)

	assert.Equal(t, []string{"b", "a"}, o.Keys())
	v, ok := o.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		break
	}
	assert.Equal(t, []string{"b"}, seen, "iteration stops when yield returns false")
}
