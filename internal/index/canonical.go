// Package index answers relationship questions over a metadata database:
// which definition of a logical model is canonical, where its top
// definition lives, which other modules extend it, and which views and
// actions target it.
//
// All functions are pure reads. They re-scan the database on every call and
// hold no state between calls.
package index

import (
	"slices"
	"strings"

	"github.com/erpdoc/cli/internal/metadata"
)

// Ref points at one model record inside the database.
type Ref struct {
	// Module is the owning module name.
	Module string `json:"module" yaml:"module"`

	// Key is the model key within the module.
	Key string `json:"key" yaml:"key"`

	Model *metadata.Model `json:"-" yaml:"-"`
}

// Name returns the logical name of the referenced model.
func (r Ref) Name() string {
	return r.Model.LogicalName()
}

// CanonicalModels returns one entry per logical model name, sorted by name
// case-insensitively.
//
// Modules are scanned in database order and models in module order. A model
// without `_name` is skipped. A name seen for the first time is recorded; a
// later base definition (no `_inherit`) replaces whatever was recorded, while
// a later extension leaves it alone. Among several bases the last one wins.
func CanonicalModels(db *metadata.Database) []Ref {
	var order []string
	winners := make(map[string]Ref)

	for mod := range db.Modules() {
		for key, model := range mod.Models.All() {
			if !model.HasName() {
				continue
			}
			name := model.LogicalName()
			_, seen := winners[name]
			if !seen {
				order = append(order, name)
			}
			if !seen || model.IsBase() {
				winners[name] = Ref{Module: mod.Name, Key: key, Model: model}
			}
		}
	}

	out := make([]Ref, 0, len(order))
	for _, name := range order {
		out = append(out, winners[name])
	}
	slices.SortStableFunc(out, func(a, b Ref) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
	return out
}
