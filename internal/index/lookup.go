package index

import (
	"strings"

	"github.com/erpdoc/cli/internal/metadata"
)

// FindTopModule returns the module holding the first base definition of name.
// ok is false when only extensions are visible, which is a normal outcome
// after dependency filtering.
func FindTopModule(db *metadata.Database, name string) (string, bool) {
	ref, ok := FindTopModel(db, name)
	return ref.Module, ok
}

// FindTopModel returns the first model in scan order whose `_name` equals name
// and which declares no `_inherit`.
func FindTopModel(db *metadata.Database, name string) (Ref, bool) {
	for mod := range db.Modules() {
		for key, model := range mod.Models.All() {
			if model.IsBase() && model.LogicalName() == name {
				return Ref{Module: mod.Name, Key: key, Model: model}, true
			}
		}
	}
	return Ref{}, false
}

// FindNeighbours returns the models of other modules that share model's
// logical identity: its `_inherit` when present, else its `_name`. A model in
// another module matches when either its `_name` or its `_inherit` equals that
// identity. An empty identity has no neighbours. Results follow scan order.
func FindNeighbours(db *metadata.Database, currentModule string, model *metadata.Model) []Ref {
	var target string
	switch {
	case model.IsExtension():
		target = model.InheritName()
	case model.HasName():
		target = model.LogicalName()
	}
	if target == "" {
		return nil
	}

	var out []Ref
	for mod := range db.Modules() {
		if mod.Name == currentModule {
			continue
		}
		for key, other := range mod.Models.All() {
			if other == nil {
				continue
			}
			if (other.HasName() && other.LogicalName() == target) ||
				(other.IsExtension() && other.InheritName() == target) {
				out = append(out, Ref{Module: mod.Name, Key: key, Model: other})
			}
		}
	}
	return out
}

// ViewRef is a view annotated with where it was declared.
type ViewRef struct {
	Module string         `json:"module" yaml:"module"`
	ID     string         `json:"id" yaml:"id"`
	View   *metadata.View `json:"view" yaml:"view"`
}

// ActionRef is an action annotated with where it was declared.
type ActionRef struct {
	Module string           `json:"module" yaml:"module"`
	ID     string           `json:"id" yaml:"id"`
	Action *metadata.Action `json:"action" yaml:"action"`
}

// Associations lists the views and actions that target one model.
type Associations struct {
	Views   []ViewRef   `json:"views" yaml:"views"`
	Actions []ActionRef `json:"actions" yaml:"actions"`
}

// Empty reports whether nothing matched.
func (a Associations) Empty() bool {
	return len(a.Views) == 0 && len(a.Actions) == 0
}

// FindViewsAndActions returns the views and actions whose declared target
// matches modelID. Underscores count as dots on both sides, and a target may
// be qualified by the declaring module: in module "sale", a target of
// "sale_order" matches both "sale.order" and "order".
func FindViewsAndActions(db *metadata.Database, modelID string) Associations {
	var out Associations

	global := normalize(modelID)
	for mod := range db.Modules() {
		local := normalize(mod.Name + "." + modelID)
		matches := func(target string) bool {
			t := normalize(target)
			return t == global || t == local
		}

		for id, view := range mod.XML.Views.All() {
			if view != nil && matches(view.Model) {
				out.Views = append(out.Views, ViewRef{Module: mod.Name, ID: id, View: view})
			}
		}
		for id, action := range mod.XML.Actions.All() {
			if action != nil && matches(action.Model) {
				out.Actions = append(out.Actions, ActionRef{Module: mod.Name, ID: id, Action: action})
			}
		}
	}
	return out
}

func normalize(id string) string {
	return strings.ReplaceAll(id, "_", ".")
}
