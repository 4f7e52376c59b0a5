package metadata

import (
	"iter"

	"gopkg.in/yaml.v3"
)

// Database maps module names to module content, in document order.
type Database struct {
	modules Ordered[*Module]
}

// New builds a database from modules, in the given order. Module names must
// be set; a later module with the same name replaces an earlier one in place.
func New(modules ...*Module) *Database {
	db := &Database{}
	for _, m := range modules {
		db.modules.Set(m.Name, m)
	}
	return db
}

// Module returns the module with the given name.
func (d *Database) Module(name string) (*Module, bool) {
	if d == nil {
		return nil, false
	}
	return d.modules.Get(name)
}

// Has reports whether the database contains a module with the given name.
func (d *Database) Has(name string) bool {
	_, ok := d.Module(name)
	return ok
}

// Names returns the module names in database order.
func (d *Database) Names() []string {
	if d == nil {
		return nil
	}
	return d.modules.Keys()
}

// Len returns the number of modules.
func (d *Database) Len() int {
	if d == nil {
		return 0
	}
	return d.modules.Len()
}

// Modules iterates over the modules in database order.
func (d *Database) Modules() iter.Seq[*Module] {
	return func(yield func(*Module) bool) {
		if d == nil {
			return
		}
		for _, m := range d.modules.All() {
			if !yield(m) {
				return
			}
		}
	}
}

// Membership is satisfied by module sets such as the resolver result.
type Membership interface {
	Has(name string) bool
}

// Restrict returns a new database holding only the modules for which keep
// reports membership, in the original order. Module values are shared, not
// copied; neither database may be mutated afterwards.
func (d *Database) Restrict(keep Membership) *Database {
	out := &Database{}
	for m := range d.Modules() {
		if keep.Has(m.Name) {
			out.modules.Set(m.Name, m)
		}
	}
	return out
}

// UnmarshalYAML decodes the top-level module mapping and names each module
// after its key. A null module entry decodes to an empty module.
func (d *Database) UnmarshalYAML(node *yaml.Node) error {
	var modules Ordered[*Module]
	if err := node.Decode(&modules); err != nil {
		return err
	}

	d.modules = Ordered[*Module]{}
	for name, m := range modules.All() {
		if m == nil {
			m = &Module{}
		}
		m.Name = name
		d.modules.Set(name, m)
	}
	return nil
}

// MarshalYAML encodes the database as an ordered mapping.
func (d Database) MarshalYAML() (any, error) {
	return d.modules.MarshalYAML()
}

// MarshalJSON encodes the database as an ordered JSON object.
func (d Database) MarshalJSON() ([]byte, error) {
	return d.modules.MarshalJSON()
}
