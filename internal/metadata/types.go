// Package metadata provides the module metadata database consumed by the
// resolver, the model index and the site generator.
//
// The database is produced by an external introspection step and cached as a
// JSON document keyed by module name. It is treated as an immutable snapshot:
// nothing in this repository mutates a Database after it has been loaded.
package metadata

import (
	"gopkg.in/yaml.v3"
)

// Manifest is a module's dependency declaration record (the `__openerp__`
// entry of the cache).
type Manifest struct {
	// Depends lists the modules this module requires.
	Depends []string `yaml:"depends,omitempty" json:"depends,omitempty"`

	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Category    string `yaml:"category,omitempty" json:"category,omitempty"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Module is one unit of the documented platform.
type Module struct {
	// Name is the database key of the module. It is filled in on decode.
	Name string `yaml:"-" json:"-"`

	Manifest Manifest        `yaml:"__openerp__" json:"__openerp__"`
	Models   Ordered[*Model] `yaml:"models,omitempty" json:"models,omitzero"`
	XML      Records         `yaml:"xml,omitempty" json:"xml,omitzero"`
}

// Records holds the XML-declared records of a module.
type Records struct {
	Views   Ordered[*View]   `yaml:"views,omitempty" json:"views,omitzero"`
	Actions Ordered[*Action] `yaml:"actions,omitempty" json:"actions,omitzero"`
}

// IsZero reports whether the module declares no views and no actions.
func (r Records) IsZero() bool {
	return r.Views.IsZero() && r.Actions.IsZero()
}

// Model is a documented entity type, either a base definition or an
// extension of a model owned by another module.
type Model struct {
	// Name is the logical model name (`_name`). Nil for auxiliary records
	// and pure extensions.
	Name *string `yaml:"_name,omitempty" json:"_name,omitempty"`

	// Inherit names the logical model this one extends (`_inherit`).
	Inherit *string `yaml:"_inherit,omitempty" json:"_inherit,omitempty"`

	ClassName string `yaml:"class_name,omitempty" json:"class_name,omitempty"`
	File      string `yaml:"file,omitempty" json:"file,omitempty"`
	Line      int    `yaml:"line,omitempty" json:"line,omitempty"`
	Doc       string `yaml:"doc,omitempty" json:"doc,omitempty"`

	Methods Ordered[*Method] `yaml:"methods,omitempty" json:"methods,omitzero"`
}

// LogicalName returns `_name`, or "" when absent.
func (m *Model) LogicalName() string {
	if m == nil || m.Name == nil {
		return ""
	}
	return *m.Name
}

// InheritName returns `_inherit`, or "" when absent.
func (m *Model) InheritName() string {
	if m == nil || m.Inherit == nil {
		return ""
	}
	return *m.Inherit
}

// HasName reports whether `_name` is present.
func (m *Model) HasName() bool {
	return m != nil && m.Name != nil
}

// IsExtension reports whether `_inherit` is present.
func (m *Model) IsExtension() bool {
	return m != nil && m.Inherit != nil
}

// IsBase reports whether the model carries a `_name` and no `_inherit`.
func (m *Model) IsBase() bool {
	return m.HasName() && !m.IsExtension()
}

// IsDocumentable reports whether the model has a `_name` or an `_inherit`.
// Records with neither are not worth a page.
func (m *Model) IsDocumentable() bool {
	return m.HasName() || m.IsExtension()
}

// UnmarshalYAML decodes a model record. An `_inherit` given as a list, as
// the platform allows, is collapsed to its first entry.
func (m *Model) UnmarshalYAML(node *yaml.Node) error {
	type plain Model
	if node.Kind == yaml.MappingNode {
		node = collapseInheritList(node)
	}
	return node.Decode((*plain)(m))
}

func collapseInheritList(node *yaml.Node) *yaml.Node {
	out := *node
	out.Content = make([]*yaml.Node, len(node.Content))
	copy(out.Content, node.Content)

	for i := 0; i+1 < len(out.Content); i += 2 {
		if out.Content[i].Value != "_inherit" || out.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		seq := out.Content[i+1]
		if len(seq.Content) == 0 {
			out.Content[i+1] = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			continue
		}
		out.Content[i+1] = seq.Content[0]
	}
	return &out
}

// Method describes one method of a model.
type Method struct {
	// Args are the positional argument names, including those with defaults.
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`

	// Defaults are the default values of the trailing len(Defaults) args.
	Defaults []any `yaml:"defaults,omitempty" json:"defaults,omitempty"`

	Vararg *string `yaml:"vararg,omitempty" json:"vararg,omitempty"`
	Kwarg  *string `yaml:"kwarg,omitempty" json:"kwarg,omitempty"`
	Line   int     `yaml:"line,omitempty" json:"line,omitempty"`
	Doc    string  `yaml:"doc,omitempty" json:"doc,omitempty"`
}

// View is an XML view record.
type View struct {
	// Model is the declared target model, possibly underscore delimited.
	Model string `yaml:"model" json:"model"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Type  string `yaml:"type,omitempty" json:"type,omitempty"`

	// Attributes keeps every other field of the record for rendering.
	Attributes map[string]any `yaml:",inline" json:"attributes,omitempty"`
}

// Action is an XML action record.
type Action struct {
	// Model is the declared target model, possibly underscore delimited.
	Model string `yaml:"model" json:"model"`
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`

	Attributes map[string]any `yaml:",inline" json:"attributes,omitempty"`
}
