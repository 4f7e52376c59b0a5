package testutil

import (
	"github.com/erpdoc/cli/internal/metadata"
)

// ModuleOption configures a module built by Module.
type ModuleOption func(*metadata.Module)

// Database builds a database from modules, in order.
func Database(modules ...*metadata.Module) *metadata.Database {
	return metadata.New(modules...)
}

// Module builds a module.
func Module(name string, opts ...ModuleOption) *metadata.Module {
	m := &metadata.Module{Name: name}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Depends declares dependencies.
func Depends(names ...string) ModuleOption {
	return func(m *metadata.Module) {
		m.Manifest.Depends = append(m.Manifest.Depends, names...)
	}
}

// WithModel adds a model. Empty name or inherit means the attribute is absent.
func WithModel(key, name, inherit string) ModuleOption {
	return WithModelRecord(key, Model(name, inherit))
}

// WithModelRecord adds a prepared model record.
func WithModelRecord(key string, model *metadata.Model) ModuleOption {
	return func(m *metadata.Module) {
		m.Models.Set(key, model)
	}
}

// WithView adds a view targeting model.
func WithView(key, model string) ModuleOption {
	return func(m *metadata.Module) {
		m.XML.Views.Set(key, &metadata.View{Model: model, Name: key})
	}
}

// WithAction adds an action targeting model.
func WithAction(key, model string) ModuleOption {
	return func(m *metadata.Module) {
		m.XML.Actions.Set(key, &metadata.Action{Model: model, Name: key})
	}
}

// Model builds a model record. Empty name or inherit means absent.
func Model(name, inherit string) *metadata.Model {
	m := &metadata.Model{}
	if name != "" {
		m.Name = Ptr(name)
	}
	if inherit != "" {
		m.Inherit = Ptr(inherit)
	}
	return m
}

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}
