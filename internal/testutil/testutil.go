// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a file, failing the test when it is missing.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// BufferLogger returns a debug-level logger writing plain lines to a buffer.
func BufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return logger, &buf
}

// ExampleDatabaseJSON is the base/sale database used across package tests.
const ExampleDatabaseJSON = `{
  "base": {
    "__openerp__": {"name": "Base", "depends": []},
    "models": {
      "m1": {"_name": "res.partner", "class_name": "res_partner", "file": "/srv/addons/base/res/res_partner.py"}
    }
  },
  "sale": {
    "__openerp__": {"name": "Sales", "depends": ["base"]},
    "models": {
      "m2": {"_name": "res.partner", "_inherit": "res.partner", "class_name": "res_partner"},
      "m3": {"_name": "sale.order", "class_name": "sale_order", "file": "/srv/addons/sale/sale.py"}
    },
    "xml": {"views": {"v1": {"model": "sale_order", "name": "sale.order.form"}}, "actions": {}}
  }
}
`
