package metadata

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/erpdoc/cli/internal/errors"
)

// Load reads a metadata database from a JSON or YAML file.
// Both formats decode through the same ordered path, so a cached db.json and
// a hand-written YAML fixture with the same content produce equal databases.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"metadata database not found",
				path,
				"Pass --database or set 'database' in the config file.",
			)
		}
		return nil, fmt.Errorf("reading metadata database: %w", err)
	}

	parse := Parse
	if IsJSONPath(path) {
		parse = ParseJSON
	}
	db, err := parse(data)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), path, "",
			"The database must map module names to {__openerp__, models, xml} records.")
	}
	return db, nil
}

// Parse decodes a metadata database document. A document starting with `{`
// is read as JSON first and falls back to YAML flow syntax.
func Parse(data []byte) (*Database, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return &Database{}, nil
	}
	if trimmed[0] == '{' {
		if db, err := ParseJSON(trimmed); err == nil {
			return db, nil
		}
	}

	db := &Database{}
	if err := yaml.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("decoding metadata database: %w", err)
	}
	return db, nil
}

// ParseJSON decodes a JSON metadata database, keeping document order.
func ParseJSON(data []byte) (*Database, error) {
	db := &Database{}
	if len(bytes.TrimSpace(data)) == 0 {
		return db, nil
	}

	node, err := jsonNode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding metadata database: %w", err)
	}
	if err := node.Decode(db); err != nil {
		return nil, fmt.Errorf("decoding metadata database: %w", err)
	}
	return db, nil
}

// IsJSONPath reports whether path names a JSON document by extension.
func IsJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
