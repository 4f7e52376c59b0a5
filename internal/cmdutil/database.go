package cmdutil

import (
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

// LoadDatabase loads the metadata database and logs its size.
func LoadDatabase(path string) (*metadata.Database, error) {
	db, err := metadata.Load(path)
	if err != nil {
		return nil, err
	}
	output.Debug("metadata database loaded", "path", path, "modules", db.Len())
	return db, nil
}
