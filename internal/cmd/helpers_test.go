package cmd

import (
	"bytes"
	"testing"

	"github.com/erpdoc/cli/internal/config"
	"github.com/erpdoc/cli/internal/testutil"
)

// isolate points HOME at a temp dir, clears ERPDOC_* and resets the resolved
// globals. It returns the path of a database holding the base/sale example.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, env := range []string{
		config.EnvConfig, config.EnvDatabase, config.EnvTargetDir,
		config.EnvAutoDependencies, config.EnvSourceCode, config.EnvLogTimestamps,
	} {
		t.Setenv(env, "")
	}
	settings = nil
	loadedConfig = nil
	t.Cleanup(func() {
		settings = nil
		loadedConfig = nil
	})
	return testutil.WriteFile(t, t.TempDir(), "db.json", testutil.ExampleDatabaseJSON)
}

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
