package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpdoc/cli/internal/config"
	oerrors "github.com/erpdoc/cli/internal/errors"
)

func TestGenerateCmd(t *testing.T) {
	db := isolate(t)
	target := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "generate", "--database", db, "--target-dir", target, "--no-source-code", "sale")
	require.NoError(t, err)
	assert.Contains(t, out, "2 module(s), 3 model page(s), 0 source page(s)")

	for _, page := range []string{"index.html", "base/m1.html", "sale/m2.html", "sale/m3.html", "static/style.css", "static/highlight.css"} {
		assert.FileExists(t, filepath.Join(target, page))
	}
}

func TestGenerateCmd_NoDeps(t *testing.T) {
	db := isolate(t)
	target := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "generate", "--database", db, "--target-dir", target, "--no-deps", "--no-source-code", "sale")
	require.NoError(t, err)
	assert.Contains(t, out, "1 module(s), 2 model page(s)")
	assert.NoFileExists(t, filepath.Join(target, "base", "m1.html"))
}

func TestGenerateCmd_MissingSourcesAreSkipped(t *testing.T) {
	db := isolate(t)
	target := filepath.Join(t.TempDir(), "site")

	out, err := execute(t, "generate", "--database", db, "--target-dir", target, "all")
	require.NoError(t, err)
	assert.Contains(t, out, "0 source page(s)")
}

func TestGenerateCmd_TargetFromEnv(t *testing.T) {
	db := isolate(t)
	target := filepath.Join(t.TempDir(), "from-env")
	t.Setenv(config.EnvTargetDir, target)

	_, err := execute(t, "generate", "--database", db, "--no-source-code", "base")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "index.html"))
}

func TestGenerateCmd_UnknownModule(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, "generate", "--database", db, "--target-dir", t.TempDir(), "ghost")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}
