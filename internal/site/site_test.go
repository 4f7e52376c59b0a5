package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/testutil"
)

func siteDB(t *testing.T, srcDir string) *metadata.Database {
	t.Helper()

	partnerSrc := testutil.WriteFile(t, srcDir, "base/res/res_partner.py", "class res_partner(osv.osv):\n    _name = 'res.partner'\n")

	partner := testutil.Model("res.partner", "")
	partner.ClassName = "res_partner"
	partner.File = partnerSrc
	partner.Line = 1
	partner.Doc = "Contacts and *companies*."
	partner.Methods.Set("write", &metadata.Method{
		Args:     []string{"self", "cr", "uid", "ids", "vals", "context"},
		Defaults: []any{nil},
		Line:     2,
	})

	order := testutil.Model("sale.order", "")
	order.File = filepath.Join(srcDir, "sale", "missing.py")

	base := testutil.Module("base", testutil.WithModelRecord("m1", partner))
	base.Manifest.Description = "The **kernel** of the platform."
	base.Manifest.Name = "Base"

	return testutil.Database(
		base,
		testutil.Module("sale", testutil.Depends("base"),
			testutil.WithModel("m2", "res.partner", "res.partner"),
			testutil.WithModelRecord("m3", order),
			testutil.WithView("v1", "sale_order"),
			testutil.WithAction("a1", "sale.order"),
		),
	)
}

func TestGenerate(t *testing.T) {
	target := t.TempDir()
	db := siteDB(t, t.TempDir())
	logger, logs := testutil.BufferLogger()

	gen, err := NewGenerator(db, Options{TargetDir: target, ShowSource: true, Logger: logger})
	require.NoError(t, err)

	report, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Modules)
	assert.Equal(t, 3, report.ModelPages)
	assert.Equal(t, 1, report.SourcePages)
	require.Len(t, report.MissingSources, 1)
	assert.Contains(t, report.MissingSources[0], "missing.py")
	assert.Contains(t, logs.String(), "source file is not readable")
	assert.Contains(t, logs.String(), "m:sale", "per-module lines carry the module prefix")

	home := testutil.ReadFile(t, filepath.Join(target, "index.html"))
	assert.Contains(t, home, `href="/base/m1.html"`)
	assert.Contains(t, home, `href="/sale/m3.html"`)
	assert.Contains(t, home, "<strong>kernel</strong>")

	partner := testutil.ReadFile(t, filepath.Join(target, "base", "m1.html"))
	assert.Contains(t, partner, `href="/sale/m2.html"`, "neighbour link")
	assert.Contains(t, partner, "write(self, cr, uid, ids, vals, context=None)")
	assert.Contains(t, partner, `href="/base/file/res_res_partner_py.html#line1"`)
	assert.Contains(t, partner, "<em>companies</em>")

	ext := testutil.ReadFile(t, filepath.Join(target, "sale", "m2.html"))
	assert.Contains(t, ext, `href="/base/m1.html"`, "link to the top definition")

	order := testutil.ReadFile(t, filepath.Join(target, "sale", "m3.html"))
	assert.Contains(t, order, "v1")
	assert.Contains(t, order, "a1")

	source := testutil.ReadFile(t, filepath.Join(target, "base", "file", "res_res_partner_py.html"))
	assert.Contains(t, source, "res_partner")

	assert.FileExists(t, filepath.Join(target, StaticDir, "style.css"))
	assert.FileExists(t, filepath.Join(target, StaticDir, "highlight.css"))
}

func TestGenerate_NoSource(t *testing.T) {
	target := t.TempDir()
	db := siteDB(t, t.TempDir())
	logger, _ := testutil.BufferLogger()

	gen, err := NewGenerator(db, Options{TargetDir: target, Logger: logger})
	require.NoError(t, err)

	report, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.SourcePages)
	assert.NoDirExists(t, filepath.Join(target, "base", "file"))
	assert.NotContains(t, testutil.ReadFile(t, filepath.Join(target, "base", "m1.html")), "/file/")
}

func TestGenerate_TopLinkOmittedWhenBaseFiltered(t *testing.T) {
	target := t.TempDir()
	db := siteDB(t, t.TempDir())
	onlySale := db.Restrict(testutil.Database(testutil.Module("sale")))
	logger, _ := testutil.BufferLogger()

	gen, err := NewGenerator(onlySale, Options{TargetDir: target, Logger: logger})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	ext := testutil.ReadFile(t, filepath.Join(target, "sale", "m2.html"))
	assert.NotContains(t, ext, `href="/base/m1.html"`)
}

func TestGenerate_Clean(t *testing.T) {
	target := t.TempDir()
	stale := testutil.WriteFile(t, target, "stale/old.html", "old")
	custom := testutil.WriteFile(t, target, "static/style.css", "body {}")
	db := siteDB(t, t.TempDir())
	logger, _ := testutil.BufferLogger()

	gen, err := NewGenerator(db, Options{TargetDir: target, Logger: logger})
	require.NoError(t, err)
	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, stale)
	assert.Equal(t, "body {}", testutil.ReadFile(t, custom), "existing stylesheet kept")

	gen, err = NewGenerator(db, Options{TargetDir: target, Clean: true, Logger: logger})
	require.NoError(t, err)
	_, err = gen.Generate(context.Background())
	require.NoError(t, err)

	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))
	assert.NotEqual(t, "body {}", testutil.ReadFile(t, custom))
}

func TestGenerate_Cancelled(t *testing.T) {
	db := siteDB(t, t.TempDir())
	logger, _ := testutil.BufferLogger()
	gen, err := NewGenerator(db, Options{TargetDir: t.TempDir(), Logger: logger})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewGenerator_RequiresTarget(t *testing.T) {
	_, err := NewGenerator(testutil.Database(), Options{})
	assert.Error(t, err)
}
