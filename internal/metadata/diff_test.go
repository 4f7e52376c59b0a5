package metadata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_IdenticalSnapshots(t *testing.T) {
	before, err := Load(filepath.Join("testdata", "example.json"))
	require.NoError(t, err)
	after, err := Load(filepath.Join("testdata", "example.yaml"))
	require.NoError(t, err)

	cmp, err := Compare(before, after, false)
	require.NoError(t, err)

	assert.False(t, cmp.HasChanges())
	assert.Empty(t, cmp.Report)
}

func TestCompare_ModuleLevelChanges(t *testing.T) {
	before, err := Parse([]byte(`
base: {__openerp__: {depends: []}}
sale: {__openerp__: {depends: [base]}, models: {m3: {_name: sale.order}}}
crm: {__openerp__: {depends: [base]}}
`))
	require.NoError(t, err)
	after, err := Parse([]byte(`
base: {__openerp__: {depends: []}}
sale: {__openerp__: {depends: [base]}, models: {m3: {_name: sale.order.line}}}
stock: {__openerp__: {depends: [base]}}
`))
	require.NoError(t, err)

	cmp, err := Compare(before, after, false)
	require.NoError(t, err)

	assert.True(t, cmp.HasChanges())
	assert.Equal(t, []string{"stock"}, cmp.AddedModules)
	assert.Equal(t, []string{"crm"}, cmp.RemovedModules)
	assert.Equal(t, []string{"sale"}, cmp.ChangedModules)
	assert.Contains(t, cmp.Report, "sale.order.line")
}
