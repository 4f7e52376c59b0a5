package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVetter_ValidDocuments(t *testing.T) {
	vetter, err := NewVetter()
	require.NoError(t, err)

	for _, name := range []string{"example.json", "example.yaml"} {
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", name))
			require.NoError(t, err)

			issues, err := vetter.Vet(data, name)
			require.NoError(t, err)
			assert.Empty(t, issues)
		})
	}
}

func TestVetter_ReportsIssuesWithPaths(t *testing.T) {
	vetter, err := NewVetter()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join("testdata", "invalid.yaml"))
	require.NoError(t, err)

	issues, err := vetter.Vet(data, "invalid.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, issues)

	assert.True(t, anyIssueUnder(issues, "base.__openerp__.depends"), "depends must be a list: %v", issues)
	assert.True(t, anyIssueUnder(issues, "base.models.m1"), "bad model fields: %v", issues)
	assert.True(t, anyIssueUnder(issues, "sale"), "missing manifest and view model: %v", issues)

	for i := 1; i < len(issues); i++ {
		assert.LessOrEqual(t, issues[i-1].Path, issues[i].Path, "issues are sorted by path")
	}
}

func TestVetter_JSONStringEscapes(t *testing.T) {
	vetter, err := NewVetter()
	require.NoError(t, err)

	doc := `{"base": {"__openerp__": {"description": "smile \ud83d\ude00 a\/b caf\u00e9"}}}`
	issues, err := vetter.Vet([]byte(doc), "db.json")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestVetter_UnparseableDocument(t *testing.T) {
	vetter, err := NewVetter()
	require.NoError(t, err)

	_, err = vetter.Vet([]byte(`{"base": `), "broken.json")
	assert.Error(t, err)
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "a.b: bad", Issue{Path: "a.b", Message: "bad"}.String())
	assert.Equal(t, "bad", Issue{Message: "bad"}.String())
}

func anyIssueUnder(issues []Issue, prefix string) bool {
	for _, is := range issues {
		if strings.HasPrefix(is.Path, prefix) {
			return true
		}
	}
	return false
}
