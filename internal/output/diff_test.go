package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff_NoChanges(t *testing.T) {
	assert.Equal(t, "No changes detected.\n", RenderDiff(nil, nil, nil, GetStyles()))
}

func TestRenderDiff_Sections(t *testing.T) {
	out := RenderDiff(
		[]string{"stock"},
		[]string{"crm"},
		[]ModifiedItem{{Name: "sale", Diff: "models.m3._name\n  ± value change\n"}},
		GetStyles(),
	)

	assert.Contains(t, out, "Added:")
	assert.Contains(t, out, "+ stock")
	assert.Contains(t, out, "Removed:")
	assert.Contains(t, out, "- crm")
	assert.Contains(t, out, "~ sale")
	assert.Contains(t, out, "    models.m3._name")
	assert.Contains(t, out, "Summary: 1 added, 1 removed, 1 modified")
}

func TestIndentDiff(t *testing.T) {
	assert.Equal(t, "", IndentDiff("", "  "))
	assert.Equal(t, "  a\n  b\n", IndentDiff("a\n\nb", "  "))
}
