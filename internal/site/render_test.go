package site

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionsRender(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "empty",
			input:    "  \n",
			contains: []string{},
		},
		{
			name:     "emphasis",
			input:    "The **kernel** of the platform.",
			contains: []string{"<strong>kernel</strong>"},
		},
		{
			name:     "gfm table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |\n",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "raw html is dropped",
			input:       "before <script>alert(1)</script> after",
			contains:    []string{"before"},
			notContains: []string{"<script>"},
		},
	}

	d := newDescriptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Render(tt.input)
			require.NoError(t, err)
			if len(tt.contains) == 0 {
				assert.Empty(t, got)
			}
			for _, s := range tt.contains {
				assert.Contains(t, string(got), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, string(got), s)
			}
		})
	}
}

func TestHighlight(t *testing.T) {
	h := newHighlighter()

	var buf bytes.Buffer
	err := h.Highlight(&buf, "res_partner.py", "class res_partner(osv.osv):\n    _name = 'res.partner'\n")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "res_partner")
	assert.Contains(t, out, "line2")
}

func TestHighlight_UnknownExtension(t *testing.T) {
	h := newHighlighter()

	var buf bytes.Buffer
	require.NoError(t, h.Highlight(&buf, "notes.unknownext", "plain text"))
	assert.Contains(t, buf.String(), "plain text")
}

func TestWriteCSS(t *testing.T) {
	h := newHighlighter()

	var buf bytes.Buffer
	require.NoError(t, h.WriteCSS(&buf))
	assert.Contains(t, buf.String(), ".chroma")
}
