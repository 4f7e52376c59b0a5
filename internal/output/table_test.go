package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	tbl := NewTable("MODEL", "MODULE").
		Row("res.partner", "base").
		Row("sale.order", "sale")

	out := tbl.String()

	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, out, "MODEL")
	assert.Contains(t, out, "res.partner")
	assert.Contains(t, out, "sale.order")
	assert.Less(t, strings.Index(out, "res.partner"), strings.Index(out, "sale.order"), "rows keep insertion order")
}
