package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileName(t *testing.T) {
	tests := []struct {
		name   string
		module string
		path   string
		want   string
	}{
		{name: "nested path", module: "sale", path: "/srv/addons/sale/wizard/make.py", want: "wizard_make_py"},
		{name: "file at module root", module: "sale", path: "/srv/addons/sale/sale.py", want: "sale_py"},
		{name: "first occurrence wins", module: "sale", path: "/srv/sale/addons/sale/sale.py", want: "addons_sale_sale_py"},
		{name: "module not in path", module: "crm", path: "/srv/addons/sale/sale.py", want: "srv_addons_sale_sale_py"},
		{name: "empty path", module: "sale", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileName(tt.module, tt.path))
		})
	}
}

func TestFileRequests(t *testing.T) {
	r := NewFileRequests()

	url := r.Request("sale", "/srv/addons/sale/sale.py")
	assert.Equal(t, "/sale/file/sale_py.html", url)

	r.Request("sale", "/srv/addons/sale/sale.py")
	r.Request("base", "/srv/addons/base/res/res_partner.py")

	assert.Equal(t, 2, r.Len())
	files := r.Files()
	assert.Equal(t, "base", files[0].Module)
	assert.Equal(t, "res_res_partner_py", files[0].Name)
	assert.Equal(t, "sale", files[1].Module)
}
