package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpdoc/cli/internal/testutil"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(DefaultConfig()))
	assert.NoError(t, v.Validate(&Config{}))
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name       string
		content    string
		wantFields []string
	}{
		{name: "valid", content: "database: db.json\nlog:\n  timestamps: false\n"},
		{name: "empty file", content: ""},
		{name: "wrong type", content: "autoDependencies: maybe\n", wantFields: []string{"autoDependencies"}},
		{name: "unknown key", content: "registry: example.com\n", wantFields: []string{"registry"}},
		{name: "empty database", content: "database: \"\"\n", wantFields: []string{"database"}},
		{name: "nested wrong type", content: "log:\n  timestamps: 3\n", wantFields: []string{"log.timestamps"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "config.yaml", tt.content)

			err := v.ValidateFile(path)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			for _, want := range tt.wantFields {
				assert.Contains(t, fields, want)
			}
		})
	}
}

func TestValidator_MissingFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	err = v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "not found")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{{Field: "database", Message: "empty"}}
	assert.Contains(t, errs.Error(), "database: empty")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}
