// Package config provides configuration loading and management.
package config

// Default values applied when neither flag, environment nor config file set a
// value.
const (
	DefaultDatabase  = "db.json"
	DefaultTargetDir = "build"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the erpdoc configuration.
// Loaded from ~/.erpdoc/config.yaml, validated against an embedded CUE schema.
type Config struct {
	// Database is the path of the metadata database (the introspection cache).
	// Env: ERPDOC_DATABASE, Default: db.json
	Database string `json:"database,omitempty" yaml:"database,omitempty"`

	// TargetDir is where `generate` writes the site.
	// Env: ERPDOC_TARGET_DIR, Default: build
	TargetDir string `json:"targetDir,omitempty" yaml:"targetDir,omitempty"`

	// AutoDependencies pulls in the declared dependencies of requested modules.
	// Env: ERPDOC_AUTO_DEPENDENCIES, Default: true
	AutoDependencies *bool `json:"autoDependencies,omitempty" yaml:"autoDependencies,omitempty"`

	// SourceCode renders highlighted source pages and links them from models.
	// Env: ERPDOC_SOURCE_CODE, Default: true
	SourceCode *bool `json:"sourceCode,omitempty" yaml:"sourceCode,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `erpdoc config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Database:         DefaultDatabase,
		TargetDir:        DefaultTargetDir,
		AutoDependencies: boolPtr(true),
		SourceCode:       boolPtr(true),
		Log: LogConfig{
			Timestamps: boolPtr(true),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
