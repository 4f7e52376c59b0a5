package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/erpdoc/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records a resolved setting and the lower-precedence values it
// shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// Overrides carries command-line flag values. A nil field means the flag was
// not given.
type Overrides struct {
	Database         *string
	TargetDir        *string
	AutoDependencies *bool
	SourceCode       *bool
	Timestamps       *bool
}

// Settings are the effective values after applying precedence.
type Settings struct {
	ConfigPath       string
	Database         string
	TargetDir        string
	AutoDependencies bool
	SourceCode       bool
	Timestamps       bool

	// Values records how each setting was resolved, for verbose logging.
	Values []ResolvedValue
}

// ResolveSettings applies (1) flag, (2) environment, (3) config file,
// (4) built-in default to every setting. cfg may be nil when no file was read.
func ResolveSettings(cfg *Config, configPath string, flags Overrides) (*Settings, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	s := &Settings{ConfigPath: configPath}

	var rv ResolvedValue
	s.Database, rv = ResolveString("database", EnvDatabase, flags.Database, cfg.Database, DefaultDatabase)
	s.Values = append(s.Values, rv)

	s.TargetDir, rv = ResolveString("targetDir", EnvTargetDir, flags.TargetDir, cfg.TargetDir, DefaultTargetDir)
	s.Values = append(s.Values, rv)

	bools := []struct {
		key    string
		env    string
		flag   *bool
		config *bool
		dst    *bool
	}{
		{"autoDependencies", EnvAutoDependencies, flags.AutoDependencies, cfg.AutoDependencies, &s.AutoDependencies},
		{"sourceCode", EnvSourceCode, flags.SourceCode, cfg.SourceCode, &s.SourceCode},
		{"log.timestamps", EnvLogTimestamps, flags.Timestamps, cfg.Log.Timestamps, &s.Timestamps},
	}
	for _, b := range bools {
		value, rv, err := ResolveBool(b.key, b.env, b.flag, b.config, true)
		if err != nil {
			return nil, err
		}
		*b.dst = value
		s.Values = append(s.Values, rv)
	}

	return s, nil
}

// ResolveString resolves a string setting. Empty values count as unset.
func ResolveString(key, envVar string, flag *string, configValue, defaultValue string) (string, ResolvedValue) {
	candidates := []candidate{}
	if flag != nil && *flag != "" {
		candidates = append(candidates, candidate{SourceFlag, *flag})
	}
	if env := os.Getenv(envVar); env != "" {
		candidates = append(candidates, candidate{SourceEnv, env})
	}
	if configValue != "" {
		candidates = append(candidates, candidate{SourceConfig, configValue})
	}
	candidates = append(candidates, candidate{SourceDefault, defaultValue})

	rv := pick(key, candidates)
	return rv.Value.(string), rv
}

// ResolveBool resolves a boolean setting. An environment value that does not
// parse as a boolean is an error.
func ResolveBool(key, envVar string, flag, configValue *bool, defaultValue bool) (bool, ResolvedValue, error) {
	candidates := []candidate{}
	if flag != nil {
		candidates = append(candidates, candidate{SourceFlag, *flag})
	}
	if env, ok := os.LookupEnv(envVar); ok && env != "" {
		parsed, err := strconv.ParseBool(env)
		if err != nil {
			return false, ResolvedValue{}, fmt.Errorf("%s: invalid boolean %q", envVar, env)
		}
		candidates = append(candidates, candidate{SourceEnv, parsed})
	}
	if configValue != nil {
		candidates = append(candidates, candidate{SourceConfig, *configValue})
	}
	candidates = append(candidates, candidate{SourceDefault, defaultValue})

	rv := pick(key, candidates)
	return rv.Value.(bool), rv, nil
}

type candidate struct {
	source ConfigSource
	value  any
}

// pick takes the first candidate; the rest become shadowed values.
// Defaults are recorded as shadowed only when they differ from the winner.
func pick(key string, candidates []candidate) ResolvedValue {
	rv := ResolvedValue{
		Key:      key,
		Value:    candidates[0].value,
		Source:   candidates[0].source,
		Shadowed: make(map[ConfigSource]any),
	}
	for _, c := range candidates[1:] {
		if c.source == SourceDefault && c.value == rv.Value {
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) ERPDOC_CONFIG env, (3) ~/.erpdoc/config.yaml default
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)

		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
