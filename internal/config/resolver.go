package config

import (
	"os"
	"strconv"

	"github.com/locko/rtools/internal/output"
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

// Environment variables read during resolution.
const (
	EnvTemplates      = "RTOOLS_TEMPLATES"
	EnvEditor         = "RTOOLS_EDITOR"
	EnvLogTimestamps  = "RTOOLS_LOG_TIMESTAMPS"
	envVisual         = "VISUAL"
	envFallbackEditor = "EDITOR"
)

// ResolvedValue records the winning value of one key and what it shadowed.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
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
// (1) --config flag, (2) RTOOLS_CONFIG env, (3) ~/.rtools/config.yaml default
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
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
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
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

// ResolveOptions carries the flag values and loaded file for Resolve.
type ResolveOptions struct {
	// Templates and Editor are flag values (empty if not set).
	Templates string
	Editor    string

	// Timestamps is nil unless --timestamps was given.
	Timestamps *bool

	// Config is the loaded config file; nil is treated as empty.
	Config *Config
}

// Settings is the effective configuration after precedence was applied.
type Settings struct {
	Templates  string
	Editor     string
	Timestamps *bool

	// Values lists every key in resolution order.
	Values []ResolvedValue
}

// Resolve applies flag > env > config > default to every setting.
func Resolve(opts ResolveOptions) Settings {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	var s Settings

	templates := resolveString("templates", opts.Templates, os.Getenv(EnvTemplates), cfg.Templates, "")
	s.Templates, _ = templates.Value.(string)

	editorDefault := os.Getenv(envVisual)
	if editorDefault == "" {
		editorDefault = os.Getenv(envFallbackEditor)
	}
	editor := resolveString("editor", opts.Editor, os.Getenv(EnvEditor), cfg.Editor, editorDefault)
	s.Editor, _ = editor.Value.(string)

	timestamps := resolveBool("log.timestamps", opts.Timestamps, os.Getenv(EnvLogTimestamps), cfg.Log.Timestamps)
	if b, ok := timestamps.Value.(bool); ok {
		s.Timestamps = &b
	}

	s.Values = []ResolvedValue{templates, editor, timestamps}
	return s
}

func resolveString(key, flag, env, file, def string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flag},
		{SourceEnv, env},
		{SourceConfig, file},
		{SourceDefault, def},
	}

	rv := ResolvedValue{Key: key, Value: "", Source: SourceDefault, Shadowed: map[ConfigSource]any{}}
	found := false
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if !found {
			rv.Value = c.value
			rv.Source = c.source
			found = true
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

func resolveBool(key string, flag *bool, env string, file *bool) ResolvedValue {
	var envValue *bool
	if env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			envValue = &b
		} else {
			output.Warn("ignoring invalid boolean", "env", EnvLogTimestamps, "value", env)
		}
	}

	candidates := []struct {
		source ConfigSource
		value  *bool
	}{
		{SourceFlag, flag},
		{SourceEnv, envValue},
		{SourceConfig, file},
	}

	rv := ResolvedValue{Key: key, Value: nil, Source: SourceDefault, Shadowed: map[ConfigSource]any{}}
	found := false
	for _, c := range candidates {
		if c.value == nil {
			continue
		}
		if !found {
			rv.Value = *c.value
			rv.Source = c.source
			found = true
			continue
		}
		rv.Shadowed[c.source] = *c.value
	}
	return rv
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
