// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the rtools configuration.
// Loaded from ~/.rtools/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Templates is a directory holding component/ and container/ template
	// sets. Empty selects the templates bundled in the binary.
	// Env: RTOOLS_TEMPLATES
	Templates string `mapstructure:"templates" yaml:"templates,omitempty" json:"templates,omitempty"`

	// Editor is the command used by --open, e.g. "code --wait".
	// Env: RTOOLS_EDITOR, Default: $VISUAL or $EDITOR
	Editor string `mapstructure:"editor" yaml:"editor,omitempty" json:"editor,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rtools config diff` as the comparison baseline.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Log: LogConfig{Timestamps: &timestamps},
	}
}

// DefaultConfigYAML is the file written by `rtools config init`.
const DefaultConfigYAML = `# rtools configuration
#
# Directory with custom templates (see "rtools templates eject").
# Leave empty to use the templates bundled with rtools.
# templates: ~/.rtools/templates

# Command used to open the created file when --open is given.
# editor: code --wait

log:
  # Show timestamps in log output.
  timestamps: true
`
