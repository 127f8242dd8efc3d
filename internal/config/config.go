// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config represents the instgen CLI configuration.
// Loaded from ~/.instgen/config.yaml with INSTGEN_ environment overrides.
type Config struct {
	// Target is the default target distribution when --os is not given.
	// Env: INSTGEN_TARGET
	Target string `mapstructure:"target"`

	// ScriptDir is where generated helper script files are written.
	// Env: INSTGEN_SCRIPT_DIR, Default: "."
	ScriptDir string `mapstructure:"scriptDir"`

	// Shebang prepends the interpreter line to generated scripts.
	// Env: INSTGEN_SHEBANG
	Shebang bool `mapstructure:"shebang"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`
}

// WithDefaults returns a copy of the config with default values applied to
// unset fields.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.ScriptDir == "" {
		out.ScriptDir = "."
	}
	return &out
}
