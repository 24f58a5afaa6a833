// Package config provides configuration types and defaults for the playground.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/tracing"
)

// DefaultServerURL is where `ivault playground` listens by default.
const DefaultServerURL = "http://127.0.0.1:8000"

// DefaultVars seeds the variables input.
const DefaultVars = `{"name": "ivault"}`

// Config holds all configuration options for the playground.
type Config struct {
	Server     ServerConfig   `mapstructure:"server" yaml:"server"`
	DefaultRef string         `mapstructure:"default_ref" yaml:"default_ref"`
	Vars       VarsConfig     `mapstructure:"vars" yaml:"vars"`
	Copy       CopyConfig     `mapstructure:"copy" yaml:"copy"`
	Cache      CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Watch      WatchConfig    `mapstructure:"watch" yaml:"watch"`
	UI         UIConfig       `mapstructure:"ui" yaml:"ui"`
	Tracing    tracing.Config `mapstructure:"tracing" yaml:"tracing"`
}

// ServerConfig locates the playground backend.
type ServerConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
	// Timeout bounds each request. Zero waits forever.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// VarsConfig controls the variables input.
type VarsConfig struct {
	Default string `mapstructure:"default" yaml:"default"`
	// Lenient accepts HJSON (unquoted keys, comments, trailing commas).
	Lenient bool `mapstructure:"lenient" yaml:"lenient"`
}

// CopyConfig controls the copy action.
type CopyConfig struct {
	// Feedback is how long "Copied" stays on the button.
	Feedback time.Duration `mapstructure:"feedback" yaml:"feedback"`
}

// CacheConfig controls the spec cache for named references.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL     time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// WatchConfig controls catalog auto-refresh.
type WatchConfig struct {
	// Dir is the local prompts directory; empty disables watching.
	Dir      string        `mapstructure:"dir" yaml:"dir"`
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style" yaml:"markdown_style"` // "dark" (default), "light", "notty", "auto"
	ShowStatusBar bool   `mapstructure:"show_status_bar" yaml:"show_status_bar"`
	Mouse         bool   `mapstructure:"mouse" yaml:"mouse"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()

	return Config{
		Server: ServerConfig{
			URL: DefaultServerURL,
		},
		Vars: VarsConfig{
			Default: DefaultVars,
		},
		Copy: CopyConfig{
			Feedback: 1200 * time.Millisecond,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
			ShowStatusBar: true,
			Mouse:         true,
		},
		Tracing: tr,
	}
}

// DefaultTracesFilePath returns ~/.config/ivault-playground/traces/traces.jsonl
// or empty string if the home dir is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ivault-playground", "traces", "traces.jsonl")
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateServer(c.Server); err != nil {
		return err
	}
	if c.Copy.Feedback <= 0 {
		return fmt.Errorf("copy.feedback must be positive, got %s", c.Copy.Feedback)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	switch c.UI.MarkdownStyle {
	case "", "dark", "light", "notty", "auto":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\", \"light\", \"notty\", or \"auto\", got %q", c.UI.MarkdownStyle)
	}
	return ValidateTracing(c.Tracing)
}

// ValidateServer checks the backend location.
func ValidateServer(s ServerConfig) error {
	if s.URL == "" {
		return fmt.Errorf("server.url is required")
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return fmt.Errorf("server.url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server.url must be an http(s) URL with a host, got %q", s.URL)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("server.timeout must not be negative, got %s", s.Timeout)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tr tracing.Config) error {
	if tr.SampleRate < 0.0 || tr.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tr.SampleRate)
	}

	if tr.Exporter != "" {
		switch tr.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tr.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tr.Enabled {
		if tr.Exporter == "file" && tr.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tr.Exporter == "otlp" && tr.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# ivault playground configuration

# Playground backend (start it with: ivault playground)
server:
  url: http://127.0.0.1:8000
  # timeout: 10s          # Per-request timeout (default: none)

# Reference selected on start; empty means the working tree
# default_ref: prompts/v1.0.0

# Variables input
vars:
  default: '{"name": "ivault"}'
  lenient: false          # Accept HJSON: unquoted keys, comments, trailing commas

# Copy action
copy:
  feedback: 1200ms        # How long "Copied" is shown

# Specs fetched under a named reference are cached for the session
cache:
  enabled: true
  ttl: 10m

# Reload the prompt list when files under this directory change
# (only while the working tree is selected)
watch:
  # dir: prompts
  debounce: 200ms

# UI settings
ui:
  markdown_style: dark    # Messages view style: dark, light, notty, auto
  show_status_bar: true
  mouse: true

# Tracing of backend calls
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/ivault-playground/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
