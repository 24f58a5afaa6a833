package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, DefaultServerURL, cfg.Server.URL)
	require.Zero(t, cfg.Server.Timeout, "no timeout by default")
	require.Empty(t, cfg.DefaultRef)
	require.Equal(t, `{"name": "ivault"}`, cfg.Vars.Default)
	require.False(t, cfg.Vars.Lenient)
	require.Equal(t, 1200*time.Millisecond, cfg.Copy.Feedback)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, "dark", cfg.UI.MarkdownStyle)
	require.False(t, cfg.Tracing.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing url", mutate: func(c *Config) { c.Server.URL = "" }, wantErr: "server.url is required"},
		{name: "bad scheme", mutate: func(c *Config) { c.Server.URL = "ftp://x" }, wantErr: "http(s) URL"},
		{name: "no host", mutate: func(c *Config) { c.Server.URL = "http://" }, wantErr: "http(s) URL"},
		{name: "negative timeout", mutate: func(c *Config) { c.Server.Timeout = -time.Second }, wantErr: "server.timeout"},
		{name: "zero feedback", mutate: func(c *Config) { c.Copy.Feedback = 0 }, wantErr: "copy.feedback"},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTL = -1 }, wantErr: "cache.ttl"},
		{name: "negative debounce", mutate: func(c *Config) { c.Watch.Debounce = -1 }, wantErr: "watch.debounce"},
		{name: "bad markdown style", mutate: func(c *Config) { c.UI.MarkdownStyle = "neon" }, wantErr: "ui.markdown_style"},
		{name: "sample rate", mutate: func(c *Config) { c.Tracing.SampleRate = 2 }, wantErr: "sample_rate"},
		{name: "exporter", mutate: func(c *Config) { c.Tracing.Exporter = "zipkin" }, wantErr: "tracing.exporter"},
		{name: "file path required", mutate: func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = "file"
			c.Tracing.FilePath = ""
		}, wantErr: "file_path is required"},
		{name: "otlp endpoint required", mutate: func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = "otlp"
			c.Tracing.OTLPEndpoint = ""
		}, wantErr: "otlp_endpoint is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateTracing_DisabledSkipsPathChecks(t *testing.T) {
	err := ValidateTracing(tracingConfig(false, "file", ""))
	require.NoError(t, err)
}

func TestDefaultConfigTemplate_ParsesAndMatchesDefaults(t *testing.T) {
	var parsed struct {
		Server struct {
			URL string `yaml:"url"`
		} `yaml:"server"`
		Vars struct {
			Default string `yaml:"default"`
			Lenient bool   `yaml:"lenient"`
		} `yaml:"vars"`
		Copy struct {
			Feedback time.Duration `yaml:"feedback"`
		} `yaml:"copy"`
		UI struct {
			MarkdownStyle string `yaml:"markdown_style"`
		} `yaml:"ui"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))

	d := Defaults()
	require.Equal(t, d.Server.URL, parsed.Server.URL)
	require.Equal(t, d.Vars.Default, parsed.Vars.Default)
	require.Equal(t, d.Copy.Feedback, parsed.Copy.Feedback)
	require.Equal(t, d.UI.MarkdownStyle, parsed.UI.MarkdownStyle)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "playground.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
