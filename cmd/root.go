package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/instructvault/ivault-playground/internal/api"
	"github.com/instructvault/ivault-playground/internal/app"
	"github.com/instructvault/ivault-playground/internal/cachemanager"
	"github.com/instructvault/ivault-playground/internal/config"
	"github.com/instructvault/ivault-playground/internal/log"
	"github.com/instructvault/ivault-playground/internal/tracing"
	"github.com/instructvault/ivault-playground/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	envPrefix         = "IVAULT_PLAYGROUND"
	localConfigPath   = ".ivault/playground.yaml"
	debugLogPath      = "debug.log"
	shutdownTimeout   = 5 * time.Second
	cacheCleanupEvery = 10 * time.Minute
)

var (
	version        = "dev"
	cfgFile        string
	cfg            config.Config
	configFileUsed string
)

var rootCmd = &cobra.Command{
	Use:   "ivault-playground",
	Short: "A terminal playground for ivault prompts",
	Long: `A terminal client for the ivault prompt playground server: browse prompts
under any reference, inspect their specs, render them with variables and run
their evals.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .ivault/playground.yaml or ~/.config/ivault-playground/config.yaml)")
	rootCmd.PersistentFlags().StringP("server", "s", "",
		"playground server URL (default: "+config.DefaultServerURL+")")
	rootCmd.Flags().String("ref", "",
		"reference to select on start (default: working tree)")
	rootCmd.Flags().String("watch", "",
		"prompts directory to watch; the catalog reloads when it changes")
	rootCmd.Flags().BoolP("debug", "d", false,
		"write debug.log and enable the log overlay (ctrl+x)")

	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("default_ref", rootCmd.Flags().Lookup("ref"))
	_ = viper.BindPFlag("watch.dir", rootCmd.Flags().Lookup("watch"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	var err error
	cfg, configFileUsed, err = loadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}

// setDefaults registers every key so that environment overrides reach
// Unmarshal.
func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("server.url", d.Server.URL)
	v.SetDefault("server.timeout", d.Server.Timeout)
	v.SetDefault("default_ref", d.DefaultRef)
	v.SetDefault("vars.default", d.Vars.Default)
	v.SetDefault("vars.lenient", d.Vars.Lenient)
	v.SetDefault("copy.feedback", d.Copy.Feedback)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("watch.dir", d.Watch.Dir)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// loadConfig reads the configuration into a Config and returns the path of
// the file it came from. When no file is found a commented default is
// written to the explicit path, or to .ivault/playground.yaml.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		// Config lookup order:
		// 1. .ivault/playground.yaml (current directory)
		// 2. ~/.config/ivault-playground/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "ivault-playground"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	var readErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			target := explicit
			if target == "" {
				target = localConfigPath
			}
			if writeErr := config.WriteDefaultConfig(target); writeErr == nil {
				v.SetConfigFile(target)
				_ = v.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		} else {
			readErr = fmt.Errorf("reading config: %w", err)
		}
	}

	var out config.Config
	if err := v.Unmarshal(&out); err != nil {
		return config.Defaults(), v.ConfigFileUsed(), fmt.Errorf("decoding config: %w", err)
	}
	return out, v.ConfigFileUsed(), readErr
}

func runApp(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	debug = debug || log.DebugEnabledFromEnv()
	if debug {
		closeLog, err := log.Init(debugLogPath, "ivault-playground")
		if err != nil {
			return err
		}
		defer closeLog()
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sessionID := uuid.NewString()
	log.Info(log.CatConfig, "starting", "version", version, "session", sessionID, "server", cfg.Server.URL, "config", configFileUsed)

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "shutting down tracing", err)
		}
	}()

	backend, err := newBackend(cfg, provider.Tracer(), sessionID)
	if err != nil {
		return err
	}

	w, err := startWatcher(cfg.Watch)
	if err != nil {
		return err
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Backend:    backend,
		Config:     cfg,
		ConfigPath: configFileUsed,
		Debug:      debug,
		Watcher:    w,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err = tea.NewProgram(model, opts...).Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newBackend builds the API client, wrapped with the spec cache when
// enabled.
func newBackend(c config.Config, tracer trace.Tracer, sessionID string) (app.Backend, error) {
	client, err := api.NewClient(c.Server.URL, api.Options{
		Timeout:   c.Server.Timeout,
		Tracer:    tracer,
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}
	if !c.Cache.Enabled {
		return client, nil
	}
	cache := cachemanager.NewInMemoryCacheManager[api.SpecKey, json.RawMessage]("specs", c.Cache.TTL, cacheCleanupEvery)
	return api.NewCachedClient(client, cache, c.Cache.TTL), nil
}

// startWatcher returns a running watcher, or nil when no directory is set.
func startWatcher(c config.WatchConfig) (*watcher.Watcher, error) {
	if c.Dir == "" {
		return nil, nil
	}
	w, err := watcher.New(watcher.Config{Dir: c.Dir, DebounceDur: c.Debounce})
	if err != nil {
		return nil, fmt.Errorf("watching prompts: %w", err)
	}
	if err := w.Start(); err != nil {
		_ = w.Stop()
		return nil, fmt.Errorf("watching prompts: %w", err)
	}
	return w, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
