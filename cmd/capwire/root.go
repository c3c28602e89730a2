// Root command for the capwire CLI.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// flagConfig is set by the --config flag.
var flagConfig string

// Resolved per invocation by the root's PersistentPreRunE; every
// subcommand except version reads them.
var (
	cfg      config
	logger   zerolog.Logger
	app      appCtx
	closeApp func() error
)

var rootCmd = &cobra.Command{
	Use:   "capwire",
	Short: "capwire greets people through a proved capability plan",
	Long: `capwire composes a greeter from capability bindings: a blob store,
a decoding querier, a caching layer, and a clock-gated greeting. The
plan is checked and proved before anything runs, so broken wiring is
reported with the binding key and path, never as a nil panic mid-call.

The memory backend starts with demo people "alice" and "bob".`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if closeApp != nil {
			return closeApp()
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default: capwire.yaml in . or $HOME/.config/capwire)")
	pf.String("backend", backendMemory, "blob backend: memory, fs or sqlite")
	pf.String("data-dir", ".capwire", "fs backend root directory")
	pf.String("db-path", "capwire.db", "sqlite database file")
	pf.String("cache", cacheMap, "entity cache backing: none, map or lru")
	pf.Int("lru-size", 128, "lru cache capacity")
	pf.Int("open-hour", 8, "gate opens at this hour, inclusive")
	pf.Int("close-hour", 20, "gate closes at this hour, exclusive")
	pf.Bool("gated", true, "greet through the daytime gate")
	pf.Bool("verbose", false, "log at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(capabilitiesCmd)
}

// initApp loads config, sets up logging and builds the context.
func initApp(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}
	logger = newLogger(cfg)

	app, closeApp, err = newAppContext(cfg)
	if err != nil {
		return err
	}
	logger.Debug().Str("backend", cfg.Backend).Str("cache", cfg.Cache).Msg("context ready")
	return nil
}

func newLogger(cfg config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
