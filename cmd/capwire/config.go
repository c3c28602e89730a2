// Config loading for the capwire CLI.
//
// Precedence, highest first: flags, CAPWIRE_* environment variables,
// the config file, built-in defaults. A missing config file is not an
// error; an explicit --config that cannot be read is.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	backendMemory = "memory"
	backendFS     = "fs"
	backendSQLite = "sqlite"

	cacheNone = "none"
	cacheMap  = "map"
	cacheLRU  = "lru"
)

// config is the resolved CLI configuration.
type config struct {
	Backend   string // memory | fs | sqlite
	DataDir   string // fs backend root
	DBPath    string // sqlite database file, ":memory:" allowed
	Cache     string // none | map | lru
	LRUSize   int
	OpenHour  int // gate window, Open inclusive
	CloseHour int // gate window, Close exclusive
	Gated     bool
	Verbose   bool
}

// configKeys lists every config key; flag names use dashes for the same
// underscored keys.
var configKeys = []string{
	"backend", "data_dir", "db_path", "cache", "lru_size",
	"open_hour", "close_hour", "gated", "verbose",
}

func loadConfig() (config, error) {
	v := viper.New()
	v.SetDefault("backend", backendMemory)
	v.SetDefault("data_dir", ".capwire")
	v.SetDefault("db_path", "capwire.db")
	v.SetDefault("cache", cacheMap)
	v.SetDefault("lru_size", 128)
	v.SetDefault("open_hour", 8)
	v.SetDefault("close_hour", 20)
	v.SetDefault("gated", true)
	v.SetDefault("verbose", false)

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
	} else {
		v.SetConfigName("capwire")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/capwire")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if flagConfig != "" || !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("CAPWIRE")
	v.AutomaticEnv()

	for _, key := range configKeys {
		name := strings.ReplaceAll(key, "_", "-")
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			return config{}, fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	cfg := config{
		Backend:   v.GetString("backend"),
		DataDir:   v.GetString("data_dir"),
		DBPath:    v.GetString("db_path"),
		Cache:     v.GetString("cache"),
		LRUSize:   v.GetInt("lru_size"),
		OpenHour:  v.GetInt("open_hour"),
		CloseHour: v.GetInt("close_hour"),
		Gated:     v.GetBool("gated"),
		Verbose:   v.GetBool("verbose"),
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Backend {
	case backendMemory, backendFS, backendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, backendMemory, backendFS, backendSQLite)
	}
	switch c.Cache {
	case cacheNone, cacheMap, cacheLRU:
	default:
		return fmt.Errorf("unknown cache %q (want %s, %s or %s)", c.Cache, cacheNone, cacheMap, cacheLRU)
	}
	if c.Cache == cacheLRU && c.LRUSize <= 0 {
		return fmt.Errorf("lru_size must be positive, got %d", c.LRUSize)
	}
	if c.OpenHour < 0 || c.OpenHour > 23 || c.CloseHour < 0 || c.CloseHour > 24 {
		return fmt.Errorf("gate window out of range: open_hour %d, close_hour %d", c.OpenHour, c.CloseHour)
	}
	return nil
}
