// Package commands implements the pcl-seq CLI commands.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/pclscope/pcl-go/pkg/catalog"
	"github.com/pclscope/pcl-go/pkg/seq"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

// Config holds settings shared by all commands. Values come from an
// optional YAML or TOML file; flags given on the command line win.
type Config struct {
	LogLevel     string `yaml:"log_level" toml:"log_level"`
	Format       string `yaml:"format" toml:"format"`
	CatalogDir   string `yaml:"catalog_dir" toml:"catalog_dir"`
	TraceFile    string `yaml:"trace_file" toml:"trace_file"`
	UsedOnly     bool   `yaml:"used_only" toml:"used_only"`
	HideObsolete bool   `yaml:"hide_obsolete" toml:"hide_obsolete"`
	Language     string `yaml:"language" toml:"language"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Format:   "text",
		Language: "en",
	}
}

// LoadConfig reads a config file over the defaults. The format is chosen
// by extension: .yaml/.yml or .toml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s (use .yaml, .yml or .toml)", path)
	}
	return cfg, nil
}

// globalFlags are registered on every command's flag set.
type globalFlags struct {
	configFile string
	cfg        Config
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&g.configFile, "config", "", "Config file (.yaml, .yml, .toml)")
	fs.StringVar(&g.cfg.LogLevel, "log-level", d.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&g.cfg.CatalogDir, "catalog", "", "Directory with catalog overrides")
	fs.StringVar(&g.cfg.Language, "lang", d.Language, "Language tag for number formatting")
}

// registerFormat adds the -format flag.
func (g *globalFlags) registerFormat(fs *flag.FlagSet, usage string) {
	fs.StringVar(&g.cfg.Format, "format", DefaultConfig().Format, usage)
	fs.StringVar(&g.cfg.Format, "f", DefaultConfig().Format, "Output format (shorthand)")
}

// resolve merges the config file, if any, with the flags set on fs.
func (g *globalFlags) resolve(fs *flag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	if g.configFile != "" {
		var err error
		if cfg, err = LoadConfig(g.configFile); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = g.cfg.LogLevel
		case "catalog":
			cfg.CatalogDir = g.cfg.CatalogDir
		case "lang":
			cfg.Language = g.cfg.Language
		case "format", "f":
			cfg.Format = g.cfg.Format
		case "trace":
			cfg.TraceFile = g.cfg.TraceFile
		case "used":
			cfg.UsedOnly = g.cfg.UsedOnly
		case "hide-obsolete":
			cfg.HideObsolete = g.cfg.HideObsolete
		}
	})
	return cfg, nil
}

// newLogger creates the operational logger writing to w.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// env is what commands need after setup.
type env struct {
	cfg     Config
	logger  *slog.Logger
	lang    language.Tag
	catalog *catalog.Catalog
	reg     *seq.Registry
}

// setup creates the logger, loads the catalog and builds the registry.
func setup(cfg Config, stderr io.Writer) (*env, error) {
	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return nil, err
	}

	lang, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid language: %s: %w", cfg.Language, err)
	}

	cat, err := catalog.LoadDir(cfg.CatalogDir, catalog.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	reg, err := seq.Build(cat.Providers(), seq.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	logger.Debug("registry built", "entries", reg.Len())

	return &env{
		cfg:     cfg,
		logger:  logger,
		lang:    lang,
		catalog: cat,
		reg:     reg,
	}, nil
}
