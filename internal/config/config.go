// Package config loads the YAML settings shared by the pressgloss binaries.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/daide-tools/pressgloss"
)

// Config is the top-level configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Translate TranslateConfig `yaml:"translate"`
	// ReferenceData is a CSV file replacing the embedded map; empty keeps
	// the embedded one.
	ReferenceData string        `yaml:"reference_data"`
	Logging       LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the web service.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// TranslateConfig holds translation defaults.
type TranslateConfig struct {
	Tones []string `yaml:"tones"`
	// Seed fixes random synthesis; 0 means time based.
	Seed uint64 `yaml:"seed"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Translate: TranslateConfig{
			Tones: []string{string(pressgloss.ToneObjective)},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file over the defaults. An empty
// path or a missing file gives the defaults. PRESSGLOSS_ADDR overrides the
// listen address.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Wrap(err, "read config")
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, "parse config")
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("PRESSGLOSS_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate checks the settings that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is empty")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrapf(err, "logging.level %q", c.Logging.Level)
	}
	known := pressgloss.NewToneSet(pressgloss.Tones...)
	for _, t := range c.Translate.Tones {
		if !known.Has(pressgloss.Tone(strings.TrimSpace(t))) {
			return errors.Errorf("translate.tones: unknown tone %q", t)
		}
	}
	return nil
}

// Tones returns the default tones.
func (c *Config) Tones() []pressgloss.Tone {
	out := make([]pressgloss.Tone, 0, len(c.Translate.Tones))
	for _, t := range c.Translate.Tones {
		out = append(out, pressgloss.Tone(strings.TrimSpace(t)))
	}
	return out
}

// Options turns the settings into Glosser options, loading the reference
// table when one is configured.
func (c *Config) Options(logger *zap.Logger) ([]pressgloss.Option, error) {
	opts := []pressgloss.Option{pressgloss.WithLogger(logger)}
	if c.ReferenceData != "" {
		ref, err := pressgloss.LoadRefDataFile(c.ReferenceData)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pressgloss.WithRefData(ref))
	}
	if c.Translate.Seed != 0 {
		opts = append(opts, pressgloss.WithSeed(c.Translate.Seed))
	}
	return opts, nil
}

// Logger builds a production zap logger at the configured level, or at
// Debug when verbose is set.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "logging.level %q", c.Logging.Level)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
