// Package config loads folio settings from defaults, an optional folio.yaml,
// a .env file and FOLIO_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/folio/internal/store"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_STORE_BACKEND.
const EnvPrefix = "FOLIO"

// Config is the resolved configuration.
type Config struct {
	LogLevel string       `mapstructure:"logLevel" validate:"oneof=debug info warn error"`
	DataFile string       `mapstructure:"dataFile"`
	Store    StoreConfig  `mapstructure:"store"`
	Server   ServerConfig `mapstructure:"server"`
	Build    BuildConfig  `mapstructure:"build"`
	Typing   TypingConfig `mapstructure:"typing"`
	Reveal   RevealConfig `mapstructure:"reveal"`
	// Unicode enables box-drawing and symbol glyphs in the terminal viewer.
	Unicode bool `mapstructure:"unicode"`
}

// StoreConfig selects the preference backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"oneof=file sqlite memory"`
	// Path overrides the backend's default location under ~/.folio.
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required,hostname_port"`
}

type BuildConfig struct {
	Output string `mapstructure:"output" validate:"required"`
}

type TypingConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
}

// RevealConfig tunes scroll reveals. Zero is rejected: renderers read an
// unset threshold as the 0.1 default.
type RevealConfig struct {
	Threshold float64 `mapstructure:"threshold" validate:"gt=0,lte=1"`
}

// LoadOptions points Load at explicit files. Empty fields use ./folio.yaml
// and ./.env when they exist.
type LoadOptions struct {
	File    string
	EnvFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("dataFile", "")
	v.SetDefault("store.backend", "file")
	v.SetDefault("store.path", "")
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("build.output", "public")
	v.SetDefault("typing.interval", "50ms")
	v.SetDefault("reveal.threshold", 0.1)
	v.SetDefault("unicode", true)
}

// Default returns the configuration with no file or environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults always decode.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load resolves the configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, fmt.Errorf("config file %s: %w", opts.File, err)
		}
		v.SetConfigFile(opts.File)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			path := opts.File
			if path == "" {
				path = "folio.yaml"
			}
			return nil, folioerrors.NewParseError(path, 0, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("mapstructure")
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks field ranges and enumerations.
func Validate(cfg *Config) error {
	if cfg == nil {
		return folioerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			field := fieldPath(fe.Namespace())
			return folioerrors.NewValidationError(field, fmt.Sprintf("value %v failed '%s'", fe.Value(), fe.Tag()), err)
		}
		return folioerrors.NewValidationError("config", err.Error(), err)
	}
	return nil
}

// fieldPath drops the root type from "Config.store.backend".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// StorePath returns the configured store path or the backend default.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	switch store.Backend(c.Store.Backend) {
	case store.BackendSQLite:
		return store.DefaultPath("preferences.db")
	case store.BackendMemory:
		return "", nil
	default:
		return store.DefaultPath("preferences.json")
	}
}
