// Package config loads modelkit settings from defaults, an optional YAML file and
// MODELKIT_ environment variables, and builds the zap logger they describe.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/born-ml/modelkit/internal/serialization"
)

// EnvConfigPath names the environment variable holding an explicit config file.
const EnvConfigPath = "MODELKIT_CONFIG"

// Config holds application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Model   ModelConfig   `mapstructure:"model"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// ModelConfig holds defaults for building bundles.
type ModelConfig struct {
	Factory   string `mapstructure:"factory"`
	Tokenizer string `mapstructure:"tokenizer"`
	Language  string `mapstructure:"language"`
}

// ArchiveConfig holds archive reading settings.
type ArchiveConfig struct {
	SkipChecksum    bool   `mapstructure:"skip_checksum"`
	ValidationLevel string `mapstructure:"validation_level"`
}

// ReaderOptions converts the archive settings for the archive reader.
func (a ArchiveConfig) ReaderOptions() (serialization.ReaderOptions, error) {
	level, err := serialization.ParseValidationLevel(a.ValidationLevel)
	if err != nil {
		return serialization.ReaderOptions{}, fmt.Errorf("archive.validation_level: %w", err)
	}
	return serialization.ReaderOptions{
		SkipChecksumValidation: a.SkipChecksum,
		ValidationLevel:        level,
	}, nil
}

// Load reads configuration. The file is path if set, else $MODELKIT_CONFIG, else
// config.yaml in $HOME/.config/modelkit if it exists. Env var overrides use prefix
// MODELKIT_, for example MODELKIT_LOG_LEVEL.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("model.factory", "")
	v.SetDefault("model.tokenizer", "whitespace")
	v.SetDefault("model.language", "en")
	v.SetDefault("archive.skip_checksum", false)
	v.SetDefault("archive.validation_level", "strict")

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "modelkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MODELKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
