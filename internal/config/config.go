package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHTTPAddress  = ":8080"
	DefaultBaseURL      = "http://localhost:8080"
	DefaultLogLevel     = "info"
	DefaultMaxBodyBytes = 10 * 1024 * 1024

	// DefaultMaxBcryptCost caps bcrypt hashing served over HTTP. Cost 14
	// takes around a second on current hardware.
	DefaultMaxBcryptCost = 14
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	HTTPAddress  string `mapstructure:"http_address"`
	BaseURL      string `mapstructure:"base_url"`
	LogLevel     string `mapstructure:"log_level"`
	EnableCORS   bool   `mapstructure:"enable_cors"`
	MaxBodyBytes int    `mapstructure:"max_body_bytes"`

	MaxBcryptCost int `mapstructure:"max_bcrypt_cost"`
}

// Load reads defaults, then devtoolbox.yaml (or configFile when set), then
// environment variables such as HTTP_ADDRESS and BASE_URL.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"http_address", "base_url", "log_level", "enable_cors", "max_body_bytes", "max_bcrypt_cost"} {
		if err := v.BindEnv(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to bind environment variable")
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("devtoolbox")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.devtoolbox")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Using config file")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_address", DefaultHTTPAddress)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("enable_cors", true)
	v.SetDefault("max_body_bytes", DefaultMaxBodyBytes)
	v.SetDefault("max_bcrypt_cost", DefaultMaxBcryptCost)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var invalid []string

	if strings.TrimSpace(c.HTTPAddress) == "" {
		invalid = append(invalid, "HTTP_ADDRESS must not be empty")
	}

	if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		invalid = append(invalid, fmt.Sprintf("BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		invalid = append(invalid, fmt.Sprintf("LOG_LEVEL %q is not a log level", c.LogLevel))
	}

	if c.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES must be positive")
	}

	if c.MaxBcryptCost < bcrypt.MinCost || c.MaxBcryptCost > bcrypt.MaxCost {
		invalid = append(invalid, fmt.Sprintf("MAX_BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, "; "))
	}

	return nil
}

// Level is the configured zerolog level, falling back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}
