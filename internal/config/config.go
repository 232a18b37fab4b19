// Package config loads and validates service configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type ServerConfig struct {
	Address               string   `mapstructure:"address" validate:"required"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gt=0"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"gt=0"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database" validate:"required"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model" validate:"required"`
}

type ModerationConfig struct {
	// StagingDirectory is where moderation payload staging files are created.
	// Empty means the OS temp directory.
	StagingDirectory string `mapstructure:"staging_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/deck-ai")
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.request_timeout_seconds", 60)
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "deck_ai")
	v.SetDefault("database.database", "deck_ai")
	v.SetDefault("openai.model", "gpt-4o-mini")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "DECK_AI_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DECK_AI_DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration and reports every invalid field, with
// messages phrased against the mapstructure field names.
func (cfg *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return fmt.Errorf("newValidator() > %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validate.Struct() > %w", err)
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldError.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
	}
	return nil
}
