package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/service"
)

type Config struct {
	Port              string    `mapstructure:"port"`
	AllowedOrigin     string    `mapstructure:"allowed_origin"`
	Provider          string    `mapstructure:"provider"`
	Model             string    `mapstructure:"model"`
	AIEndpoint        string    `mapstructure:"ai_endpoint"`
	GeminiAPIKey      string    `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey      string    `mapstructure:"OPENAI_API_KEY"`
	MultipartMemoryMB int64     `mapstructure:"multipart_memory_mb"`
	Log               LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("allowed_origin", "http://localhost:3000")
	v.SetDefault("provider", service.PROVIDER_GEMINI)
	v.SetDefault("model", "")
	v.SetDefault("ai_endpoint", "")
	v.SetDefault("multipart_memory_mb", 32)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}

// LoadConfig reads configuration from configPath, or from config/config.yaml
// or ./config.yaml when configPath is empty and such a file exists.
// Environment variables override file values (log.level as LOG_LEVEL).
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set up Viper to read from config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("config")
		v.AddConfigPath(".")
	}
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		logger.Debug("config_file_loaded", "path", v.ConfigFileUsed())
	}

	// Bind environment variables
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("OPENAI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.Provider = strings.ToLower(strings.TrimSpace(config.Provider))

	return &config, nil
}

// Validate checks that the selected provider is known and its API key is set.
func (c *Config) Validate() error {
	switch c.Provider {
	case service.PROVIDER_GEMINI:
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY environment variable not set")
		}
	case service.PROVIDER_OPENAI:
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY environment variable not set")
		}
	default:
		return fmt.Errorf("unknown provider %q, expected %s or %s", c.Provider, service.PROVIDER_GEMINI, service.PROVIDER_OPENAI)
	}
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	return nil
}

// AIServiceConfig returns the settings for the selected provider's client.
func (c *Config) AIServiceConfig() service.AIServiceConfig {
	apiKey := c.GeminiAPIKey
	if c.Provider == service.PROVIDER_OPENAI {
		apiKey = c.OpenAIAPIKey
	}
	return service.AIServiceConfig{
		Provider:   c.Provider,
		Model:      c.Model,
		APIKey:     apiKey,
		AIEndpoint: c.AIEndpoint,
	}
}

func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
	}
}
