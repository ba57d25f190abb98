package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-community/internal/api/http"
	"github.com/jekabolt/grbpwr-community/internal/mail"
	"github.com/jekabolt/grbpwr-community/internal/store"
	"github.com/jekabolt/grbpwr-community/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	Records store.Config   `mapstructure:"records"`
	Logger  log.Config     `mapstructure:"logger"`
	HTTP    httpapi.Config `mapstructure:"http"`
	Mailer  mail.Config    `mapstructure:"mailer"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	// Enable environment variable support
	// Viper will automatically read env vars and override config file values
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	// Try to read config file (optional - can work with env vars only)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/grbpwr-community")
		viper.AddConfigPath("/etc/grbpwr-community")
		// Try to read config, but don't fail if it doesn't exist
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.HTTP.Port == "" {
		config.HTTP.Port = "8080"
	}
	if config.Records.Path == "" {
		config.Records.Path = "subscribers.csv"
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys
// This allows using the flat env var names the deployment exposes
func bindEnvVars() {
	// Records
	viper.BindEnv("records.path", "RECORDS_PATH")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Mailer
	viper.BindEnv("mailer.smtp_host", "SMTP_HOST")
	viper.BindEnv("mailer.smtp_port", "SMTP_PORT")
	viper.BindEnv("mailer.username", "EMAIL_USERNAME")
	viper.BindEnv("mailer.password", "EMAIL_PASSWORD")
	viper.BindEnv("mailer.from_address", "FROM_ADDRESS")
	viper.BindEnv("mailer.from_name", "FROM_NAME")
	viper.BindEnv("mailer.whatsapp_link", "WHATSAPP_LINK")
}
