package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables (prefix
// GLOSSA_, dots replaced by underscores) take precedence over file values.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything a deployment may reasonably omit.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 10080)
	v.SetDefault("scheduler.daily_new_limit", 20)
	v.SetDefault("scheduler.request_retention", 0.9)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars are the primary source.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("GLOSSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables. AutomaticEnv alone
	// does not surface keys that are absent from the config file.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "GLOSSA_SERVER_PORT"},
		{"server.log_level", "GLOSSA_SERVER_LOG_LEVEL"},
		{"database.url", "GLOSSA_DATABASE_URL"},
		{"auth.jwt_secret", "GLOSSA_AUTH_JWT_SECRET"},
		{"auth.token_lifetime_minutes", "GLOSSA_AUTH_TOKEN_LIFETIME_MINUTES"},
		{"auth.refresh_token_lifetime_minutes", "GLOSSA_AUTH_REFRESH_TOKEN_LIFETIME_MINUTES"},
		{"scheduler.daily_new_limit", "GLOSSA_SCHEDULER_DAILY_NEW_LIMIT"},
		{"scheduler.request_retention", "GLOSSA_SCHEDULER_REQUEST_RETENTION"},
		{"vocab.source_url", "GLOSSA_VOCAB_SOURCE_URL"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
