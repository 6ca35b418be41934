package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. STOREFRONT_AUTH_JWT_SECRET.
const EnvPrefix = "STOREFRONT"

// legacyEnv maps config keys to the unprefixed variable names older
// deployments export.
var legacyEnv = map[string]string{
	"server.port":     "PORT",
	"database.url":    "DATABASE_URL",
	"auth.jwt_secret": "JWT_SECRET",
}

// Load configuration from defaults, an optional config.yaml, a .env file and
// environment variables. Environment variables take precedence over the
// config file. Returns a populated Config or an error if loading or
// validation fails.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.auth_rate_limit_per_minute", 0)
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("auth.token_lifetime_minutes", 24*60)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.enforce_latest_token", false)
}

// bindEnv registers every key explicitly so Unmarshal sees values that only
// exist in the environment. AutomaticEnv alone only affects Get calls.
func bindEnv(v *viper.Viper) error {
	keys := []string{
		"server.port",
		"server.log_level",
		"server.cors_allowed_origins",
		"server.auth_rate_limit_per_minute",
		"server.shutdown_timeout_seconds",
		"database.url",
		"database.max_open_conns",
		"database.auto_migrate",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"auth.bcrypt_cost",
		"auth.enforce_latest_token",
	}
	for _, key := range keys {
		names := []string{key, envName(key)}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy)
		}
		if err := v.BindEnv(names...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
