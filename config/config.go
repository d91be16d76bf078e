// Package config loads and validates the EigenLab service configuration
// from an optional YAML file and EIGENLAB_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the EigenLab service.
type Config struct {
	API struct {
		Port           int      `mapstructure:"port"`
		TLS            bool     `mapstructure:"tls"`
		CertFile       string   `mapstructure:"cert_file"`
		KeyFile        string   `mapstructure:"key_file"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
		TrustProxy     bool     `mapstructure:"trust_proxy"`
		RateLimit      struct {
			RequestsPerSecond int `mapstructure:"requests_per_second"`
			Burst             int `mapstructure:"burst"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Auth struct {
		Enabled  bool   `mapstructure:"enabled"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		// HashedPassword is derived from Password at load time; the plain
		// password is cleared and never kept in memory afterwards.
		HashedPassword string
		BcryptCost     int `mapstructure:"bcrypt_cost"`
	} `mapstructure:"auth"`

	Engine struct {
		// AlignmentTolerance is applied when a check-eigenvector request
		// omits its own tolerance.
		AlignmentTolerance float64 `mapstructure:"alignment_tolerance"`
		// MaxTransformDim caps the matrix size accepted by the transform
		// endpoint. The engine itself has no limit; this guards the API
		// against oversized payloads.
		MaxTransformDim int `mapstructure:"max_transform_dim"`
	} `mapstructure:"engine"`
}

// LoadConfig reads config.yaml from the working directory or ./config,
// applies EIGENLAB_* environment overrides, and validates the result.
// A missing config file is not an error; defaults and env vars apply.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	loadFromEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, will use defaults and env vars
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validateAndHash(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("api.port", 5000)
	viper.SetDefault("api.tls", false)
	viper.SetDefault("api.cert_file", "server.crt")
	viper.SetDefault("api.key_file", "server.key")
	viper.SetDefault("api.allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("api.trust_proxy", false)
	viper.SetDefault("api.rate_limit.requests_per_second", 50)
	viper.SetDefault("api.rate_limit.burst", 100)

	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.username", "")
	viper.SetDefault("auth.password", "")
	viper.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)

	viper.SetDefault("engine.alignment_tolerance", 1e-6)
	viper.SetDefault("engine.max_transform_dim", 16)
}

func loadFromEnv() {
	viper.SetEnvPrefix("EIGENLAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Explicit bindings so the common knobs work without a config file.
	_ = viper.BindEnv("api.port", "EIGENLAB_API_PORT")
	_ = viper.BindEnv("api.allowed_origins", "EIGENLAB_ALLOWED_ORIGINS")
	_ = viper.BindEnv("auth.enabled", "EIGENLAB_AUTH_ENABLED")
	_ = viper.BindEnv("auth.username", "EIGENLAB_AUTH_USERNAME")
	_ = viper.BindEnv("auth.password", "EIGENLAB_AUTH_PASSWORD")
	_ = viper.BindEnv("engine.alignment_tolerance", "EIGENLAB_ALIGNMENT_TOLERANCE")
}

// validateAndHash enforces config invariants and replaces the plain auth
// password with its bcrypt hash.
func validateAndHash(config *Config) error {
	if config.API.Port < 1 || config.API.Port > 65535 {
		return fmt.Errorf("api.port must be in 1..65535, got %d", config.API.Port)
	}
	if config.API.RateLimit.RequestsPerSecond < 1 {
		return fmt.Errorf("api.rate_limit.requests_per_second must be positive, got %d", config.API.RateLimit.RequestsPerSecond)
	}
	if config.API.RateLimit.Burst < 1 {
		return fmt.Errorf("api.rate_limit.burst must be positive, got %d", config.API.RateLimit.Burst)
	}
	if config.Engine.AlignmentTolerance <= 0 {
		return fmt.Errorf("engine.alignment_tolerance must be positive, got %g", config.Engine.AlignmentTolerance)
	}
	if config.Engine.MaxTransformDim < 1 {
		return fmt.Errorf("engine.max_transform_dim must be positive, got %d", config.Engine.MaxTransformDim)
	}

	if config.Auth.Enabled {
		if config.Auth.Username == "" {
			return fmt.Errorf("auth.username is required when auth is enabled")
		}
		if config.Auth.Password == "" {
			return fmt.Errorf("auth.password is required when auth is enabled")
		}
		cost := config.Auth.BcryptCost
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			cost = bcrypt.DefaultCost
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(config.Auth.Password), cost)
		if err != nil {
			return fmt.Errorf("failed to hash auth password: %w", err)
		}
		config.Auth.HashedPassword = string(hashed)
		config.Auth.Password = ""
	}

	return nil
}
