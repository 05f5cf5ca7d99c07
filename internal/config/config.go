package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server Server `mapstructure:"server"`
	Store  Store  `mapstructure:"store"`
	Cache  Cache  `mapstructure:"cache"`
	CORS   CORS   `mapstructure:"cors"`
}

type Server struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	SecretKey       string        `mapstructure:"secret_key"`
	Debug           bool          `mapstructure:"debug"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TemplateDir     string        `mapstructure:"template_dir"`
}

// Store tunes the synthetic telemetry generator. The defaults
// reproduce the demo fleet: 20 devices, 50-alert cap, 2 minute
// dashboard cache.
type Store struct {
	DeviceCount       int           `mapstructure:"device_count"`
	AlertCap          int           `mapstructure:"alert_cap"`
	SeedAlerts        int           `mapstructure:"seed_alerts"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	AlertProbability  float64       `mapstructure:"alert_probability"`
	StatusProbability float64       `mapstructure:"status_probability"`
	JitterFraction    float64       `mapstructure:"jitter_fraction"`
}

type Cache struct {
	Backend string `mapstructure:"backend"` // "memory" or "redis"
	Redis   Redis  `mapstructure:"redis"`
}

type Redis struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("PULSEHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.debug", false)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")
	viper.SetDefault("server.template_dir", "./web/templates")

	// Store defaults
	viper.SetDefault("store.device_count", 20)
	viper.SetDefault("store.alert_cap", 50)
	viper.SetDefault("store.seed_alerts", 15)
	viper.SetDefault("store.cache_ttl", "2m")
	viper.SetDefault("store.alert_probability", 0.10)
	viper.SetDefault("store.status_probability", 0.05)
	viper.SetDefault("store.jitter_fraction", 0.10)

	// Cache defaults
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.redis.host", "localhost")
	viper.SetDefault("cache.redis.port", 6379)
	viper.SetDefault("cache.redis.db", 0)

	// CORS defaults
	viper.SetDefault("cors.allowed_origins", []string{"*"})
}

func validateConfig(config *Config) error {
	if config.Store.DeviceCount <= 0 {
		return fmt.Errorf("store device_count must be positive")
	}
	if config.Store.AlertCap <= 0 {
		return fmt.Errorf("store alert_cap must be positive")
	}
	if config.Store.CacheTTL <= 0 {
		return fmt.Errorf("store cache_ttl must be positive")
	}
	if config.Cache.Backend != "memory" && config.Cache.Backend != "redis" {
		return fmt.Errorf("cache backend must be memory or redis, got %q", config.Cache.Backend)
	}
	if config.Server.SecretKey == "" {
		key, err := generateSecretKey()
		if err != nil {
			return fmt.Errorf("failed to generate secret key: %w", err)
		}
		config.Server.SecretKey = key
	}
	return nil
}

func generateSecretKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
