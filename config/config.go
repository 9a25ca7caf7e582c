package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Provider (Late) API configuration.
	ProviderBaseURL   string `mapstructure:"PROVIDER_BASE_URL"`
	ProviderAPIKey    string `mapstructure:"PROVIDER_API_KEY"`
	ProviderTimeoutMS int    `mapstructure:"PROVIDER_TIMEOUT_MS"`

	// Dashboard access gate. Either a plaintext key or a bcrypt hash
	// of it; when both are set the hash wins.
	DashboardKey     string `mapstructure:"DASHBOARD_KEY"`
	DashboardKeyHash string `mapstructure:"DASHBOARD_KEY_HASH"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAttemptDB int    `mapstructure:"REDIS_ATTEMPT_DB"`

	// TTLs, in seconds.
	CacheTTL      int `mapstructure:"CACHE_TTL"`
	AttemptTTL    int `mapstructure:"ATTEMPT_TTL"`
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("PROVIDER_BASE_URL", "https://getlate.dev/api/v1")
	viper.SetDefault("PROVIDER_TIMEOUT_MS", 15000)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_ATTEMPT_DB", 1)
	viper.SetDefault("CACHE_TTL", 60)
	viper.SetDefault("ATTEMPT_TTL", 900)
	viper.SetDefault("SESSION_TTL_MIN", 1440)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
