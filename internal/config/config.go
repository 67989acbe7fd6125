package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service. Every
// external dependency is optional: when its setting is absent the service
// degrades to mock or static behaviour instead of failing.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	// Absence of DatabaseURL means reads fall back to static data and
	// writes are skipped silently.
	DatabaseURL string
	// Absence of RedisURL disables caching.
	RedisURL            string
	LeaderboardCacheTTL time.Duration

	// Absence of JWTSecret means every caller is treated as anonymous.
	JWTSecret string

	// Absence of Judge0URL means code execution returns a mock result.
	Judge0URL    string
	Judge0APIKey string

	// Absence of OpenAIAPIKey means AI feedback returns a fixed report.
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float32

	AIRateLimitPerMinute int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("COACH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "CodeCoach API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("leaderboard.cache_ttl", "2m")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 1024)
	v.SetDefault("ai.rate_limit_per_minute", 12)

	ttl, err := time.ParseDuration(v.GetString("leaderboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid leaderboard cache ttl: %w", err)
	}

	cfg := Config{
		AppName:              v.GetString("app.name"),
		AppEnv:               v.GetString("app.env"),
		AppPort:              v.GetString("app.port"),
		DatabaseURL:          v.GetString("database.url"),
		RedisURL:             v.GetString("redis.url"),
		LeaderboardCacheTTL:  ttl,
		JWTSecret:            v.GetString("jwt.secret"),
		Judge0URL:            strings.TrimRight(v.GetString("judge0.url"), "/"),
		Judge0APIKey:         v.GetString("judge0.api_key"),
		OpenAIAPIKey:         v.GetString("openai.api_key"),
		OpenAIModel:          v.GetString("openai.model"),
		OpenAIMaxTokens:      v.GetInt("openai.max_tokens"),
		OpenAITemperature:    float32(v.GetFloat64("openai.temperature")),
		AIRateLimitPerMinute: v.GetInt("ai.rate_limit_per_minute"),
	}

	if cfg.OpenAIMaxTokens <= 0 {
		cfg.OpenAIMaxTokens = 1024
	}

	if cfg.AIRateLimitPerMinute <= 0 {
		cfg.AIRateLimitPerMinute = 12
	}

	return cfg, nil
}
