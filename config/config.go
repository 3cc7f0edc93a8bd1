package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the server
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Provider ProviderConfig
	AWS      AWSConfig
	Auth     AuthConfig
	Chat     ChatConfig
	Search   SearchConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig selects the zap level and encoder
type LogConfig struct {
	Level  string
	Format string
}

// ProviderConfig selects the data provider: "mock" or "dynamodb"
type ProviderConfig struct {
	Kind string
	Seed int64
}

// AWSConfig holds region and bucket for the DynamoDB provider and photo uploads
type AWSConfig struct {
	Region string
	Bucket string
}

// AuthConfig holds session token settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// ChatConfig holds the simulated latencies of the chat models
type ChatConfig struct {
	MatchCount        int           `mapstructure:"match_count"`
	ReadReceiptDelay  time.Duration `mapstructure:"read_receipt_delay"`
	ReplyMinDelay     time.Duration `mapstructure:"reply_min_delay"`
	ReplyMaxDelay     time.Duration `mapstructure:"reply_max_delay"`
	SendRatePerMinute int           `mapstructure:"send_rate_per_minute"`
	SendBurst         int           `mapstructure:"send_burst"`
}

// SearchConfig controls whether filter criteria constrain results
type SearchConfig struct {
	EnforceFilters bool `mapstructure:"enforce_filters"`
}

// CORSConfig lists allowed origins
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads .env (if present), an optional config file, and VIBIN_* environment overrides
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("VIBIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("provider.kind", "mock")
	v.SetDefault("provider.seed", 0)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.bucket", "")

	v.SetDefault("auth.jwt_secret", "change-me")
	v.SetDefault("auth.token_ttl", "24h")

	v.SetDefault("chat.match_count", 8)
	v.SetDefault("chat.read_receipt_delay", "1s")
	v.SetDefault("chat.reply_min_delay", "2s")
	v.SetDefault("chat.reply_max_delay", "5s")
	v.SetDefault("chat.send_rate_per_minute", 30)
	v.SetDefault("chat.send_burst", 10)

	v.SetDefault("search.enforce_filters", false)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

func (c *Config) validate() error {
	switch c.Provider.Kind {
	case "mock", "dynamodb":
	default:
		return fmt.Errorf("unknown provider kind %q", c.Provider.Kind)
	}
	if c.Chat.ReplyMaxDelay < c.Chat.ReplyMinDelay {
		return fmt.Errorf("chat.reply_max_delay (%s) is shorter than chat.reply_min_delay (%s)", c.Chat.ReplyMaxDelay, c.Chat.ReplyMinDelay)
	}
	if c.Chat.MatchCount <= 0 {
		return fmt.Errorf("chat.match_count must be positive")
	}
	return nil
}
