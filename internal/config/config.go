package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGoogleAI = "googleai"
	ProviderOllama   = "ollama"
	ProviderOpenAI   = "openai"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	LLM         LLMConfig
	Transcript  TranscriptConfig
	Redis       RedisConfig
	Diagnostics DiagnosticsConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig selects the backend the generation client talks to.
type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	ServerURL   string
	Temperature float64
	// Timeout bounds the single model call. Zero keeps the provider default.
	Timeout time.Duration
}

type TranscriptConfig struct {
	Language    string
	HTTPTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DiagnosticsConfig struct {
	MaxEntries int
	TTL        time.Duration
}

var defaultModels = map[string]string{
	ProviderGoogleAI: "gemini-1.5-flash",
	ProviderOllama:   "qwen3:0.6b",
	ProviderOpenAI:   "gpt-4o-mini",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("llm.provider", ProviderGoogleAI)
	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.timeout", 60)
	v.SetDefault("transcript.language", "en")
	v.SetDefault("transcript.http_timeout", 15)
	v.SetDefault("redis.db", 0)
	v.SetDefault("diagnostics.max_entries", 100)
	v.SetDefault("diagnostics.ttl", "168h")
}

// LoadConfig reads config.yaml (if any), a .env file (if any) and the
// process environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			APIKey:      v.GetString("llm.api_key"),
			Model:       v.GetString("llm.model"),
			ServerURL:   v.GetString("llm.server_url"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		Transcript: TranscriptConfig{
			Language:    v.GetString("transcript.language"),
			HTTPTimeout: time.Duration(v.GetInt("transcript.http_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Diagnostics: DiagnosticsConfig{
			MaxEntries: v.GetInt("diagnostics.max_entries"),
			TTL:        v.GetDuration("diagnostics.ttl"),
		},
	}

	// Provider specific key names take effect only when llm.api_key is unset.
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case ProviderGoogleAI:
			cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		case ProviderOpenAI:
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = defaultModels[cfg.LLM.Provider]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	switch c.LLM.Provider {
	case ProviderGoogleAI, ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key is required for provider %q", c.LLM.Provider)
		}
	case ProviderOllama:
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("llm.server_url is required for provider %q", c.LLM.Provider)
		}
	default:
		return fmt.Errorf("unsupported llm.provider: %q", c.LLM.Provider)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	if c.Diagnostics.MaxEntries <= 0 {
		return fmt.Errorf("diagnostics.max_entries must be positive")
	}
	return nil
}

// DiagnosticsEnabled reports whether malformed completions go to Redis.
func (c *Config) DiagnosticsEnabled() bool {
	return c.Redis.Address != ""
}
