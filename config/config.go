package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat relay
	Gemini  GeminiConfig
	Chat    ChatConfig
	Session SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	StaticDir      string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

type ChatConfig struct {
	MaxTurns          int
	SystemInstruction string
}

type SessionConfig struct {
	IdleTTL     time.Duration
	MaxSessions int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.StaticDir = v.GetString("http_server.static_dir")
	cfg.HTTPServer.AllowedOrigins = splitList(v.GetStringSlice("http_server.allowed_origins"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = strings.TrimSpace(v.GetString("gemini.api_key"))
	cfg.Gemini.Model = v.GetString("gemini.model")
	cfg.Gemini.APIURL = v.GetString("gemini.api_url")
	cfg.Gemini.Timeout = v.GetDuration("gemini.timeout")

	// Chat & sessions
	cfg.Chat.MaxTurns = v.GetInt("chat.max_turns")
	cfg.Chat.SystemInstruction = v.GetString("chat.system_instruction")
	cfg.Session.IdleTTL = v.GetDuration("session.idle_ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.Chat.MaxTurns <= 0 {
		return fmt.Errorf("chat.max_turns must be positive, got %d", cfg.Chat.MaxTurns)
	}
	if cfg.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive, got %s", cfg.Gemini.Timeout)
	}
	if cfg.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive, got %d", cfg.Session.MaxSessions)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.static_dir", "public")
	v.SetDefault("http_server.allowed_origins", []string{"*"})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("gemini.model", "gemini-2.0-flash-001")
	v.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.timeout", "30s")

	v.SetDefault("chat.max_turns", 10)
	v.SetDefault("session.idle_ttl", "30m")
	v.SetDefault("session.max_sessions", 10000)

	// Flat env names used by existing deployments.
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("gemini.model", "GEMINI_MODEL")
	_ = v.BindEnv("port", "PORT")
}

// splitList flattens comma separated entries, since env values arrive as one string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
