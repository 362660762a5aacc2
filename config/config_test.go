package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	if yaml != "" {
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestBuild_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("PORT", "")

	cfg, err := build(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 3000, cfg.HTTPServer.Port)
	assert.Equal(t, "public", cfg.HTTPServer.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.HTTPServer.AllowedOrigins)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash-001", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Gemini.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 10, cfg.Chat.MaxTurns)
	assert.Empty(t, cfg.Chat.SystemInstruction)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
}

func TestBuild_FlatEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  k-123 ")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("PORT", "8081")

	cfg, err := build(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "k-123", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 8081, cfg.HTTPServer.Port)
}

func TestBuild_File(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("PORT", "")

	cfg, err := build(newViper(t, `
http_server:
  port: 9000
  allowed_origins: "https://a.example, https://b.example"
gemini:
  api_key: from-file
  timeout: 5s
chat:
  max_turns: 4
  system_instruction: "Be brief."
session:
  idle_ttl: 1m
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTPServer.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTPServer.AllowedOrigins)
	assert.Equal(t, "from-file", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 4, cfg.Chat.MaxTurns)
	assert.Equal(t, "Be brief.", cfg.Chat.SystemInstruction)
	assert.Equal(t, time.Minute, cfg.Session.IdleTTL)
}

func TestBuild_Invalid(t *testing.T) {
	t.Setenv("PORT", "")

	tcs := map[string]string{
		"port":      "http_server:\n  port: 70000\n",
		"max turns": "chat:\n  max_turns: 0\n",
		"timeout":   "gemini:\n  timeout: 0s\n",
		"sessions":  "session:\n  max_sessions: 0\n",
	}
	for name, yaml := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := build(newViper(t, yaml))
			assert.Error(t, err)
		})
	}
}
