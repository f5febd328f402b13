package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load builds the effective configuration. Precedence (highest to lowest):
//
//  1. Environment variables (MEMORYMIND_API_LISTEN, MEMORYMIND_GENAI_GEMINI_API_KEY, ...)
//  2. config.toml values (from configPath, or the working directory when empty)
//  3. Defaults from NewDefaultConfig()
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and env apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("MEMORYMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// ReadFile loads the config file at path merged over defaults, ignoring
// environment variables. A missing file yields pure defaults so `config
// get` and `config set` work before the file exists.
func ReadFile(path string) (*Config, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// WriteFile persists cfg to path as TOML, creating or overwriting the
// file.
func WriteFile(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigType("toml")

	v.Set("api.listen", cfg.API.Listen)

	v.Set("auth.jwt_secret", cfg.Auth.JWTSecret)
	v.Set("auth.issuer", cfg.Auth.Issuer)

	v.Set("storage.driver", cfg.Storage.Driver)
	v.Set("storage.sqlite_path", cfg.Storage.SQLitePath)

	v.Set("memory.max_nodes_per_graph", cfg.Memory.MaxNodesPerGraph)

	v.Set("genai.provider", cfg.GenAI.Provider)
	v.Set("genai.gemini_api_key", cfg.GenAI.GeminiAPIKey)
	v.Set("genai.gemini_model", cfg.GenAI.GeminiModel)
	v.Set("genai.openai_api_key", cfg.GenAI.OpenAIAPIKey)
	v.Set("genai.openai_base_url", cfg.GenAI.OpenAIBaseURL)
	v.Set("genai.openai_model", cfg.GenAI.OpenAIModel)
	v.Set("genai.anthropic_api_key", cfg.GenAI.AnthropicAPIKey)
	v.Set("genai.anthropic_model", cfg.GenAI.AnthropicModel)

	v.Set("rates.query_base_cost", cfg.Rates.QueryBaseCost)
	v.Set("rates.storage_cost_per_byte", cfg.Rates.StorageCostPerByte)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// setViperDefaults registers defaults from NewDefaultConfig() using
// dotted-key notation, keeping defaults.go the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("api.listen", d.API.Listen)

	v.SetDefault("auth.jwt_secret", d.Auth.JWTSecret)
	v.SetDefault("auth.issuer", d.Auth.Issuer)

	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.sqlite_path", d.Storage.SQLitePath)

	v.SetDefault("memory.max_nodes_per_graph", d.Memory.MaxNodesPerGraph)

	v.SetDefault("genai.provider", d.GenAI.Provider)
	v.SetDefault("genai.gemini_api_key", d.GenAI.GeminiAPIKey)
	v.SetDefault("genai.gemini_model", d.GenAI.GeminiModel)
	v.SetDefault("genai.openai_api_key", d.GenAI.OpenAIAPIKey)
	v.SetDefault("genai.openai_base_url", d.GenAI.OpenAIBaseURL)
	v.SetDefault("genai.openai_model", d.GenAI.OpenAIModel)
	v.SetDefault("genai.anthropic_api_key", d.GenAI.AnthropicAPIKey)
	v.SetDefault("genai.anthropic_model", d.GenAI.AnthropicModel)

	v.SetDefault("rates.query_base_cost", d.Rates.QueryBaseCost)
	v.SetDefault("rates.storage_cost_per_byte", d.Rates.StorageCostPerByte)
}
