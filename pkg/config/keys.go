package config

import (
	"fmt"
	"strconv"
)

// keyInfo binds a dotted config key to typed accessors on Config.
type keyInfo struct {
	get func(*Config) string
	set func(*Config, string) error
}

func stringKey(field func(*Config) *string) keyInfo {
	return keyInfo{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, value string) error {
			*field(c) = value
			return nil
		},
	}
}

func intKey(field func(*Config) *int) keyInfo {
	return keyInfo{
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, value string) error {
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer value %q", value)
			}
			*field(c) = n
			return nil
		},
	}
}

func uintKey(field func(*Config) *uint64) keyInfo {
	return keyInfo{
		get: func(c *Config) string { return strconv.FormatUint(*field(c), 10) },
		set: func(c *Config, value string) error {
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid unsigned integer value %q", value)
			}
			*field(c) = n
			return nil
		},
	}
}

var configKeys = map[string]keyInfo{
	"api.listen": stringKey(func(c *Config) *string { return &c.API.Listen }),

	"auth.jwt_secret": stringKey(func(c *Config) *string { return &c.Auth.JWTSecret }),
	"auth.issuer":     stringKey(func(c *Config) *string { return &c.Auth.Issuer }),

	"storage.driver":      stringKey(func(c *Config) *string { return &c.Storage.Driver }),
	"storage.sqlite_path": stringKey(func(c *Config) *string { return &c.Storage.SQLitePath }),

	"memory.max_nodes_per_graph": intKey(func(c *Config) *int { return &c.Memory.MaxNodesPerGraph }),

	"genai.provider":          stringKey(func(c *Config) *string { return &c.GenAI.Provider }),
	"genai.gemini_api_key":    stringKey(func(c *Config) *string { return &c.GenAI.GeminiAPIKey }),
	"genai.gemini_model":      stringKey(func(c *Config) *string { return &c.GenAI.GeminiModel }),
	"genai.openai_api_key":    stringKey(func(c *Config) *string { return &c.GenAI.OpenAIAPIKey }),
	"genai.openai_base_url":   stringKey(func(c *Config) *string { return &c.GenAI.OpenAIBaseURL }),
	"genai.openai_model":      stringKey(func(c *Config) *string { return &c.GenAI.OpenAIModel }),
	"genai.anthropic_api_key": stringKey(func(c *Config) *string { return &c.GenAI.AnthropicAPIKey }),
	"genai.anthropic_model":   stringKey(func(c *Config) *string { return &c.GenAI.AnthropicModel }),

	"rates.query_base_cost":       uintKey(func(c *Config) *uint64 { return &c.Rates.QueryBaseCost }),
	"rates.storage_cost_per_byte": uintKey(func(c *Config) *uint64 { return &c.Rates.StorageCostPerByte }),
}

// ValidConfigKeys returns all supported configuration keys in TOML
// section order.
func ValidConfigKeys() []string {
	return []string{
		"api.listen",
		"auth.jwt_secret",
		"auth.issuer",
		"storage.driver",
		"storage.sqlite_path",
		"memory.max_nodes_per_graph",
		"genai.provider",
		"genai.gemini_api_key",
		"genai.gemini_model",
		"genai.openai_api_key",
		"genai.openai_base_url",
		"genai.openai_model",
		"genai.anthropic_api_key",
		"genai.anthropic_model",
		"rates.query_base_cost",
		"rates.storage_cost_per_byte",
	}
}

// IsValidConfigKey reports whether key is a supported configuration key.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}

// GetValue returns the string form of the given key's value in cfg.
func GetValue(cfg *Config, key string) (string, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}
	return info.get(cfg), nil
}

// SetValue parses value and stores it under the given key in cfg.
func SetValue(cfg *Config, key, value string) error {
	info, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}
	return info.set(cfg, value)
}
