package config

// Config is the full service configuration, stored as config.toml with one
// section per concern.
type Config struct {
	API     APIConfig     `toml:"api" mapstructure:"api"`
	Auth    AuthConfig    `toml:"auth" mapstructure:"auth"`
	Storage StorageConfig `toml:"storage" mapstructure:"storage"`
	Memory  MemoryConfig  `toml:"memory" mapstructure:"memory"`
	GenAI   GenAIConfig   `toml:"genai" mapstructure:"genai"`
	Rates   RatesConfig   `toml:"rates" mapstructure:"rates"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Listen string `toml:"listen" mapstructure:"listen"`
}

// AuthConfig holds bearer-token verification settings.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string `toml:"issuer" mapstructure:"issuer"`
}

// StorageConfig selects and configures the store driver.
type StorageConfig struct {
	// Driver is "memory" or "sqlite".
	Driver     string `toml:"driver" mapstructure:"driver"`
	SQLitePath string `toml:"sqlite_path" mapstructure:"sqlite_path"`
}

// MemoryConfig holds knowledge-graph retention settings.
type MemoryConfig struct {
	// MaxNodesPerGraph caps memory nodes per user (0 = unbounded); past
	// the cap, least-recently-accessed nodes are evicted at commit time.
	MaxNodesPerGraph int `toml:"max_nodes_per_graph" mapstructure:"max_nodes_per_graph"`
}

// GenAIConfig holds generation provider selection and credentials.
type GenAIConfig struct {
	// Provider is the default provider: "gemini", "openai", or "anthropic".
	Provider string `toml:"provider" mapstructure:"provider"`

	GeminiAPIKey string `toml:"gemini_api_key" mapstructure:"gemini_api_key"`
	GeminiModel  string `toml:"gemini_model" mapstructure:"gemini_model"`

	OpenAIAPIKey  string `toml:"openai_api_key" mapstructure:"openai_api_key"`
	OpenAIBaseURL string `toml:"openai_base_url" mapstructure:"openai_base_url"`
	OpenAIModel   string `toml:"openai_model" mapstructure:"openai_model"`

	AnthropicAPIKey string `toml:"anthropic_api_key" mapstructure:"anthropic_api_key"`
	AnthropicModel  string `toml:"anthropic_model" mapstructure:"anthropic_model"`
}

// RatesConfig prices ledger operations.
type RatesConfig struct {
	QueryBaseCost      uint64 `toml:"query_base_cost" mapstructure:"query_base_cost"`
	StorageCostPerByte uint64 `toml:"storage_cost_per_byte" mapstructure:"storage_cost_per_byte"`
}
