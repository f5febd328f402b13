package config

const (
	defaultListen = ":8080"

	defaultIssuer = "memorymind"

	defaultStorageDriver = "memory"
	defaultSQLitePath    = "memorymind.db"

	defaultProvider = "gemini"

	defaultQueryBaseCost      = 1000
	defaultStorageCostPerByte = 100
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Listen: defaultListen,
		},
		Auth: AuthConfig{
			Issuer: defaultIssuer,
		},
		Storage: StorageConfig{
			Driver:     defaultStorageDriver,
			SQLitePath: defaultSQLitePath,
		},
		Memory: MemoryConfig{
			// Unbounded matches historical behavior; set a cap to enable
			// LRU eviction.
			MaxNodesPerGraph: 0,
		},
		GenAI: GenAIConfig{
			Provider: defaultProvider,
		},
		Rates: RatesConfig{
			QueryBaseCost:      defaultQueryBaseCost,
			StorageCostPerByte: defaultStorageCostPerByte,
		},
	}
}
