package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memorymindai/memorymind/pkg/config"
)

func writeConfig(content string) string {
	tmpDir := GinkgoT().TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("returns defaults when no config file exists", func() {
		cfg, err := config.Load(filepath.Join(GinkgoT().TempDir(), "missing.toml"))

		// A named-but-missing file is an error; only the search path case
		// tolerates absence.
		Expect(err).To(HaveOccurred())
		Expect(cfg).To(BeNil())
	})

	It("applies defaults for unset keys", func() {
		path := writeConfig(`
[auth]
jwt_secret = "s3cret"
`)

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.API.Listen).To(Equal(":8080"))
		Expect(cfg.Auth.Issuer).To(Equal("memorymind"))
		Expect(cfg.Auth.JWTSecret).To(Equal("s3cret"))
		Expect(cfg.Storage.Driver).To(Equal("memory"))
		Expect(cfg.GenAI.Provider).To(Equal("gemini"))
		Expect(cfg.Rates.QueryBaseCost).To(Equal(uint64(1000)))
		Expect(cfg.Rates.StorageCostPerByte).To(Equal(uint64(100)))
		Expect(cfg.Memory.MaxNodesPerGraph).To(BeZero())
	})

	It("reads every section from the file", func() {
		path := writeConfig(`
[api]
listen = ":9999"

[auth]
jwt_secret = "s3cret"
issuer = "custom"

[storage]
driver = "sqlite"
sqlite_path = "/tmp/mm.db"

[memory]
max_nodes_per_graph = 200

[genai]
provider = "anthropic"
anthropic_api_key = "sk-ant"

[rates]
query_base_cost = 500
storage_cost_per_byte = 50
`)

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.API.Listen).To(Equal(":9999"))
		Expect(cfg.Auth.Issuer).To(Equal("custom"))
		Expect(cfg.Storage.Driver).To(Equal("sqlite"))
		Expect(cfg.Storage.SQLitePath).To(Equal("/tmp/mm.db"))
		Expect(cfg.Memory.MaxNodesPerGraph).To(Equal(200))
		Expect(cfg.GenAI.Provider).To(Equal("anthropic"))
		Expect(cfg.GenAI.AnthropicAPIKey).To(Equal("sk-ant"))
		Expect(cfg.Rates.QueryBaseCost).To(Equal(uint64(500)))
		Expect(cfg.Rates.StorageCostPerByte).To(Equal(uint64(50)))
	})

	It("lets environment variables override the file", func() {
		GinkgoT().Setenv("MEMORYMIND_API_LISTEN", ":7777")
		GinkgoT().Setenv("MEMORYMIND_GENAI_GEMINI_API_KEY", "from-env")

		path := writeConfig(`
[api]
listen = ":9999"
`)

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.API.Listen).To(Equal(":7777"))
		Expect(cfg.GenAI.GeminiAPIKey).To(Equal("from-env"))
	})
})

var _ = Describe("ReadFile and WriteFile", func() {
	It("yields defaults when the file does not exist", func() {
		cfg, err := config.ReadFile(filepath.Join(GinkgoT().TempDir(), "missing.toml"))

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.API.Listen).To(Equal(":8080"))
		Expect(cfg.Storage.Driver).To(Equal("memory"))
	})

	It("ignores environment variables", func() {
		GinkgoT().Setenv("MEMORYMIND_API_LISTEN", ":7777")

		cfg, err := config.ReadFile(filepath.Join(GinkgoT().TempDir(), "missing.toml"))

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.API.Listen).To(Equal(":8080"))
	})

	It("round-trips a config through WriteFile", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.toml")

		cfg := config.NewDefaultConfig()
		cfg.Storage.Driver = "sqlite"
		cfg.Rates.QueryBaseCost = 500
		Expect(config.WriteFile(cfg, path)).To(Succeed())

		loaded, err := config.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Storage.Driver).To(Equal("sqlite"))
		Expect(loaded.Rates.QueryBaseCost).To(Equal(uint64(500)))
		Expect(loaded.Auth.Issuer).To(Equal("memorymind"))
	})
})

var _ = Describe("Config keys", func() {
	It("accepts every listed key", func() {
		for _, key := range config.ValidConfigKeys() {
			Expect(config.IsValidConfigKey(key)).To(BeTrue(), "key %s", key)
		}
	})

	It("rejects unknown keys", func() {
		Expect(config.IsValidConfigKey("nope")).To(BeFalse())

		_, err := config.GetValue(config.NewDefaultConfig(), "nope")
		Expect(err).To(HaveOccurred())

		Expect(config.SetValue(config.NewDefaultConfig(), "nope", "x")).To(HaveOccurred())
	})

	It("sets and gets string values", func() {
		cfg := config.NewDefaultConfig()

		Expect(config.SetValue(cfg, "genai.provider", "openai")).To(Succeed())
		Expect(cfg.GenAI.Provider).To(Equal("openai"))

		value, err := config.GetValue(cfg, "genai.provider")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal("openai"))
	})

	It("parses numeric values", func() {
		cfg := config.NewDefaultConfig()

		Expect(config.SetValue(cfg, "memory.max_nodes_per_graph", "250")).To(Succeed())
		Expect(cfg.Memory.MaxNodesPerGraph).To(Equal(250))

		Expect(config.SetValue(cfg, "rates.storage_cost_per_byte", "42")).To(Succeed())
		Expect(cfg.Rates.StorageCostPerByte).To(Equal(uint64(42)))
	})

	It("rejects malformed numeric values", func() {
		cfg := config.NewDefaultConfig()

		Expect(config.SetValue(cfg, "memory.max_nodes_per_graph", "lots")).To(HaveOccurred())
		Expect(config.SetValue(cfg, "rates.query_base_cost", "-5")).To(HaveOccurred())
	})
})

var _ = Describe("NewDefaultConfig", func() {
	It("is the single source of default values", func() {
		d := config.NewDefaultConfig()

		Expect(d.API.Listen).To(Equal(":8080"))
		Expect(d.Auth.JWTSecret).To(BeEmpty())
		Expect(d.Storage.SQLitePath).To(Equal("memorymind.db"))
	})
})
