package configcmder_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	configcmder "github.com/memorymindai/memorymind/cmd/memorymind/config"
	"github.com/memorymindai/memorymind/pkg/config"
)

var _ = Describe("NewConfigCmd", func() {
	It("creates a command with the correct use string", func() {
		cmd := configcmder.NewConfigCmd()
		Expect(cmd.Use).To(Equal("config"))
	})

	It("has set, get, and list subcommands", func() {
		cmd := configcmder.NewConfigCmd()
		cmds := cmd.Commands()
		subcommands := make([]string, 0, len(cmds))
		for _, sub := range cmds {
			subcommands = append(subcommands, sub.Name())
		}
		Expect(subcommands).To(ContainElements("set", "get", "list"))
	})
})

var _ = Describe("Config command execution", func() {
	var configPath string

	BeforeEach(func() {
		configPath = filepath.Join(GinkgoT().TempDir(), "config.toml")
	})

	Describe("set subcommand", func() {
		It("creates the config file and persists the value", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"set", "genai.provider", "anthropic", "--config", configPath})
			Expect(cmd.Execute()).To(Succeed())

			_, err := os.Stat(configPath)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := config.ReadFile(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GenAI.Provider).To(Equal("anthropic"))
		})

		It("preserves previously set values across sets", func() {
			set := func(key, value string) {
				cmd := configcmder.NewConfigCmd()
				cmd.SetArgs([]string{"set", key, value, "--config", configPath})
				Expect(cmd.Execute()).To(Succeed())
			}

			set("storage.driver", "sqlite")
			set("api.listen", ":9999")

			cfg, err := config.ReadFile(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Storage.Driver).To(Equal("sqlite"))
			Expect(cfg.API.Listen).To(Equal(":9999"))
		})

		It("rejects unknown keys", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"set", "invalid_key", "value", "--config", configPath})
			Expect(cmd.Execute()).To(HaveOccurred())
		})

		It("requires exactly two arguments", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"set", "genai.provider", "--config", configPath})
			Expect(cmd.Execute()).To(HaveOccurred())
		})

		It("rejects invalid numeric values", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"set", "rates.query_base_cost", "not-a-number", "--config", configPath})
			Expect(cmd.Execute()).To(HaveOccurred())
		})
	})

	Describe("get subcommand", func() {
		It("gets a previously set value", func() {
			setCmd := configcmder.NewConfigCmd()
			setCmd.SetArgs([]string{"set", "genai.provider", "anthropic", "--config", configPath})
			Expect(setCmd.Execute()).To(Succeed())

			getCmd := configcmder.NewConfigCmd()
			getCmd.SetArgs([]string{"get", "genai.provider", "--config", configPath})
			Expect(getCmd.Execute()).To(Succeed())
		})

		It("runs without error when no config file exists", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"get", "api.listen", "--config", configPath})
			Expect(cmd.Execute()).To(Succeed())
		})

		It("rejects unknown keys", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"get", "invalid_key", "--config", configPath})
			Expect(cmd.Execute()).To(HaveOccurred())
		})

		It("requires exactly one argument", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"get", "--config", configPath})
			Expect(cmd.Execute()).To(HaveOccurred())
		})
	})

	Describe("list subcommand", func() {
		It("runs without error when no config file exists", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"list", "--config", configPath})
			Expect(cmd.Execute()).To(Succeed())
		})

		It("runs without error when config has values", func() {
			setCmd := configcmder.NewConfigCmd()
			setCmd.SetArgs([]string{"set", "storage.driver", "sqlite", "--config", configPath})
			Expect(setCmd.Execute()).To(Succeed())

			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"list", "--config", configPath})
			Expect(cmd.Execute()).To(Succeed())
		})

		It("rejects any arguments", func() {
			cmd := configcmder.NewConfigCmd()
			cmd.SetArgs([]string{"list", "extra", "--config", configPath})
			Expect(cmd.Execute()).To(HaveOccurred())
		})
	})
})
