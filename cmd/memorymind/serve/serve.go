// Package servecmder provides the serve command running the API server.
package servecmder

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/memorymindai/memorymind/api"
	"github.com/memorymindai/memorymind/pkg/assistant"
	"github.com/memorymindai/memorymind/pkg/auth"
	"github.com/memorymindai/memorymind/pkg/config"
	"github.com/memorymindai/memorymind/pkg/contentstore"
	"github.com/memorymindai/memorymind/pkg/genai"
	"github.com/memorymindai/memorymind/pkg/genai/anthropic"
	"github.com/memorymindai/memorymind/pkg/genai/gemini"
	"github.com/memorymindai/memorymind/pkg/genai/openai"
	"github.com/memorymindai/memorymind/pkg/governance"
	"github.com/memorymindai/memorymind/pkg/ledger"
	"github.com/memorymindai/memorymind/pkg/logger"
	"github.com/memorymindai/memorymind/pkg/metrics"
	"github.com/memorymindai/memorymind/pkg/store"
	"github.com/memorymindai/memorymind/pkg/store/inmemory"
	"github.com/memorymindai/memorymind/pkg/store/sqlite"
)

type serveCommander struct {
	configPath string
	debug      bool
	logger     *zap.Logger
}

const serveLongDesc string = `Run the Memorymind API server.

Configuration comes from config.toml (or --config), overridable with
MEMORYMIND_* environment variables.`

const serveShortDesc string = "Run the Memorymind API server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to config.toml (default: working directory)")

	return cmd
}

func (c *serveCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer c.logger.Sync()

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret must be set")
	}

	st, err := c.newStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	rates := ledger.DefaultRates()
	if cfg.Rates.QueryBaseCost > 0 {
		rates.QueryBaseCost = cfg.Rates.QueryBaseCost
	}
	if cfg.Rates.StorageCostPerByte > 0 {
		rates.StorageCostPerByte = cfg.Rates.StorageCostPerByte
	}

	l := ledger.New(rates)
	content := contentstore.NewStore(l)
	board := governance.NewBoard(l)
	m := metrics.NewService()

	registry, err := c.newRegistry(cfg)
	if err != nil {
		return err
	}

	asst := assistant.New(st, registry, l, content, m, c.logger)

	verifier := auth.NewVerifier([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer)

	server := api.NewServer(
		api.Config{ListenAddr: cfg.API.Listen},
		asst, l, board, content, m, verifier, c.logger,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		return server.Shutdown()
	}
}

func (c *serveCommander) newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		driver, err := sqlite.NewDriver(sqlite.Config{
			Path:             cfg.Storage.SQLitePath,
			MaxNodesPerGraph: cfg.Memory.MaxNodesPerGraph,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite store: %w", err)
		}
		c.logger.Info("using SQLite storage", zap.String("path", cfg.Storage.SQLitePath))
		return driver, nil

	case "memory", "":
		c.logger.Info("using in-memory storage")
		return inmemory.NewDriver(inmemory.Config{
			MaxNodesPerGraph: cfg.Memory.MaxNodesPerGraph,
		}), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newRegistry builds the generation provider registry. Providers without
// credentials are still registered; they fail at call time so a
// misconfigured provider is reported per query, not at startup.
func (c *serveCommander) newRegistry(cfg *config.Config) (*genai.Registry, error) {
	generators := make(map[string]genai.Generator)

	geminiOpts := []gemini.Option{}
	if cfg.GenAI.GeminiModel != "" {
		geminiOpts = append(geminiOpts, gemini.WithModel(cfg.GenAI.GeminiModel))
	}
	generators["gemini"] = gemini.NewClient(cfg.GenAI.GeminiAPIKey, geminiOpts...)

	if cfg.GenAI.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.GenAI.OpenAIAPIKey, cfg.GenAI.OpenAIBaseURL, cfg.GenAI.OpenAIModel)
		if err != nil {
			return nil, fmt.Errorf("creating openai client: %w", err)
		}
		generators["openai"] = client
	}

	if cfg.GenAI.AnthropicAPIKey != "" {
		client, err := anthropic.NewClient(cfg.GenAI.AnthropicAPIKey, cfg.GenAI.AnthropicModel)
		if err != nil {
			return nil, fmt.Errorf("creating anthropic client: %w", err)
		}
		generators["anthropic"] = client
	}

	return genai.NewRegistry(generators, cfg.GenAI.Provider), nil
}
