// Package api is the HTTP server exposing the memorymind caller surface.
package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/memorymindai/memorymind/pkg/assistant"
	"github.com/memorymindai/memorymind/pkg/auth"
	"github.com/memorymindai/memorymind/pkg/contentstore"
	"github.com/memorymindai/memorymind/pkg/governance"
	"github.com/memorymindai/memorymind/pkg/ledger"
	"github.com/memorymindai/memorymind/pkg/metrics"
)

// Config holds API server settings.
type Config struct {
	ListenAddr string
}

// Server is the API server for the memorymind service.
type Server struct {
	config    Config
	assistant *assistant.Assistant
	ledger    *ledger.Ledger
	board     *governance.Board
	content   *contentstore.Store
	metrics   *metrics.Service
	verifier  *auth.Verifier
	logger    *zap.Logger
	app       *fiber.App
}

// NewServer creates the API server and registers all routes.
func NewServer(
	config Config,
	asst *assistant.Assistant,
	l *ledger.Ledger,
	board *governance.Board,
	content *contentstore.Store,
	m *metrics.Service,
	verifier *auth.Verifier,
	logger *zap.Logger,
) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		assistant: asst,
		ledger:    l,
		board:     board,
		content:   content,
		metrics:   m,
		verifier:  verifier,
		logger:    logger,
		app:       app,
	}

	app.Use(s.requestLogger)

	app.Get("/ping", s.handlePing)

	v1 := app.Group("/v1", s.authenticate)
	v1.Post("/query", s.handleQuery)
	v1.Get("/metrics", s.handleMetrics)

	v1.Get("/users/:id/graph", s.handleGetGraph)
	v1.Get("/users/:id/memories", s.handleGetMemories)
	v1.Get("/users/:id/conversations", s.handleGetConversations)
	v1.Put("/users/:id/profile", s.handleUpdateProfile)
	v1.Get("/users/:id/dashboard", s.handleGetDashboard)
	v1.Get("/users/:id/balance", s.handleGetBalance)
	v1.Post("/users/:id/deposit", s.handleDeposit)

	v1.Post("/admin/mint", s.handleMint)

	v1.Post("/content", s.handlePutContent)
	v1.Get("/content/:id", s.handleGetContent)

	v1.Get("/proposals", s.handleListProposals)
	v1.Post("/proposals", s.handleCreateProposal)
	v1.Post("/proposals/:id/votes", s.handleVote)

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
