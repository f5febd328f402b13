package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/memorymindai/memorymind/pkg/assistant"
	"github.com/memorymindai/memorymind/pkg/contentstore"
	"github.com/memorymindai/memorymind/pkg/genai"
	"github.com/memorymindai/memorymind/pkg/governance"
	"github.com/memorymindai/memorymind/pkg/store"
)

// ErrorResponse is the JSON body for every error status.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// QueryBody is the request body for POST /v1/query. UserID defaults to
// the authenticated caller.
type QueryBody struct {
	UserID        string `json:"user_id"`
	Text          string `json:"text"`
	ThreadID      string `json:"thread_id"`
	Provider      string `json:"provider"`
	StoreResponse bool   `json:"store_response"`
}

func (s *Server) handleQuery(c *fiber.Ctx) error {
	identity := caller(c)

	var body QueryBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if body.UserID == "" {
		body.UserID = identity.UserID
	}
	if body.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "text is required"})
	}
	if !identity.CanAct(body.UserID) {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "forbidden"})
	}

	result, err := s.assistant.SubmitQuery(c.Context(), assistant.QueryRequest{
		UserID:        body.UserID,
		Text:          body.Text,
		ThreadID:      body.ThreadID,
		Provider:      body.Provider,
		StoreResponse: body.StoreResponse,
	})
	if err != nil {
		return s.queryError(c, err)
	}

	return c.JSON(result)
}

// queryError maps pipeline failures onto statuses: a provider with no
// credentials is a service misconfiguration, upstream failures are bad
// gateway, everything else is internal.
func (s *Server) queryError(c *fiber.Ctx, err error) error {
	var transport *genai.TransportError
	var malformed *genai.MalformedResponseError

	switch {
	case errors.Is(err, genai.ErrNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
	case errors.As(err, &transport), errors.As(err, &malformed):
		s.logger.Error("generation provider failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: err.Error()})
	default:
		s.logger.Error("query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
	}
}

func (s *Server) handleMetrics(c *fiber.Ctx) error {
	return c.JSON(s.metrics.Snapshot())
}

func (s *Server) handleGetGraph(c *fiber.Ctx) error {
	userID := c.Params("id")

	// An unauthorized read looks exactly like an absent graph.
	if !caller(c).CanAct(userID) {
		return notFoundGraph(c)
	}

	g, err := s.assistant.Graph(c.Context(), userID)
	if err != nil {
		var notFound store.ErrNotFound
		if errors.As(err, &notFound) {
			return notFoundGraph(c)
		}
		return s.internalError(c, err)
	}

	return c.JSON(g)
}

func (s *Server) handleGetMemories(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !caller(c).CanAct(userID) {
		return c.JSON(fiber.Map{"memories": []any{}})
	}

	limit := c.QueryInt("limit")
	nodes, err := s.assistant.Memories(c.Context(), userID, limit)
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{"memories": nodes})
}

func (s *Server) handleGetConversations(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !caller(c).CanAct(userID) {
		return c.JSON(fiber.Map{"conversations": []any{}})
	}

	log, err := s.assistant.Conversations(c.Context(), userID)
	if err != nil {
		return s.internalError(c, err)
	}
	if log == nil {
		log = []store.ChatMessage{}
	}

	return c.JSON(fiber.Map{"conversations": log})
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !caller(c).CanAct(userID) {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "forbidden"})
	}

	var upd assistant.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if err := s.assistant.UpdateProfile(c.Context(), userID, upd); err != nil {
		var notFound store.ErrNotFound
		if errors.As(err, &notFound) {
			return notFoundGraph(c)
		}
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{"status": "updated"})
}

func (s *Server) handleGetDashboard(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !caller(c).CanAct(userID) {
		return notFoundGraph(c)
	}

	dashboard, err := s.assistant.Dashboard(c.Context(), userID)
	if err != nil {
		var notFound store.ErrNotFound
		if errors.As(err, &notFound) {
			return notFoundGraph(c)
		}
		return s.internalError(c, err)
	}

	return c.JSON(dashboard)
}

func (s *Server) handleGetBalance(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !caller(c).CanAct(userID) {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "forbidden"})
	}

	return c.JSON(fiber.Map{
		"cycles_balance": s.ledger.CyclesBalance(userID),
		"token_balance":  s.ledger.TokenBalance(userID),
		"cycles_spent":   s.ledger.CyclesSpent(userID),
	})
}

// AmountBody carries a cycles or token amount.
type AmountBody struct {
	Amount uint64 `json:"amount"`
}

func (s *Server) handleDeposit(c *fiber.Ctx) error {
	userID := c.Params("id")

	if !caller(c).CanAct(userID) {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "forbidden"})
	}

	var body AmountBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if body.Amount == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "amount must be positive"})
	}

	s.ledger.Deposit(userID, body.Amount)

	return c.JSON(fiber.Map{"cycles_balance": s.ledger.CyclesBalance(userID)})
}

// MintBody is the admin token-mint request.
type MintBody struct {
	UserID string `json:"user_id"`
	Amount uint64 `json:"amount"`
}

func (s *Server) handleMint(c *fiber.Ctx) error {
	if !caller(c).Admin {
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "forbidden"})
	}

	var body MintBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if body.UserID == "" || body.Amount == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "user_id and amount are required"})
	}

	s.ledger.Mint(body.UserID, body.Amount)

	return c.JSON(fiber.Map{"token_balance": s.ledger.TokenBalance(body.UserID)})
}

// ContentBody is the request body for POST /v1/content.
type ContentBody struct {
	Content     string                   `json:"content"`
	ContentType string                   `json:"content_type"`
	AccessLevel contentstore.AccessLevel `json:"access_level"`
}

func (s *Server) handlePutContent(c *fiber.Ctx) error {
	identity := caller(c)

	var body ContentBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "content is required"})
	}
	if body.AccessLevel == "" {
		body.AccessLevel = contentstore.AccessPrivate
	}

	id, err := s.content.Put(identity.UserID, body.Content, body.ContentType, body.AccessLevel)
	if err != nil {
		return c.Status(fiber.StatusPaymentRequired).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) handleGetContent(c *fiber.Ctx) error {
	item, err := s.content.Get(c.Params("id"), caller(c).UserID)
	if err != nil {
		switch {
		case errors.Is(err, contentstore.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
		case errors.Is(err, contentstore.ErrAccessDenied):
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: err.Error()})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(item)
}

func (s *Server) handleListProposals(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"proposals": s.board.Proposals()})
}

// ProposalBody is the request body for POST /v1/proposals.
type ProposalBody struct {
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	ProposalType governance.ProposalType `json:"proposal_type"`
}

func (s *Server) handleCreateProposal(c *fiber.Ctx) error {
	var body ProposalBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if body.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "title is required"})
	}

	id, err := s.board.Create(caller(c).UserID, body.Title, body.Description, body.ProposalType)
	if err != nil {
		if errors.Is(err, governance.ErrInsufficientTokens) {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: err.Error()})
		}
		return s.internalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// VoteBody is the request body for POST /v1/proposals/:id/votes.
type VoteBody struct {
	InFavor bool `json:"in_favor"`
}

func (s *Server) handleVote(c *fiber.Ctx) error {
	proposalID, err := c.ParamsInt("id")
	if err != nil || proposalID < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid proposal id"})
	}

	var body VoteBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if err := s.board.Vote(caller(c).UserID, uint64(proposalID), body.InFavor); err != nil {
		switch {
		case errors.Is(err, governance.ErrProposalNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
		case errors.Is(err, governance.ErrNoVotingPower):
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: err.Error()})
		case errors.Is(err, governance.ErrVotingClosed):
			return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(fiber.Map{"status": "recorded"})
}

func notFoundGraph(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "graph not found"})
}

func (s *Server) internalError(c *fiber.Ctx, err error) error {
	s.logger.Error("request failed",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "internal error"})
}
