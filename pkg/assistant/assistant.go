// Package assistant orchestrates one query end to end: ensure the user's
// graph exists, retrieve relevant memories, select a response strategy,
// call the generation provider when the strategy asks for it, and commit
// what was learned.
//
// The pipeline is written so no graph mutation straddles the suspension
// point of the external generation call: the graph is snapshot-read before
// the call, everything is computed from the snapshot, and a single commit
// runs after the call returns. A per-user in-flight guard additionally
// serializes whole requests for the same user, so two in-flight queries
// can never interleave their read-decide-await-write sequences.
package assistant

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/memorymindai/memorymind/pkg/contentstore"
	"github.com/memorymindai/memorymind/pkg/extract"
	"github.com/memorymindai/memorymind/pkg/genai"
	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/ledger"
	"github.com/memorymindai/memorymind/pkg/metrics"
	"github.com/memorymindai/memorymind/pkg/retrieval"
	"github.com/memorymindai/memorymind/pkg/store"
	"github.com/memorymindai/memorymind/pkg/strategy"
)

// DefaultMemoryLimit caps Memories results when the caller gives no limit.
const DefaultMemoryLimit = 50

// Assistant wires the stores and collaborators behind the caller surface.
type Assistant struct {
	store   store.Store
	gen     *genai.Registry
	ledger  *ledger.Ledger
	content *contentstore.Store
	metrics *metrics.Service
	logger  *zap.Logger

	mu     sync.Mutex
	guards map[string]*sync.Mutex
}

// New creates an Assistant.
func New(
	st store.Store,
	gen *genai.Registry,
	l *ledger.Ledger,
	content *contentstore.Store,
	m *metrics.Service,
	logger *zap.Logger,
) *Assistant {
	return &Assistant{
		store:   st,
		gen:     gen,
		ledger:  l,
		content: content,
		metrics: m,
		logger:  logger,
		guards:  make(map[string]*sync.Mutex),
	}
}

// QueryRequest is one submitted query.
type QueryRequest struct {
	UserID string
	Text   string

	// ThreadID groups the message into a conversation context thread.
	// Empty means unthreaded.
	ThreadID string

	// Provider optionally overrides the default generation provider.
	Provider string

	// StoreResponse stores the generated response in the content store as
	// a private item, debiting the user's cycles.
	StoreResponse bool
}

// QueryResult is the outcome of one query.
type QueryResult struct {
	Response   string          `json:"response"`
	Strategy   strategy.Record `json:"strategy"`
	MemoryIDs  []string        `json:"referenced_memories,omitempty"`
	CyclesCost uint64          `json:"cycles_cost"`
	ContentID  string          `json:"content_id,omitempty"`
}

// SubmitQuery runs the full pipeline for one query.
func (a *Assistant) SubmitQuery(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	guard := a.userGuard(req.UserID)
	guard.Lock()
	defer guard.Unlock()

	created, err := a.store.Ensure(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if created {
		a.metrics.UserAdded()
	}

	// Snapshot before the only suspension point (the generation call).
	g, err := a.store.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	memories := retrieval.Relevant(g, req.Text)
	chosen := strategy.Select(g, req.Text, memories)

	response, provider, cost, err := a.render(ctx, g, memories, chosen, req)
	if err != nil {
		// Generation failed before any mutation; the graph is unchanged.
		return nil, err
	}

	facts := extract.Facts(req.Text)

	memoryIDs := lo.Map(memories, func(node graph.MemoryNode, _ int) string {
		return node.ID
	})

	update := learningUpdate{
		userID:    req.UserID,
		message:   req.Text,
		response:  response,
		threadID:  req.ThreadID,
		provider:  provider,
		cost:      cost,
		facts:     facts,
		strategy:  strategy.RecordOf(chosen),
		memoryIDs: memoryIDs,
	}
	if err := a.store.Commit(ctx, req.UserID, update.apply); err != nil {
		return nil, err
	}

	a.metrics.QueryServed()
	if len(facts) > 0 {
		a.metrics.LearningEvent()
		a.metrics.NodesCreated(uint64(len(facts)))
	}

	result := &QueryResult{
		Response:   response,
		Strategy:   strategy.RecordOf(chosen),
		MemoryIDs:  memoryIDs,
		CyclesCost: cost,
	}

	if req.StoreResponse {
		contentID, err := a.content.Put(req.UserID, response, "ai_response", contentstore.AccessPrivate)
		if err != nil {
			a.logger.Warn("storing response content failed",
				zap.String("user_id", req.UserID),
				zap.Error(err),
			)
		} else {
			result.ContentID = contentID
		}
	}

	return result, nil
}

// render turns the chosen strategy into response text. Only the confident
// answer path calls the external generation service.
func (a *Assistant) render(
	ctx context.Context,
	g *graph.UserGraph,
	memories []graph.MemoryNode,
	chosen strategy.Strategy,
	req QueryRequest,
) (response, provider string, cost uint64, err error) {
	switch v := chosen.(type) {
	case strategy.ConfidentAnswer:
		gen, err := a.gen.Generator(req.Provider)
		if err != nil {
			return "", "", 0, err
		}

		prompt := genai.BuildPrompt(g.Profile, memories, req.Text)

		charged, paid := a.ledger.ChargeQuery(req.UserID, len(prompt), gen.Name())
		if !paid {
			a.logger.Debug("insufficient cycles, serving query for free",
				zap.String("user_id", req.UserID),
			)
		}

		text, err := gen.Generate(ctx, prompt)
		if err != nil {
			return "", "", 0, err
		}
		return text, gen.Name(), charged, nil

	case strategy.InquiryFirst:
		return v.Question, "", 0, nil

	case strategy.PartialAnswer:
		return "Here's what I know so far: " + v.KnownInfo +
			"\n\nTo answer fully, I need to know: " + v.ClarificationNeeded, "", 0, nil

	case strategy.LearningOpportunity:
		return v.Suggestion, "", 0, nil

	default:
		return "", "", 0, nil
	}
}

func (a *Assistant) userGuard(userID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()

	guard, ok := a.guards[userID]
	if !ok {
		guard = &sync.Mutex{}
		a.guards[userID] = guard
	}
	return guard
}
