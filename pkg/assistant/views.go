package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/ledger"
	"github.com/memorymindai/memorymind/pkg/metrics"
	"github.com/memorymindai/memorymind/pkg/store"
)

// Graph returns a snapshot of the user's graph, or store.ErrNotFound if
// the user has never interacted.
func (a *Assistant) Graph(ctx context.Context, userID string) (*graph.UserGraph, error) {
	return a.store.Get(ctx, userID)
}

// Conversations returns the user's conversation log.
func (a *Assistant) Conversations(ctx context.Context, userID string) ([]store.ChatMessage, error) {
	return a.store.Conversations(ctx, userID)
}

// Memories returns up to limit memory nodes (DefaultMemoryLimit when limit
// is not positive). An absent graph yields an empty list, not an error.
func (a *Assistant) Memories(ctx context.Context, userID string, limit int) ([]graph.MemoryNode, error) {
	if limit <= 0 {
		limit = DefaultMemoryLimit
	}

	g, err := a.store.Get(ctx, userID)
	if err != nil {
		var notFound store.ErrNotFound
		if errors.As(err, &notFound) {
			return []graph.MemoryNode{}, nil
		}
		return nil, err
	}

	nodes := lo.Values(g.MemoryNodes)
	if len(nodes) > limit {
		nodes = nodes[:limit]
	}
	return nodes, nil
}

// ProfileUpdate carries the caller-settable profile fields. Nil means
// leave the field unchanged.
type ProfileUpdate struct {
	Name      *string               `json:"name,omitempty"`
	Interests *[]string             `json:"interests,omitempty"`
	Goals     *[]graph.PersonalGoal `json:"goals,omitempty"`
}

// UpdateProfile applies a profile update. Returns store.ErrNotFound when
// the user has no graph; a write-only operation never creates one.
func (a *Assistant) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) error {
	return a.store.Commit(ctx, userID, func(rec *store.Record) error {
		if upd.Name != nil {
			name := *upd.Name
			rec.Graph.Profile.Name = &name
		}
		if upd.Interests != nil {
			rec.Graph.Profile.Interests = append([]string(nil), (*upd.Interests)...)
		}
		if upd.Goals != nil {
			rec.Graph.Profile.Goals = append([]graph.PersonalGoal(nil), (*upd.Goals)...)
		}
		rec.Graph.Profile.ClampScores()
		return nil
	})
}

// Dashboard is the per-user overview combining graph metrics with ledger
// and content-store bookkeeping.
type Dashboard struct {
	CyclesBalance      uint64       `json:"cycles_balance"`
	TokenBalance       uint64       `json:"token_balance"`
	TotalCyclesSpent   uint64       `json:"total_cycles_spent"`
	ConversationCount  uint64       `json:"conversation_count"`
	KnowledgeNodeCount uint64       `json:"knowledge_node_count"`
	StoredContentCount uint64       `json:"stored_content_count"`
	MemoryStrength     float32      `json:"memory_strength"`
	LearningProgress   float32      `json:"learning_progress"`
	TenureDays         uint64       `json:"tenure_days"`
	SubscriptionTier   *ledger.Tier `json:"subscription_tier,omitempty"`
}

// Dashboard computes the user's dashboard. All values are derived on
// demand; nothing is cached.
func (a *Assistant) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	g, err := a.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	log, err := a.store.Conversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		CyclesBalance:      a.ledger.CyclesBalance(userID),
		TokenBalance:       a.ledger.TokenBalance(userID),
		TotalCyclesSpent:   a.ledger.CyclesSpent(userID),
		ConversationCount:  uint64(len(log)),
		KnowledgeNodeCount: uint64(len(g.MemoryNodes)),
		StoredContentCount: a.content.CountByCreator(userID),
		MemoryStrength:     metrics.MemoryStrength(g),
		LearningProgress:   metrics.LearningProgress(g),
		TenureDays:         metrics.TenureDays(g, time.Now()),
	}

	if tier, ok := a.ledger.TierOf(userID); ok {
		d.SubscriptionTier = &tier
	}

	return d, nil
}
