// Package store owns the mapping from user identity to that user's
// knowledge graph and conversation log.
//
// All mutation flows through Commit: a reader either sees the state from
// before a commit or after it, never anything in between. Graphs come into
// existence only through Ensure and are never deleted within the process
// lifetime.
package store

import (
	"context"
	"time"

	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/strategy"
)

// ChatMessage is one entry in a user's conversation log.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Provider  string    `json:"provider,omitempty"`
	ThreadID  string    `json:"context_thread_id,omitempty"`

	ExtractedFacts     []graph.ExtractedFact `json:"extracted_facts,omitempty"`
	ReferencedMemories []string              `json:"referenced_memories,omitempty"`
	Strategy           *strategy.Record      `json:"response_strategy,omitempty"`
	UserSentiment      graph.Sentiment       `json:"user_sentiment,omitempty"`
	CyclesCost         uint64                `json:"cycles_cost,omitempty"`
}

// Record is the unit of storage: one user's graph plus their conversation
// log. Commit mutation functions receive the record and may change both.
type Record struct {
	Graph *graph.UserGraph
	Log   []ChatMessage
}

// Store is the only holder of user graphs. Implementations must make
// Commit atomic with respect to Get and Conversations.
type Store interface {
	// Ensure creates an empty graph for the user if absent. Idempotent;
	// reports whether a graph was created by this call.
	Ensure(ctx context.Context, userID string) (created bool, err error)

	// Get returns a full snapshot of the user's graph, or ErrNotFound if
	// the user has never interacted. Mutating the snapshot never affects
	// the stored graph.
	Get(ctx context.Context, userID string) (*graph.UserGraph, error)

	// Conversations returns a copy of the user's conversation log, or
	// ErrNotFound if the user has never interacted.
	Conversations(ctx context.Context, userID string) ([]ChatMessage, error)

	// Commit applies mutate to the user's record as a single atomic write.
	// If mutate returns an error the record is left unchanged.
	Commit(ctx context.Context, userID string, mutate func(rec *Record) error) error

	// Users lists every user id with a graph.
	Users(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
