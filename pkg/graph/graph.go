// Package graph defines the per-user personal knowledge graph: the profile,
// memory nodes, edges between them, learning statistics, and conversation
// context threads that together capture everything the assistant has learned
// about one user.
package graph

import (
	"fmt"
	"sort"
	"time"
)

// UserGraph is a user's complete memory state. One graph exists per user
// identity; it is created lazily on first interaction and never deleted
// within the process lifetime.
type UserGraph struct {
	// UserID is the stable identifier the graph is keyed by.
	UserID string `json:"user_id"`

	Profile Profile `json:"user_profile"`

	// MemoryNodes maps node id -> node. Ids embed the user identity plus a
	// nanosecond timestamp and are unique per graph.
	MemoryNodes map[string]MemoryNode `json:"memory_nodes"`

	// Edges relate memory nodes to each other. Both endpoints must name
	// existing node ids in this graph.
	Edges []KnowledgeEdge `json:"relationships"`

	Learning LearningHistory `json:"learning_patterns"`

	// ContextThreads maps caller-supplied thread id -> conversation context.
	ContextThreads map[string]ConversationContext `json:"context_threads"`

	LastUpdated time.Time `json:"last_updated"`
}

// New creates an empty graph for the given user with default profile values.
func New(userID string) *UserGraph {
	return &UserGraph{
		UserID:      userID,
		Profile:     NewProfile(),
		MemoryNodes: make(map[string]MemoryNode),
		Edges:       make([]KnowledgeEdge, 0),
		Learning: LearningHistory{
			TopicsDiscussed:         make(map[string]uint32),
			PreferredResponseLength: ResponseVariable,
		},
		ContextThreads: make(map[string]ConversationContext),
		LastUpdated:    time.Now(),
	}
}

// Clone returns a deep copy of the graph. Readers of the store receive
// clones so concurrent commits can never expose a half-written graph.
func (g *UserGraph) Clone() *UserGraph {
	if g == nil {
		return nil
	}

	c := &UserGraph{
		UserID:      g.UserID,
		Profile:     g.Profile.clone(),
		Learning:    g.Learning.clone(),
		LastUpdated: g.LastUpdated,
	}

	c.MemoryNodes = make(map[string]MemoryNode, len(g.MemoryNodes))
	for id, node := range g.MemoryNodes {
		c.MemoryNodes[id] = node.clone()
	}

	c.Edges = make([]KnowledgeEdge, len(g.Edges))
	copy(c.Edges, g.Edges)

	c.ContextThreads = make(map[string]ConversationContext, len(g.ContextThreads))
	for id, thread := range g.ContextThreads {
		c.ContextThreads[id] = thread.clone()
	}

	return c
}

// AddEdge appends an edge after validating both endpoints exist in the
// graph. Dangling edges are invalid.
func (g *UserGraph) AddEdge(edge KnowledgeEdge) error {
	if _, ok := g.MemoryNodes[edge.FromNode]; !ok {
		return fmt.Errorf("edge references unknown node %q", edge.FromNode)
	}
	if _, ok := g.MemoryNodes[edge.ToNode]; !ok {
		return fmt.Errorf("edge references unknown node %q", edge.ToNode)
	}
	edge.Strength = Clamp01(edge.Strength)
	g.Edges = append(g.Edges, edge)
	return nil
}

// EvictOverCap drops least-recently-accessed memory nodes until the graph
// holds at most maxNodes, removing edges incident to evicted nodes. A
// maxNodes of zero means unbounded. Returns the ids of evicted nodes.
func (g *UserGraph) EvictOverCap(maxNodes int) []string {
	if maxNodes <= 0 || len(g.MemoryNodes) <= maxNodes {
		return nil
	}

	type candidate struct {
		id           string
		lastAccessed time.Time
	}
	candidates := make([]candidate, 0, len(g.MemoryNodes))
	for id, node := range g.MemoryNodes {
		candidates = append(candidates, candidate{id: id, lastAccessed: node.LastAccessed})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].lastAccessed.Before(candidates[j].lastAccessed)
	})

	evicted := make([]string, 0, len(g.MemoryNodes)-maxNodes)
	for _, c := range candidates[:len(g.MemoryNodes)-maxNodes] {
		evicted = append(evicted, c.id)
		delete(g.MemoryNodes, c.id)
	}

	kept := g.Edges[:0]
	for _, edge := range g.Edges {
		_, fromOK := g.MemoryNodes[edge.FromNode]
		_, toOK := g.MemoryNodes[edge.ToNode]
		if fromOK && toOK {
			kept = append(kept, edge)
		}
	}
	g.Edges = kept

	return evicted
}

// Clamp01 clamps a score, confidence, progress, or importance value into
// the [0, 1] range every such field in the graph must stay within.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
