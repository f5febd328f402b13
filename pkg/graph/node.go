package graph

import (
	"fmt"
	"time"
)

// NodeType categorizes what kind of thing a memory node remembers.
type NodeType string

const (
	NodeFact         NodeType = "fact"
	NodePreference   NodeType = "preference"
	NodeGoal         NodeType = "goal"
	NodeRelationship NodeType = "relationship"
	NodeExperience   NodeType = "experience"
	NodeKnowledge    NodeType = "knowledge"
	NodeContext      NodeType = "context"
)

// MemoryNode is one discrete remembered fact about a user.
type MemoryNode struct {
	// ID is derived from the user identity plus a nanosecond timestamp and
	// is unique within the graph.
	ID string `json:"id"`

	Content  string   `json:"content"`
	NodeType NodeType `json:"node_type"`

	// ImportanceScore is in [0, 1]; set from the extraction confidence at
	// creation time.
	ImportanceScore float32 `json:"importance_score"`

	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`
	AccessCount  uint32    `json:"access_count"`

	Tags []string `json:"tags"`

	// RelatedConversations lists, in order, the thread ids the node was
	// referenced from.
	RelatedConversations []string `json:"related_conversations"`
}

func (n MemoryNode) clone() MemoryNode {
	c := n
	c.Tags = append([]string(nil), n.Tags...)
	c.RelatedConversations = append([]string(nil), n.RelatedConversations...)
	return c
}

// NewNodeID builds a node id from the owning user and creation time.
// The nanosecond timestamp makes collisions within a graph effectively
// impossible; insertion overwrites rather than fails if one occurs.
func NewNodeID(userID string, at time.Time) string {
	return fmt.Sprintf("mem_%s_%d", userID, at.UnixNano())
}

// RelationshipType describes how two memory nodes relate.
type RelationshipType string

const (
	RelRelated    RelationshipType = "related"
	RelCausedBy   RelationshipType = "caused_by"
	RelLeadsTo    RelationshipType = "leads_to"
	RelPartOf     RelationshipType = "part_of"
	RelOppositeOf RelationshipType = "opposite_of"
	RelExampleOf  RelationshipType = "example_of"
	RelUsedFor    RelationshipType = "used_for"
)

// KnowledgeEdge links two memory nodes in the same graph.
//
// Extraction never emits edges automatically today; the type exists for
// manual population and future extractors.
type KnowledgeEdge struct {
	FromNode         string           `json:"from_node"`
	ToNode           string           `json:"to_node"`
	RelationshipType RelationshipType `json:"relationship_type"`
	Strength         float32          `json:"strength"`
	CreatedAt        time.Time        `json:"created_at"`
}
