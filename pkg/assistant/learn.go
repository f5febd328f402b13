package assistant

import (
	"time"

	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/store"
	"github.com/memorymindai/memorymind/pkg/strategy"
)

// topicSnippetLen bounds the topic text derived for a fresh thread.
const topicSnippetLen = 30

// learningUpdate is the single write path into a user's graph for a query:
// new memory nodes from extracted facts, learning-history bumps, access
// stats for referenced memories, thread context, and the conversation log.
// Applied as one atomic commit.
type learningUpdate struct {
	userID    string
	message   string
	response  string
	threadID  string
	provider  string
	cost      uint64
	facts     []graph.ExtractedFact
	strategy  strategy.Record
	memoryIDs []string
}

func (u learningUpdate) apply(rec *store.Record) error {
	g := rec.Graph
	now := time.Now()

	// Node ids embed a nanosecond timestamp; facts from the same commit
	// get successive timestamps so their ids stay distinct. Insertion
	// overwrites if an id collides anyway.
	ts := now
	for _, fact := range u.facts {
		if !fact.ShouldRemember {
			continue
		}

		nodeType := graph.NodeTypeFor(fact.FactType)
		node := graph.MemoryNode{
			ID:              graph.NewNodeID(u.userID, ts),
			Content:         fact.Fact,
			NodeType:        nodeType,
			ImportanceScore: graph.Clamp01(fact.Confidence),
			CreatedAt:       now,
			LastAccessed:    now,
			AccessCount:     1,
			Tags:            []string{string(nodeType)},
		}
		if u.threadID != "" {
			node.RelatedConversations = []string{u.threadID}
		}

		g.MemoryNodes[node.ID] = node
		g.Learning.TopicsDiscussed[string(fact.FactType)]++
		g.Learning.LastMajorUpdate = now
		ts = ts.Add(time.Nanosecond)
	}

	// Referenced memories were accessed by this query.
	for _, id := range u.memoryIDs {
		node, ok := g.MemoryNodes[id]
		if !ok {
			continue
		}
		node.AccessCount++
		node.LastAccessed = now
		if u.threadID != "" {
			node.RelatedConversations = append(node.RelatedConversations, u.threadID)
		}
		g.MemoryNodes[id] = node
	}

	g.Learning.InteractionCount++

	if u.threadID != "" {
		thread, ok := g.ContextThreads[u.threadID]
		if !ok {
			thread = graph.ConversationContext{
				ThreadID:      u.threadID,
				Topic:         topicSnippet(u.message),
				UserSentiment: graph.SentimentNeutral,
			}
		}
		thread.RelatedMemories = append(thread.RelatedMemories, u.memoryIDs...)
		thread.LastMessageTimestamp = now
		g.ContextThreads[u.threadID] = thread
	}

	strat := u.strategy
	rec.Log = append(rec.Log,
		store.ChatMessage{
			Role:           "user",
			Content:        u.message,
			Timestamp:      now,
			ThreadID:       u.threadID,
			ExtractedFacts: u.facts,
			UserSentiment:  graph.SentimentNeutral,
		},
		store.ChatMessage{
			Role:               "assistant",
			Content:            u.response,
			Timestamp:          now,
			Provider:           u.provider,
			ThreadID:           u.threadID,
			ReferencedMemories: u.memoryIDs,
			Strategy:           &strat,
			CyclesCost:         u.cost,
		},
	)

	return nil
}

func topicSnippet(message string) string {
	runes := []rune(message)
	if len(runes) > topicSnippetLen {
		return string(runes[:topicSnippetLen])
	}
	return message
}
