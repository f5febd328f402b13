// Package retrieval selects the memory nodes relevant to a query.
//
// Matching is a case-folded containment filter: a node matches when its
// content contains the query, or one of its tags appears inside the query.
// There is no ranking beyond match/no-match and no semantic similarity —
// that is this retriever's known precision ceiling.
package retrieval

import (
	"strings"

	"github.com/memorymindai/memorymind/pkg/graph"
)

// MaxResults bounds how many nodes a single retrieval returns.
const MaxResults = 5

// Relevant returns up to MaxResults matching nodes from the user's graph,
// in the graph's node iteration order. A nil graph yields no results
// rather than an error.
func Relevant(g *graph.UserGraph, query string) []graph.MemoryNode {
	if g == nil || len(g.MemoryNodes) == 0 {
		return nil
	}

	lowerQuery := strings.ToLower(query)

	var matches []graph.MemoryNode
	for _, node := range g.MemoryNodes {
		if Matches(node, lowerQuery) {
			matches = append(matches, node)
			if len(matches) == MaxResults {
				break
			}
		}
	}

	return matches
}

// Matches reports whether a node is relevant to the already-lowercased
// query text.
func Matches(node graph.MemoryNode, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(node.Content), lowerQuery) {
		return true
	}

	for _, tag := range node.Tags {
		if strings.Contains(lowerQuery, strings.ToLower(tag)) {
			return true
		}
	}

	return false
}
