// Package metrics computes derived, read-only measurements: per-user
// profile metrics recomputed on demand from a graph snapshot, and
// process-wide service counters.
package metrics

import (
	"time"

	"github.com/memorymindai/memorymind/pkg/graph"
)

const interactionSaturation = 100

// MemoryStrength scores how much the assistant holds about a user. The
// value is intentionally not clamped: a heavily-used graph can score above
// 1.0.
func MemoryStrength(g *graph.UserGraph) float32 {
	if g == nil {
		return 0
	}

	nodes := float32(len(g.MemoryNodes))
	edges := float32(len(g.Edges))
	interactions := float32(g.Learning.InteractionCount)

	return (nodes*0.4 + edges*0.3 + interactions*0.3) / 100
}

// ProfileCompleteness is the fraction of the four profile pillars (name,
// interests, goals, work context) that are filled in. Always in [0, 1].
func ProfileCompleteness(g *graph.UserGraph) float32 {
	if g == nil {
		return 0
	}

	var filled float32
	if g.Profile.Name != nil {
		filled++
	}
	if len(g.Profile.Interests) > 0 {
		filled++
	}
	if len(g.Profile.Goals) > 0 {
		filled++
	}
	if g.Profile.WorkContext != nil {
		filled++
	}

	return filled / 4
}

// LearningProgress blends profile completeness with interaction volume,
// saturating at 100 interactions. Always in [0, 1].
func LearningProgress(g *graph.UserGraph) float32 {
	if g == nil {
		return 0
	}

	interactions := g.Learning.InteractionCount
	if interactions > interactionSaturation {
		interactions = interactionSaturation
	}

	return (ProfileCompleteness(g) + float32(interactions)/interactionSaturation) / 2
}

// TenureDays is the number of whole days since the earliest memory node
// was created. A graph with no memory nodes has a tenure of zero.
func TenureDays(g *graph.UserGraph, now time.Time) uint64 {
	if g == nil || len(g.MemoryNodes) == 0 {
		return 0
	}

	earliest := now
	for _, node := range g.MemoryNodes {
		if node.CreatedAt.Before(earliest) {
			earliest = node.CreatedAt
		}
	}

	days := now.Sub(earliest) / (24 * time.Hour)
	if days < 0 {
		return 0
	}
	return uint64(days)
}
