package metrics

import (
	"sync/atomic"
	"time"
)

// Service holds process-wide counters updated by the learning path.
// Counters only ever go up.
type Service struct {
	totalQueries   atomic.Uint64
	learningEvents atomic.Uint64
	nodesCreated   atomic.Uint64
	totalUsers     atomic.Uint64

	uptimeStart time.Time
}

// NewService creates a Service with the uptime clock started now.
func NewService() *Service {
	return &Service{uptimeStart: time.Now()}
}

// QueryServed records one answered query.
func (s *Service) QueryServed() { s.totalQueries.Add(1) }

// LearningEvent records one commit that extracted at least one fact.
func (s *Service) LearningEvent() { s.learningEvents.Add(1) }

// NodesCreated records n new memory nodes.
func (s *Service) NodesCreated(n uint64) { s.nodesCreated.Add(n) }

// UserAdded records a newly created graph.
func (s *Service) UserAdded() { s.totalUsers.Add(1) }

// Snapshot is a point-in-time view of the service counters.
type Snapshot struct {
	TotalQueries          uint64    `json:"total_queries"`
	LearningEvents        uint64    `json:"learning_events"`
	KnowledgeNodesCreated uint64    `json:"knowledge_nodes_created"`
	TotalUsers            uint64    `json:"total_users"`
	UptimeStart           time.Time `json:"uptime_start"`
}

// Snapshot returns the current counter values.
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		TotalQueries:          s.totalQueries.Load(),
		LearningEvents:        s.learningEvents.Load(),
		KnowledgeNodesCreated: s.nodesCreated.Load(),
		TotalUsers:            s.totalUsers.Load(),
		UptimeStart:           s.uptimeStart,
	}
}
