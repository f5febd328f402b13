// Package inmemory provides the default in-process store implementation.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/store"
)

// Config holds settings for the in-memory store.
type Config struct {
	// MaxNodesPerGraph caps memory nodes per user; least-recently-accessed
	// nodes are evicted past the cap. Zero means unbounded.
	MaxNodesPerGraph int
}

// Driver implements store.Store using maps guarded by a read-write mutex.
type Driver struct {
	config Config

	mu sync.RWMutex

	// records maps user id -> that user's graph and conversation log.
	records map[string]*store.Record
}

// NewDriver creates an empty in-memory store.
func NewDriver(config Config) *Driver {
	return &Driver{
		config:  config,
		records: make(map[string]*store.Record),
	}
}

// Ensure creates an empty graph for the user if absent. Repeated calls are
// no-ops once the graph exists.
func (d *Driver) Ensure(_ context.Context, userID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.records[userID]; ok {
		return false, nil
	}

	d.records[userID] = &store.Record{Graph: graph.New(userID)}
	return true, nil
}

// Get returns a deep-copied snapshot of the user's graph.
func (d *Driver) Get(_ context.Context, userID string) (*graph.UserGraph, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec, ok := d.records[userID]
	if !ok {
		return nil, store.ErrNotFound{UserID: userID}
	}

	return rec.Graph.Clone(), nil
}

// Conversations returns a copy of the user's conversation log.
func (d *Driver) Conversations(_ context.Context, userID string) ([]store.ChatMessage, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec, ok := d.records[userID]
	if !ok {
		return nil, store.ErrNotFound{UserID: userID}
	}

	log := make([]store.ChatMessage, len(rec.Log))
	copy(log, rec.Log)
	return log, nil
}

// Commit applies mutate to a working copy of the record and swaps it in
// only on success, so a failed mutation leaves the stored state untouched
// and readers never observe a partial write.
func (d *Driver) Commit(_ context.Context, userID string, mutate func(rec *store.Record) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.records[userID]
	if !ok {
		return store.ErrNotFound{UserID: userID}
	}

	working := &store.Record{
		Graph: rec.Graph.Clone(),
		Log:   append([]store.ChatMessage(nil), rec.Log...),
	}

	if err := mutate(working); err != nil {
		return err
	}

	working.Graph.EvictOverCap(d.config.MaxNodesPerGraph)
	working.Graph.LastUpdated = time.Now()
	d.records[userID] = working

	return nil
}

// Users lists every user id with a graph.
func (d *Driver) Users(_ context.Context) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]string, 0, len(d.records))
	for userID := range d.records {
		users = append(users, userID)
	}
	return users, nil
}

// Close is a no-op for the in-memory store.
func (d *Driver) Close() error {
	return nil
}
