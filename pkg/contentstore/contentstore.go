// Package contentstore keeps generated content with tiered access control.
// Storage debits the owner's cycles balance via the ledger.
package contentstore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/memorymindai/memorymind/pkg/ledger"
)

// AccessLevel gates who may read a stored item.
type AccessLevel string

const (
	AccessPublic    AccessLevel = "public"
	AccessPrivate   AccessLevel = "private"
	AccessCommunity AccessLevel = "community"
	AccessPremium   AccessLevel = "premium"
)

// ErrAccessDenied is returned when the caller fails the item's access check.
var ErrAccessDenied = errors.New("access denied")

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("content not found")

// Content is one stored item.
type Content struct {
	ID          string      `json:"id"`
	Content     string      `json:"content"`
	ContentType string      `json:"content_type"`
	Creator     string      `json:"creator"`
	CreatedAt   time.Time   `json:"created_at"`
	SizeBytes   uint64      `json:"size_bytes"`
	AccessLevel AccessLevel `json:"access_level"`
	CyclesCost  uint64      `json:"cycles_cost_to_create"`
}

// Store holds content items in memory, priced through the ledger.
type Store struct {
	mu     sync.RWMutex
	items  map[string]Content
	ledger *ledger.Ledger
}

// NewStore creates an empty content store backed by the given ledger.
func NewStore(l *ledger.Ledger) *Store {
	return &Store{
		items:  make(map[string]Content),
		ledger: l,
	}
}

// Put stores content for creator, debiting the storage cost. Fails without
// storing anything when the creator cannot afford the cost.
func (s *Store) Put(creator, content, contentType string, level AccessLevel) (string, error) {
	size := uint64(len(content))
	cost := s.ledger.StorageCost(size)

	if err := s.ledger.Spend(creator, cost); err != nil {
		return "", fmt.Errorf("storing content: %w", err)
	}

	now := time.Now()
	id := fmt.Sprintf("content_%s_%d", creator, now.UnixNano())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = Content{
		ID:          id,
		Content:     content,
		ContentType: contentType,
		Creator:     creator,
		CreatedAt:   now,
		SizeBytes:   size,
		AccessLevel: level,
		CyclesCost:  cost,
	}

	return id, nil
}

// Get returns the item if the caller passes its access check: private
// items require the creator, community items any token balance, premium
// items a subscription tier.
func (s *Store) Get(id, caller string) (Content, error) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()

	if !ok {
		return Content{}, ErrNotFound
	}

	switch item.AccessLevel {
	case AccessPublic:
		return item, nil
	case AccessPrivate:
		if item.Creator == caller {
			return item, nil
		}
	case AccessCommunity:
		if s.ledger.TokenBalance(caller) > 0 {
			return item, nil
		}
	case AccessPremium:
		if _, ok := s.ledger.TierOf(caller); ok {
			return item, nil
		}
	}

	return Content{}, ErrAccessDenied
}

// CountByCreator returns how many items a user has stored.
func (s *Store) CountByCreator(creator string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n uint64
	for _, item := range s.items {
		if item.Creator == creator {
			n++
		}
	}
	return n
}
