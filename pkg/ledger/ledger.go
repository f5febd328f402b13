// Package ledger tracks per-user virtual-currency balances: cycles spent
// on generation and storage, and AI tokens used for governance voting
// power. Pure bookkeeping; nothing here talks to the network.
package ledger

import (
	"fmt"
	"sync"
)

// Rates prices the operations the ledger charges for.
type Rates struct {
	// QueryBaseCost is cycles per prompt character before the provider
	// multiplier.
	QueryBaseCost uint64

	// StorageCostPerByte is cycles per stored content byte.
	StorageCostPerByte uint64

	// ProviderMultipliers scales query cost per provider. Providers not
	// listed use a multiplier of 1.
	ProviderMultipliers map[string]uint64
}

// DefaultRates mirrors the service's historical pricing.
func DefaultRates() Rates {
	return Rates{
		QueryBaseCost:      1000,
		StorageCostPerByte: 100,
		ProviderMultipliers: map[string]uint64{
			"gemini":    1,
			"openai":    2,
			"anthropic": 3,
		},
	}
}

// Tier is a user's subscription level.
type Tier string

const (
	TierBasic      Tier = "basic"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// Ledger holds all balances, guarded by one mutex. Balances are
// independent per user; contention is negligible at this granularity.
type Ledger struct {
	mu sync.RWMutex

	rates  Rates
	cycles map[string]uint64
	tokens map[string]uint64
	spent  map[string]uint64
	tiers  map[string]Tier
}

// New creates an empty ledger with the given rates.
func New(rates Rates) *Ledger {
	return &Ledger{
		rates:  rates,
		cycles: make(map[string]uint64),
		tokens: make(map[string]uint64),
		spent:  make(map[string]uint64),
		tiers:  make(map[string]Tier),
	}
}

// CyclesBalance returns the user's cycles balance.
func (l *Ledger) CyclesBalance(userID string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cycles[userID]
}

// TokenBalance returns the user's AI token balance, which doubles as
// governance voting power.
func (l *Ledger) TokenBalance(userID string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tokens[userID]
}

// CyclesSpent returns the user's lifetime cycles spend.
func (l *Ledger) CyclesSpent(userID string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.spent[userID]
}

// Deposit credits cycles to the user.
func (l *Ledger) Deposit(userID string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cycles[userID] += amount
}

// Mint credits AI tokens to the user. Callers enforce the admin-only rule.
func (l *Ledger) Mint(userID string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[userID] += amount
}

// SetTier records the user's subscription tier.
func (l *Ledger) SetTier(userID string, tier Tier) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tiers[userID] = tier
}

// TierOf returns the user's subscription tier, if any.
func (l *Ledger) TierOf(userID string) (Tier, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	tier, ok := l.tiers[userID]
	return tier, ok
}

// QueryCost prices a prompt for a provider.
func (l *Ledger) QueryCost(promptLen int, provider string) uint64 {
	multiplier, ok := l.rates.ProviderMultipliers[provider]
	if !ok {
		multiplier = 1
	}
	return uint64(promptLen) * l.rates.QueryBaseCost * multiplier
}

// StorageCost prices storing sizeBytes of content.
func (l *Ledger) StorageCost(sizeBytes uint64) uint64 {
	return sizeBytes * l.rates.StorageCostPerByte
}

// ChargeQuery debits the query cost if the user can afford it. When the
// balance is short the query still proceeds for free — the service is
// biased toward answering — so ok=false only signals that nothing was
// charged.
func (l *Ledger) ChargeQuery(userID string, promptLen int, provider string) (charged uint64, ok bool) {
	cost := l.QueryCost(promptLen, provider)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cycles[userID] < cost {
		return 0, false
	}

	l.cycles[userID] -= cost
	l.spent[userID] += cost
	return cost, true
}

// Spend debits an exact amount, failing when the balance is insufficient.
func (l *Ledger) Spend(userID string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cycles[userID] < amount {
		return fmt.Errorf("insufficient cycles: need %d, have %d", amount, l.cycles[userID])
	}

	l.cycles[userID] -= amount
	l.spent[userID] += amount
	return nil
}
