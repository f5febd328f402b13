// Package governance runs token-weighted proposal voting. Voting power is
// the caller's AI token balance from the ledger.
package governance

import (
	"errors"
	"sync"
	"time"

	"github.com/memorymindai/memorymind/pkg/ledger"
)

// ProposalType categorizes what a proposal changes.
type ProposalType string

const (
	ProposalAddProvider  ProposalType = "add_provider"
	ProposalUpdateRates  ProposalType = "update_rates"
	ProposalPromptUpdate ProposalType = "prompt_update"
	ProposalTreasury     ProposalType = "treasury"
)

// proposalThreshold is the minimum token balance required to open a proposal.
const proposalThreshold = 1000

// votingPeriod is how long a proposal stays open.
const votingPeriod = 7 * 24 * time.Hour

var (
	// ErrInsufficientTokens is returned when a proposer holds fewer tokens
	// than the proposal threshold.
	ErrInsufficientTokens = errors.New("need at least 1000 tokens to create proposals")

	// ErrNoVotingPower is returned when a voter holds no tokens.
	ErrNoVotingPower = errors.New("no voting power")

	// ErrProposalNotFound is returned for an unknown proposal id.
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrVotingClosed is returned when the proposal's deadline has passed.
	ErrVotingClosed = errors.New("voting period has ended")
)

// Proposal is one governance proposal with its running tally.
type Proposal struct {
	ID               uint64       `json:"id"`
	Proposer         string       `json:"proposer"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	ProposalType     ProposalType `json:"proposal_type"`
	VotesFor         uint64       `json:"votes_for"`
	VotesAgainst     uint64       `json:"votes_against"`
	TotalVotingPower uint64       `json:"total_voting_power"`
	Deadline         time.Time    `json:"deadline"`
	Executed         bool         `json:"executed"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Board owns all proposals.
type Board struct {
	mu        sync.RWMutex
	proposals []Proposal
	ledger    *ledger.Ledger
}

// NewBoard creates an empty board backed by the given ledger.
func NewBoard(l *ledger.Ledger) *Board {
	return &Board{ledger: l}
}

// Create opens a new proposal. The proposer must hold at least the
// threshold token balance.
func (b *Board) Create(proposer, title, description string, kind ProposalType) (uint64, error) {
	if b.ledger.TokenBalance(proposer) < proposalThreshold {
		return 0, ErrInsufficientTokens
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	id := uint64(len(b.proposals))
	b.proposals = append(b.proposals, Proposal{
		ID:           id,
		Proposer:     proposer,
		Title:        title,
		Description:  description,
		ProposalType: kind,
		Deadline:     now.Add(votingPeriod),
		CreatedAt:    now,
	})

	return id, nil
}

// Vote records a token-weighted vote on an open proposal.
func (b *Board) Vote(voter string, proposalID uint64, inFavor bool) error {
	power := b.ledger.TokenBalance(voter)
	if power == 0 {
		return ErrNoVotingPower
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if proposalID >= uint64(len(b.proposals)) {
		return ErrProposalNotFound
	}

	proposal := &b.proposals[proposalID]
	if time.Now().After(proposal.Deadline) {
		return ErrVotingClosed
	}

	if inFavor {
		proposal.VotesFor += power
	} else {
		proposal.VotesAgainst += power
	}
	proposal.TotalVotingPower += power

	return nil
}

// Proposals returns a copy of every proposal.
func (b *Board) Proposals() []Proposal {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Proposal, len(b.proposals))
	copy(out, b.proposals)
	return out
}
