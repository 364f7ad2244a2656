package store

import (
	"context"

	"github.com/pokebro/launchpad/internal/store/schema"
)

// LedgerState holds the decoded global counters and flags.
type LedgerState struct {
	// NextTokenID is the next token identifier to assign (starts at 0)
	NextTokenID uint64
	// FeeBps is the platform fee in basis points
	FeeBps uint32
	// Paused is the global kill-switch
	Paused bool
	// NFTContract is the linked NFT contract address (empty until linked)
	NFTContract string
}

// CreateSetInput holds the parameters for creating a set.
type CreateSetInput struct {
	NameHash       string
	MaxPerSet      uint64
	PriceWei       string
	Creator        string
	CreatedAtBlock uint64
}

// SetConfigUpdate holds a partial update to a set's configuration.
// Nil fields are left unchanged.
type SetConfigUpdate struct {
	NameHash  *string
	MaxPerSet *uint64
	PriceWei  *string
	Creator   *string
}

// MintBatchInput holds the state mutation of a validated mint batch.
type MintBatchInput struct {
	SetID        uint64
	FirstTokenID uint64
	Count        uint64
	Recipient    string
	AtBlock      uint64
}

// MintBatchResult reports the post-batch state written by ApplyMintBatch.
type MintBatchResult struct {
	// SnapshotSeq is the sequence number of the appended snapshot
	SnapshotSeq uint64
	// MintedFromSet is the set's cumulative minted count after the batch
	MintedFromSet uint64
}

// Store defines the interface for ledger persistence
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// EnsureLedgerState seeds the global counters on first startup.
	// Existing values are left untouched.
	EnsureLedgerState(ctx context.Context, initialFeeBps uint32) error
	// GetLedgerState retrieves the decoded global counters and flags
	GetLedgerState(ctx context.Context) (*LedgerState, error)
	// SetFeeBps stores the platform fee rate
	SetFeeBps(ctx context.Context, feeBps uint32) error
	// SetPaused stores the global pause flag
	SetPaused(ctx context.Context, paused bool) error
	// SetNFTContract stores the linked NFT contract address
	SetNFTContract(ctx context.Context, address string) error

	// CountSets returns the total number of sets ever created
	CountSets(ctx context.Context) (uint64, error)
	// GetSet retrieves a set by its identifier; returns nil if not found
	GetSet(ctx context.Context, setID uint64) (*schema.Set, error)
	// ListSets retrieves sets ordered by identifier with pagination
	ListSets(ctx context.Context, limit int, offset uint64) ([]schema.Set, uint64, error)
	// CreateSets creates one or more sets in a single transaction and
	// returns them with their assigned identifiers
	CreateSets(ctx context.Context, inputs []CreateSetInput) ([]schema.Set, error)
	// UpdateSetConfig applies a partial configuration update to a set
	UpdateSetConfig(ctx context.Context, setID uint64, update SetConfigUpdate) error
	// SetSaleOpen toggles a set's sale gate. A redundant transition
	// (opening an open sale, closing a closed one) returns
	// domain.ErrSaleAlreadyOpen / domain.ErrSaleAlreadyClosed.
	SetSaleOpen(ctx context.Context, setID uint64, open bool) error

	// ApplyMintBatch atomically advances the set and global counters,
	// records provenance for each assigned token id, and appends exactly
	// one snapshot. Either every row is written or none are.
	ApplyMintBatch(ctx context.Context, input MintBatchInput) (*MintBatchResult, error)

	// GetCollectible retrieves the provenance record for a token id; nil if not found
	GetCollectible(ctx context.Context, tokenID uint64) (*schema.Collectible, error)
	// GetSnapshot retrieves a snapshot by its global sequence number; nil if not found
	GetSnapshot(ctx context.Context, seq uint64) (*schema.Snapshot, error)
	// ListSetSnapshots retrieves a set's snapshots in insertion order with pagination
	ListSetSnapshots(ctx context.Context, setID uint64, limit int, offset uint64) ([]schema.Snapshot, uint64, error)
}
