package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventType represents the type of ledger event
type EventType string

const (
	EventTypeSetCreated         EventType = "set_created"
	EventTypeSetConfigUpdated   EventType = "set_config_updated"
	EventTypeCollectibleMinted  EventType = "collectible_minted"
	EventTypeBatchMinted        EventType = "batch_minted"
	EventTypeSaleOpened         EventType = "sale_opened"
	EventTypeSaleClosed         EventType = "sale_closed"
	EventTypeSnapshotRecorded   EventType = "snapshot_recorded"
	EventTypeFeeUpdated         EventType = "fee_updated"
	EventTypePausedStateChanged EventType = "paused_state_changed"
	EventTypeSwept              EventType = "swept"
	EventTypeNFTContractLinked  EventType = "nft_contract_linked"
)

// LedgerEvent represents a single ledger state change.
// This is the standard format published to NATS for off-chain indexing.
// AtBlock is the block height observed when the change was applied.
type LedgerEvent struct {
	ID           string    `json:"id"` // ULID, monotonic within the process
	Type         EventType `json:"type"`
	SetID        uint64    `json:"set_id,omitempty"`
	TokenID      *uint64   `json:"token_id,omitempty"`       // collectible_minted
	FirstTokenID *uint64   `json:"first_token_id,omitempty"` // batch_minted
	Count        uint64    `json:"count,omitempty"`          // batch_minted
	Recipient    string    `json:"recipient,omitempty"`
	Destination  string    `json:"destination,omitempty"` // swept
	AmountWei    string    `json:"amount_wei,omitempty"`  // swept
	FeeBps       *uint32   `json:"fee_bps,omitempty"`     // fee_updated
	Paused       *bool     `json:"paused,omitempty"`      // paused_state_changed
	SnapshotSeq  uint64    `json:"snapshot_seq,omitempty"`
	Contract     string    `json:"contract,omitempty"` // nft_contract_linked
	AtBlock      uint64    `json:"at_block"`
	Timestamp    time.Time `json:"timestamp"`
}

// MintReceipt summarizes a successful mint batch.
// The assigned token range is [FirstTokenID, FirstTokenID+Count-1].
type MintReceipt struct {
	SetID         uint64
	FirstTokenID  uint64
	Count         uint64
	TotalPriceWei *big.Int
	SnapshotSeq   uint64
	AtBlock       uint64
}

// PayoutIdentities holds the immutable payment destinations,
// fixed at system creation. Each is a distinct address.
type PayoutIdentities struct {
	Treasury  common.Address
	Vault     common.Address
	Launchpad common.Address
}

// IsZeroAddress reports whether addr is the zero address.
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}
