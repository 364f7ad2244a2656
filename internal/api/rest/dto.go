package rest

import (
	"time"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/store"
	"github.com/pokebro/launchpad/internal/store/schema"
)

// MintRequest is the body of POST /api/v1/mint
type MintRequest struct {
	SetID     uint64 `json:"set_id" binding:"required"`
	Count     uint64 `json:"count" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	// PaidWei is the attached payment in wei, decimal string
	PaidWei string `json:"paid_wei" binding:"required"`
}

// MintResponse reports a successful mint batch
type MintResponse struct {
	SetID         uint64 `json:"set_id"`
	FirstTokenID  uint64 `json:"first_token_id"`
	Count         uint64 `json:"count"`
	TotalPriceWei string `json:"total_price_wei"`
	SnapshotSeq   uint64 `json:"snapshot_seq"`
	AtBlock       uint64 `json:"at_block"`
}

// CreateSetsRequest is the body of POST /api/v1/sets.
// The four arrays are parallel; one set is created per index.
type CreateSetsRequest struct {
	NameHashes []string `json:"name_hashes" binding:"required"`
	MaxPerSet  []uint64 `json:"max_per_set" binding:"required"`
	PricesWei  []string `json:"prices_wei" binding:"required"`
	Creators   []string `json:"creators" binding:"required"`
}

// UpdateSetRequest is the body of PATCH /api/v1/sets/:id.
// Nil fields are left unchanged.
type UpdateSetRequest struct {
	NameHash  *string `json:"name_hash"`
	MaxPerSet *uint64 `json:"max_per_set"`
	PriceWei  *string `json:"price_wei"`
	Creator   *string `json:"creator"`
}

// SetFeeRequest is the body of PUT /api/v1/ledger/fee
type SetFeeRequest struct {
	FeeBps uint32 `json:"fee_bps"`
}

// LinkContractRequest is the body of PUT /api/v1/ledger/contract
type LinkContractRequest struct {
	Address string `json:"address" binding:"required"`
}

// SweepRequest is the body of POST /api/v1/sweep
type SweepRequest struct {
	// Destination is one of treasury, vault, launchpad
	Destination string `json:"destination" binding:"required"`
	AmountWei   string `json:"amount_wei" binding:"required"`
}

// SetResponse is the wire form of a set
type SetResponse struct {
	ID             uint64    `json:"id"`
	NameHash       string    `json:"name_hash"`
	MaxPerSet      uint64    `json:"max_per_set"`
	PriceWei       string    `json:"price_wei"`
	Creator        string    `json:"creator"`
	MintedFromSet  uint64    `json:"minted_from_set"`
	SaleOpen       bool      `json:"sale_open"`
	CreatedAtBlock uint64    `json:"created_at_block"`
	CreatedAt      time.Time `json:"created_at"`
}

// SnapshotResponse is the wire form of a snapshot
type SnapshotResponse struct {
	Seq           uint64    `json:"seq"`
	SetID         uint64    `json:"set_id"`
	MintedFromSet uint64    `json:"minted_from_set"`
	AtBlock       uint64    `json:"at_block"`
	CreatedAt     time.Time `json:"created_at"`
}

// CollectibleResponse is the wire form of a collectible provenance record
type CollectibleResponse struct {
	TokenID       uint64    `json:"token_id"`
	SetID         uint64    `json:"set_id"`
	Recipient     string    `json:"recipient"`
	MintedAtBlock uint64    `json:"minted_at_block"`
	CreatedAt     time.Time `json:"created_at"`
}

// LedgerStateResponse is the wire form of the global counters and flags
type LedgerStateResponse struct {
	NextTokenID uint64 `json:"next_token_id"`
	TotalMinted uint64 `json:"total_minted"`
	GlobalCap   uint64 `json:"global_cap"`
	FeeBps      uint32 `json:"fee_bps"`
	Paused      bool   `json:"paused"`
	NFTContract string `json:"nft_contract,omitempty"`
}

// ListMeta carries pagination metadata
type ListMeta struct {
	Total  uint64 `json:"total"`
	Limit  int    `json:"limit"`
	Offset uint64 `json:"offset"`
}

// SetListResponse is the body of GET /api/v1/sets
type SetListResponse struct {
	Sets []SetResponse `json:"sets"`
	Meta ListMeta      `json:"meta"`
}

// SnapshotListResponse is the body of GET /api/v1/sets/:id/snapshots
type SnapshotListResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
	Meta      ListMeta           `json:"meta"`
}

func toSetResponse(s *schema.Set) SetResponse {
	return SetResponse{
		ID:             s.ID,
		NameHash:       s.NameHash,
		MaxPerSet:      s.MaxPerSet,
		PriceWei:       s.PriceWei,
		Creator:        s.Creator,
		MintedFromSet:  s.MintedFromSet,
		SaleOpen:       s.SaleOpen,
		CreatedAtBlock: s.CreatedAtBlock,
		CreatedAt:      s.CreatedAt,
	}
}

func toSnapshotResponse(s *schema.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Seq:           s.Seq,
		SetID:         s.SetID,
		MintedFromSet: s.MintedFromSet,
		AtBlock:       s.AtBlock,
		CreatedAt:     s.CreatedAt,
	}
}

func toCollectibleResponse(c *schema.Collectible) CollectibleResponse {
	return CollectibleResponse{
		TokenID:       c.TokenID,
		SetID:         c.SetID,
		Recipient:     c.Recipient,
		MintedAtBlock: c.MintedAtBlock,
		CreatedAt:     c.CreatedAt,
	}
}

func toMintResponse(r *domain.MintReceipt) MintResponse {
	return MintResponse{
		SetID:         r.SetID,
		FirstTokenID:  r.FirstTokenID,
		Count:         r.Count,
		TotalPriceWei: r.TotalPriceWei.String(),
		SnapshotSeq:   r.SnapshotSeq,
		AtBlock:       r.AtBlock,
	}
}

func toLedgerStateResponse(s *store.LedgerState) LedgerStateResponse {
	return LedgerStateResponse{
		NextTokenID: s.NextTokenID,
		TotalMinted: s.NextTokenID,
		GlobalCap:   domain.PokeBroCap,
		FeeBps:      s.FeeBps,
		Paused:      s.Paused,
		NFTContract: s.NFTContract,
	}
}
