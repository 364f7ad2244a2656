package schema

import (
	"time"
)

// Set represents the sets table - one row per collectible set.
// Set identifiers are assigned serially starting at 1 and never reused;
// 0 is reserved/invalid.
type Set struct {
	// ID is the set identifier (1..setCounter)
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NameHash is the 32-byte hash of the set's display name, hex encoded.
	// Identity/comparison only, never interpreted.
	NameHash string `gorm:"column:name_hash;not null;type:text"`
	// MaxPerSet is the upper bound on units mintable from this set.
	// Owner-adjustable but never below MintedFromSet.
	MaxPerSet uint64 `gorm:"column:max_per_set;not null"`
	// PriceWei is the per-unit price in wei (string to hold 256-bit values)
	PriceWei string `gorm:"column:price_wei;not null;type:numeric(78,0)"`
	// Creator is the payout address for this set's creator share
	Creator string `gorm:"column:creator;not null;type:text"`
	// MintedFromSet counts units minted from this set. Monotonically
	// non-decreasing; only successful mint batches advance it.
	MintedFromSet uint64 `gorm:"column:minted_from_set;not null;default:0"`
	// SaleOpen gates minting from this set
	SaleOpen bool `gorm:"column:sale_open;not null;default:false"`
	// CreatedAtBlock is the block height observed at creation, immutable
	CreatedAtBlock uint64 `gorm:"column:created_at_block;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Snapshots    []Snapshot    `gorm:"foreignKey:SetID;constraint:OnDelete:RESTRICT"`
	Collectibles []Collectible `gorm:"foreignKey:SetID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the Set model
func (Set) TableName() string {
	return "sets"
}
