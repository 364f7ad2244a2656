package schema

import (
	"time"
)

// Collectible represents the collectibles table - the provenance mapping
// tokenID -> setID. Each row is written exactly once at mint time and
// traces an issued token back to its originating set.
type Collectible struct {
	// TokenID is the global token identifier assigned at mint time
	TokenID uint64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// SetID is the set this token was minted from
	SetID uint64 `gorm:"column:set_id;not null;index"`
	// Recipient is the address the token was issued to
	Recipient string `gorm:"column:recipient;not null;type:text"`
	// MintedAtBlock is the block height observed when the token was minted
	MintedAtBlock uint64 `gorm:"column:minted_at_block;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Collectible model
func (Collectible) TableName() string {
	return "collectibles"
}
