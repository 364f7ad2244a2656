package schema

import (
	"time"
)

// Snapshot represents the snapshots table - the append-only audit log.
// One row per successful mint batch; rows are never mutated or deleted.
// Seq is a global sequence starting at 1, strictly increasing, never reused.
type Snapshot struct {
	// Seq is the global snapshot sequence number
	Seq uint64 `gorm:"column:seq;primaryKey;autoIncrement"`
	// SetID is the set the batch was minted from
	SetID uint64 `gorm:"column:set_id;not null;index:idx_snapshots_set_seq,priority:1"`
	// MintedFromSet is the set's cumulative minted count after the batch
	MintedFromSet uint64 `gorm:"column:minted_from_set;not null"`
	// AtBlock is the block height observed when the batch completed
	AtBlock uint64 `gorm:"column:at_block;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Snapshot model
func (Snapshot) TableName() string {
	return "snapshots"
}
