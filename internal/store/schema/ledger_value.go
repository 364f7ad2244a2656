package schema

import "time"

// Ledger value keys for the global counters and flags.
const (
	// LedgerKeyNextTokenID holds the next token identifier to assign
	LedgerKeyNextTokenID = "next_token_id"
	// LedgerKeyFeeBps holds the platform fee in basis points
	LedgerKeyFeeBps = "fee_bps"
	// LedgerKeyPaused holds the global kill-switch flag
	LedgerKeyPaused = "platform_paused"
	// LedgerKeyNFTContract holds the linked NFT contract address
	LedgerKeyNFTContract = "nft_contract"
)

// LedgerValue represents the ledger_values table - global counters and
// flags stored as key/value pairs.
type LedgerValue struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;not null;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the LedgerValue model
func (LedgerValue) TableName() string {
	return "ledger_values"
}
