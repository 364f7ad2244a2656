package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Set{},
		&schema.Collectible{},
		&schema.Snapshot{},
		&schema.LedgerValue{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// EnsureLedgerState seeds the global counters on first startup
func (s *pgStore) EnsureLedgerState(ctx context.Context, initialFeeBps uint32) error {
	seeds := []schema.LedgerValue{
		{Key: schema.LedgerKeyNextTokenID, Value: "0"},
		{Key: schema.LedgerKeyFeeBps, Value: strconv.FormatUint(uint64(initialFeeBps), 10)},
		{Key: schema.LedgerKeyPaused, Value: "false"},
		{Key: schema.LedgerKeyNFTContract, Value: ""},
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&seeds).Error
	if err != nil {
		return fmt.Errorf("failed to seed ledger state: %w", err)
	}

	return nil
}

// GetLedgerState retrieves the decoded global counters and flags
func (s *pgStore) GetLedgerState(ctx context.Context) (*LedgerState, error) {
	var values []schema.LedgerValue
	err := s.db.WithContext(ctx).Find(&values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger state: %w", err)
	}

	state := &LedgerState{}
	for _, kv := range values {
		switch kv.Key {
		case schema.LedgerKeyNextTokenID:
			state.NextTokenID, err = strconv.ParseUint(kv.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse next token id: %w", err)
			}
		case schema.LedgerKeyFeeBps:
			feeBps, err := strconv.ParseUint(kv.Value, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("failed to parse fee bps: %w", err)
			}
			state.FeeBps = uint32(feeBps)
		case schema.LedgerKeyPaused:
			state.Paused = kv.Value == "true"
		case schema.LedgerKeyNFTContract:
			state.NFTContract = kv.Value
		}
	}

	return state, nil
}

// SetFeeBps stores the platform fee rate
func (s *pgStore) SetFeeBps(ctx context.Context, feeBps uint32) error {
	return s.putLedgerValue(ctx, schema.LedgerKeyFeeBps, strconv.FormatUint(uint64(feeBps), 10))
}

// SetPaused stores the global pause flag
func (s *pgStore) SetPaused(ctx context.Context, paused bool) error {
	return s.putLedgerValue(ctx, schema.LedgerKeyPaused, strconv.FormatBool(paused))
}

// SetNFTContract stores the linked NFT contract address
func (s *pgStore) SetNFTContract(ctx context.Context, address string) error {
	return s.putLedgerValue(ctx, schema.LedgerKeyNFTContract, address)
}

func (s *pgStore) putLedgerValue(ctx context.Context, key, value string) error {
	kv := schema.LedgerValue{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set ledger value %s: %w", key, err)
	}

	return nil
}

// CountSets returns the total number of sets ever created.
// Sets are never deleted, so the row count equals the set counter.
func (s *pgStore) CountSets(ctx context.Context) (uint64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Set{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sets: %w", err)
	}

	return uint64(count), nil //nolint:gosec,G115
}

// GetSet retrieves a set by its identifier
func (s *pgStore) GetSet(ctx context.Context, setID uint64) (*schema.Set, error) {
	var set schema.Set
	err := s.db.WithContext(ctx).Where("id = ?", setID).First(&set).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get set: %w", err)
	}

	return &set, nil
}

// ListSets retrieves sets ordered by identifier with pagination
func (s *pgStore) ListSets(ctx context.Context, limit int, offset uint64) ([]schema.Set, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Set{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sets: %w", err)
	}

	var sets []schema.Set
	err := query.Order("id ASC").Limit(limit).Offset(int(offset)).Find(&sets).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sets: %w", err)
	}

	return sets, uint64(total), nil //nolint:gosec,G115
}

// CreateSets creates one or more sets in a single transaction
func (s *pgStore) CreateSets(ctx context.Context, inputs []CreateSetInput) ([]schema.Set, error) {
	sets := make([]schema.Set, len(inputs))
	for i, input := range inputs {
		sets[i] = schema.Set{
			NameHash:       input.NameHash,
			MaxPerSet:      input.MaxPerSet,
			PriceWei:       input.PriceWei,
			Creator:        input.Creator,
			CreatedAtBlock: input.CreatedAtBlock,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sets).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sets: %w", err)
	}

	return sets, nil
}

// UpdateSetConfig applies a partial configuration update to a set
func (s *pgStore) UpdateSetConfig(ctx context.Context, setID uint64, update SetConfigUpdate) error {
	updates := map[string]interface{}{}
	if update.NameHash != nil {
		updates["name_hash"] = *update.NameHash
	}
	if update.MaxPerSet != nil {
		updates["max_per_set"] = *update.MaxPerSet
	}
	if update.PriceWei != nil {
		updates["price_wei"] = *update.PriceWei
	}
	if update.Creator != nil {
		updates["creator"] = *update.Creator
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).Model(&schema.Set{}).Where("id = ?", setID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update set config: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSetNotFound
	}

	return nil
}

// SetSaleOpen toggles a set's sale gate, rejecting redundant transitions
func (s *pgStore) SetSaleOpen(ctx context.Context, setID uint64, open bool) error {
	result := s.db.WithContext(ctx).Model(&schema.Set{}).
		Where("id = ? AND sale_open = ?", setID, !open).
		Update("sale_open", open)
	if result.Error != nil {
		return fmt.Errorf("failed to toggle sale: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Distinguish missing set from a redundant transition
		set, err := s.GetSet(ctx, setID)
		if err != nil {
			return err
		}
		if set == nil {
			return domain.ErrSetNotFound
		}
		if open {
			return domain.ErrSaleAlreadyOpen
		}
		return domain.ErrSaleAlreadyClosed
	}

	return nil
}

// ApplyMintBatch atomically applies a validated mint batch: advances the
// set counter and the global token id cursor, records provenance for each
// assigned token id, and appends exactly one snapshot.
func (s *pgStore) ApplyMintBatch(ctx context.Context, input MintBatchInput) (*MintBatchResult, error) {
	var result MintBatchResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Guarded update keeps mintedFromSet <= maxPerSet even if the
		// caller's view of the set was stale.
		setUpdate := tx.Model(&schema.Set{}).
			Where("id = ? AND minted_from_set + ? <= max_per_set", input.SetID, input.Count).
			Update("minted_from_set", gorm.Expr("minted_from_set + ?", input.Count))
		if setUpdate.Error != nil {
			return fmt.Errorf("failed to advance set counter: %w", setUpdate.Error)
		}
		if setUpdate.RowsAffected == 0 {
			return domain.ErrExceedsSetSupply
		}

		// The cursor must still be exactly at FirstTokenID; otherwise the
		// token id range was reserved against a stale cursor.
		cursorUpdate := tx.Model(&schema.LedgerValue{}).
			Where("key = ? AND value = ?", schema.LedgerKeyNextTokenID, strconv.FormatUint(input.FirstTokenID, 10)).
			Update("value", strconv.FormatUint(input.FirstTokenID+input.Count, 10))
		if cursorUpdate.Error != nil {
			return fmt.Errorf("failed to advance token id cursor: %w", cursorUpdate.Error)
		}
		if cursorUpdate.RowsAffected == 0 {
			return fmt.Errorf("token id cursor is not at %d", input.FirstTokenID)
		}

		// Provenance rows, one per unit, write-once per token id
		collectibles := make([]schema.Collectible, input.Count)
		for i := uint64(0); i < input.Count; i++ {
			collectibles[i] = schema.Collectible{
				TokenID:       input.FirstTokenID + i,
				SetID:         input.SetID,
				Recipient:     input.Recipient,
				MintedAtBlock: input.AtBlock,
			}
		}
		if err := tx.Create(&collectibles).Error; err != nil {
			return fmt.Errorf("failed to record provenance: %w", err)
		}

		// Read back the post-batch cumulative count for the snapshot
		var set schema.Set
		if err := tx.Where("id = ?", input.SetID).First(&set).Error; err != nil {
			return fmt.Errorf("failed to read set after update: %w", err)
		}

		snapshot := schema.Snapshot{
			SetID:         input.SetID,
			MintedFromSet: set.MintedFromSet,
			AtBlock:       input.AtBlock,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to append snapshot: %w", err)
		}

		result = MintBatchResult{
			SnapshotSeq:   snapshot.Seq,
			MintedFromSet: set.MintedFromSet,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetCollectible retrieves the provenance record for a token id
func (s *pgStore) GetCollectible(ctx context.Context, tokenID uint64) (*schema.Collectible, error) {
	var collectible schema.Collectible
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&collectible).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collectible: %w", err)
	}

	return &collectible, nil
}

// GetSnapshot retrieves a snapshot by its global sequence number
func (s *pgStore) GetSnapshot(ctx context.Context, seq uint64) (*schema.Snapshot, error) {
	var snapshot schema.Snapshot
	err := s.db.WithContext(ctx).Where("seq = ?", seq).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return &snapshot, nil
}

// ListSetSnapshots retrieves a set's snapshots in insertion order
func (s *pgStore) ListSetSnapshots(ctx context.Context, setID uint64, limit int, offset uint64) ([]schema.Snapshot, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Snapshot{}).Where("set_id = ?", setID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count snapshots: %w", err)
	}

	var snapshots []schema.Snapshot
	err := query.Order("seq ASC").Limit(limit).Offset(int(offset)).Find(&snapshots).Error //nolint:gosec,G115
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return snapshots, uint64(total), nil //nolint:gosec,G115
}
