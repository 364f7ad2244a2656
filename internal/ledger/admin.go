package ledger

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/logger"
	"github.com/pokebro/launchpad/internal/store"
	"github.com/pokebro/launchpad/internal/store/schema"
)

// CreateSet registers a single new set. The sale starts closed.
func (e *Engine) CreateSet(ctx context.Context, params SetParams) (*schema.Set, error) {
	sets, err := e.CreateSets(ctx, []SetParams{params})
	if err != nil {
		return nil, err
	}
	return &sets[0], nil
}

// CreateSets registers a batch of new sets in one atomic operation.
// Either every set is created or none are. Identifiers are assigned
// serially in input order and never reused.
func (e *Engine) CreateSets(ctx context.Context, params []SetParams) ([]schema.Set, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(params) == 0 {
		return nil, fmt.Errorf("no sets to create")
	}
	if len(params) > domain.MaxCreateSetsPerBatch {
		return nil, domain.ErrBatchTooLarge
	}
	for _, p := range params {
		if domain.IsZeroAddress(p.Creator) {
			return nil, domain.ErrZeroAddress
		}
		if p.PriceWei == nil || p.PriceWei.Sign() < 0 {
			return nil, domain.ErrZeroAmount
		}
	}

	existing, err := e.store.CountSets(ctx)
	if err != nil {
		return nil, err
	}
	if existing+uint64(len(params)) > domain.MaxSets {
		return nil, domain.ErrMaxSetsReached
	}

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block height: %w", err)
	}

	inputs := make([]store.CreateSetInput, 0, len(params))
	for _, p := range params {
		inputs = append(inputs, store.CreateSetInput{
			NameHash:       p.NameHash.Hex(),
			MaxPerSet:      p.MaxPerSet,
			PriceWei:       p.PriceWei.String(),
			Creator:        p.Creator.Hex(),
			CreatedAtBlock: atBlock,
		})
	}

	sets, err := e.store.CreateSets(ctx, inputs)
	if err != nil {
		return nil, err
	}

	for _, s := range sets {
		event := e.newEvent(domain.EventTypeSetCreated, atBlock)
		event.SetID = s.ID
		e.publish(ctx, event)
	}

	logger.InfoCtx(ctx, "sets created",
		zap.Int("count", len(sets)),
		zap.Uint64("first_set_id", sets[0].ID))

	return sets, nil
}

// SetPrice updates a set's per-unit price. Takes effect for subsequent
// mints only.
func (e *Engine) SetPrice(ctx context.Context, setID uint64, priceWei string) error {
	return e.updateSetConfig(ctx, setID, store.SetConfigUpdate{PriceWei: &priceWei})
}

// SetCreator redirects a set's creator payout address.
func (e *Engine) SetCreator(ctx context.Context, setID uint64, creator string) error {
	return e.updateSetConfig(ctx, setID, store.SetConfigUpdate{Creator: &creator})
}

// SetNameHash replaces a set's name hash.
func (e *Engine) SetNameHash(ctx context.Context, setID uint64, nameHash string) error {
	return e.updateSetConfig(ctx, setID, store.SetConfigUpdate{NameHash: &nameHash})
}

// SetMaxPerSet adjusts a set's supply cap. The cap can move in either
// direction but never below the set's already minted count.
func (e *Engine) SetMaxPerSet(ctx context.Context, setID uint64, maxPerSet uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	set, err := e.store.GetSet(ctx, setID)
	if err != nil {
		return err
	}
	if set == nil {
		return domain.ErrSetNotFound
	}
	if maxPerSet < set.MintedFromSet {
		return domain.ErrMaxBelowMinted
	}

	return e.applySetUpdate(ctx, setID, store.SetConfigUpdate{MaxPerSet: &maxPerSet})
}

func (e *Engine) updateSetConfig(ctx context.Context, setID uint64, update store.SetConfigUpdate) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.applySetUpdate(ctx, setID, update)
}

// applySetUpdate writes the update and emits the config event.
// Callers must hold e.mu.
func (e *Engine) applySetUpdate(ctx context.Context, setID uint64, update store.SetConfigUpdate) error {
	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block height: %w", err)
	}

	if err := e.store.UpdateSetConfig(ctx, setID, update); err != nil {
		return err
	}

	event := e.newEvent(domain.EventTypeSetConfigUpdated, atBlock)
	event.SetID = setID
	e.publish(ctx, event)

	return nil
}

// OpenSale opens minting from the given set. Opening an already open
// sale returns domain.ErrSaleAlreadyOpen.
func (e *Engine) OpenSale(ctx context.Context, setID uint64) error {
	return e.setSaleOpen(ctx, setID, true)
}

// CloseSale closes minting from the given set. Closing an already
// closed sale returns domain.ErrSaleAlreadyClosed.
func (e *Engine) CloseSale(ctx context.Context, setID uint64) error {
	return e.setSaleOpen(ctx, setID, false)
}

func (e *Engine) setSaleOpen(ctx context.Context, setID uint64, open bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block height: %w", err)
	}

	if err := e.store.SetSaleOpen(ctx, setID, open); err != nil {
		return err
	}

	eventType := domain.EventTypeSaleOpened
	if !open {
		eventType = domain.EventTypeSaleClosed
	}
	event := e.newEvent(eventType, atBlock)
	event.SetID = setID
	e.publish(ctx, event)

	logger.InfoCtx(ctx, "sale gate toggled",
		zap.Uint64("set_id", setID),
		zap.Bool("open", open))

	return nil
}

// SetFeeBps updates the platform fee rate. The rate applies to
// subsequent mints only and is capped at domain.MaxFeeBps.
func (e *Engine) SetFeeBps(ctx context.Context, feeBps uint32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if feeBps > domain.MaxFeeBps {
		return domain.ErrInvalidFee
	}

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block height: %w", err)
	}

	if err := e.store.SetFeeBps(ctx, feeBps); err != nil {
		return err
	}

	event := e.newEvent(domain.EventTypeFeeUpdated, atBlock)
	event.FeeBps = &feeBps
	e.publish(ctx, event)

	logger.InfoCtx(ctx, "platform fee updated", zap.Uint32("fee_bps", feeBps))

	return nil
}

// Pause engages the global kill-switch. Minting is rejected until
// Unpause; configuration and sweeps stay available.
func (e *Engine) Pause(ctx context.Context) error {
	return e.setPaused(ctx, true)
}

// Unpause releases the global kill-switch.
func (e *Engine) Unpause(ctx context.Context) error {
	return e.setPaused(ctx, false)
}

func (e *Engine) setPaused(ctx context.Context, paused bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, err := e.store.GetLedgerState(ctx)
	if err != nil {
		return err
	}
	if state.Paused == paused {
		if paused {
			return domain.ErrAlreadyPaused
		}
		return domain.ErrNotPaused
	}

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block height: %w", err)
	}

	if err := e.store.SetPaused(ctx, paused); err != nil {
		return err
	}

	event := e.newEvent(domain.EventTypePausedStateChanged, atBlock)
	event.Paused = &paused
	e.publish(ctx, event)

	logger.InfoCtx(ctx, "paused state changed", zap.Bool("paused", paused))

	return nil
}

// LinkNFTContract records the address of the external NFT contract the
// engine issues through. Required before any mint can succeed.
func (e *Engine) LinkNFTContract(ctx context.Context, address string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !common.IsHexAddress(address) || domain.IsZeroAddress(common.HexToAddress(address)) {
		return domain.ErrZeroAddress
	}

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block height: %w", err)
	}

	normalized := common.HexToAddress(address).Hex()
	if err := e.store.SetNFTContract(ctx, normalized); err != nil {
		return err
	}

	event := e.newEvent(domain.EventTypeNFTContractLinked, atBlock)
	event.Contract = normalized
	e.publish(ctx, event)

	logger.InfoCtx(ctx, "nft contract linked", zap.String("contract", normalized))

	return nil
}
