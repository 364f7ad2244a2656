package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/logger"
	"github.com/pokebro/launchpad/internal/split"
	"github.com/pokebro/launchpad/internal/store"
	"github.com/pokebro/launchpad/internal/store/schema"
)

// MintFromSet mints count units from the given set to caller, funded by
// paidWei. On success the assigned token range is
// [receipt.FirstTokenID, receipt.FirstTokenID+count-1].
//
// Preconditions are checked in a fixed order so the reported error is
// deterministic: contract linked, count non-zero, batch bound, set
// exists, platform not paused, sale open, set supply, global supply,
// payment sufficiency. Overpayment beyond priceWei*count is retained by
// the system balance and not refunded.
//
// All effects are applied as one unit: the payment split is disbursed,
// every token id is issued through the external contract, the counters
// and provenance rows are advanced atomically, and exactly one snapshot
// is appended. Any failure aborts the whole operation with no state
// written.
func (e *Engine) MintFromSet(ctx context.Context, setID uint64, count uint64, paidWei *big.Int, caller common.Address) (*domain.MintReceipt, error) {
	if err := e.enterGuarded(); err != nil {
		return nil, err
	}
	defer e.exitGuarded()

	e.mu.Lock()
	defer e.mu.Unlock()

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block height: %w", err)
	}

	state, err := e.store.GetLedgerState(ctx)
	if err != nil {
		return nil, err
	}

	// Precondition order is part of the contract; do not reorder.
	if state.NFTContract == "" || !common.IsHexAddress(state.NFTContract) ||
		domain.IsZeroAddress(common.HexToAddress(state.NFTContract)) {
		return nil, domain.ErrPokeBroNotSet
	}
	if count == 0 {
		return nil, domain.ErrZeroMint
	}
	if count > domain.MaxMintPerTx {
		return nil, domain.ErrBatchTooLarge
	}

	var set *schema.Set
	if setID != 0 {
		set, err = e.store.GetSet(ctx, setID)
		if err != nil {
			return nil, err
		}
	}
	if set == nil {
		return nil, domain.ErrSetNotFound
	}

	if state.Paused {
		return nil, domain.ErrPlatformPaused
	}
	if !set.SaleOpen {
		return nil, domain.ErrSaleNotOpen
	}
	if set.MintedFromSet+count > set.MaxPerSet {
		return nil, domain.ErrExceedsSetSupply
	}
	if state.NextTokenID+count > domain.PokeBroCap {
		return nil, domain.ErrExceedsGlobalSupply
	}

	price, ok := new(big.Int).SetString(set.PriceWei, 10)
	if !ok {
		return nil, fmt.Errorf("invalid stored price for set %d: %q", setID, set.PriceWei)
	}
	totalPrice := new(big.Int).Mul(price, new(big.Int).SetUint64(count))
	if paidWei == nil || paidWei.Cmp(totalPrice) < 0 {
		return nil, domain.ErrInsufficientPayment
	}

	// Split and disburse. A failed transfer aborts before any token is
	// issued or any counter advanced.
	shares := split.Split(totalPrice, state.FeeBps)
	disbursements := []struct {
		name   string
		to     common.Address
		amount *big.Int
	}{
		{"treasury", e.identities.Treasury, shares.Fee},
		{"creator", common.HexToAddress(set.Creator), shares.Creator},
		{"launchpad", e.identities.Launchpad, shares.Launchpad},
	}
	for _, d := range disbursements {
		if d.amount.Sign() == 0 {
			continue
		}
		if err := e.payouts.Send(ctx, d.to, d.amount); err != nil {
			return nil, fmt.Errorf("%w: %s payout: %s", domain.ErrTransferFailed, d.name, err)
		}
	}

	// Issue each unit in increasing id order. The issuer's rejection is
	// fatal to the whole batch.
	firstTokenID := state.NextTokenID
	for i := uint64(0); i < count; i++ {
		tokenID := firstTokenID + i
		if err := e.issuer.Mint(ctx, caller, tokenID); err != nil {
			return nil, fmt.Errorf("failed to issue token %d: %w", tokenID, err)
		}
	}

	result, err := e.store.ApplyMintBatch(ctx, store.MintBatchInput{
		SetID:        setID,
		FirstTokenID: firstTokenID,
		Count:        count,
		Recipient:    caller.Hex(),
		AtBlock:      atBlock,
	})
	if err != nil {
		return nil, err
	}

	for i := uint64(0); i < count; i++ {
		tokenID := firstTokenID + i
		event := e.newEvent(domain.EventTypeCollectibleMinted, atBlock)
		event.SetID = setID
		event.TokenID = &tokenID
		event.Recipient = caller.Hex()
		e.publish(ctx, event)
	}

	batchEvent := e.newEvent(domain.EventTypeBatchMinted, atBlock)
	batchEvent.SetID = setID
	batchEvent.FirstTokenID = &firstTokenID
	batchEvent.Count = count
	batchEvent.Recipient = caller.Hex()
	e.publish(ctx, batchEvent)

	snapshotEvent := e.newEvent(domain.EventTypeSnapshotRecorded, atBlock)
	snapshotEvent.SetID = setID
	snapshotEvent.SnapshotSeq = result.SnapshotSeq
	e.publish(ctx, snapshotEvent)

	logger.InfoCtx(ctx, "mint batch completed",
		zap.Uint64("set_id", setID),
		zap.Uint64("first_token_id", firstTokenID),
		zap.Uint64("count", count),
		zap.String("total_price_wei", totalPrice.String()),
		zap.Uint64("snapshot_seq", result.SnapshotSeq))

	return &domain.MintReceipt{
		SetID:         setID,
		FirstTokenID:  firstTokenID,
		Count:         count,
		TotalPriceWei: totalPrice,
		SnapshotSeq:   result.SnapshotSeq,
		AtBlock:       atBlock,
	}, nil
}

// Sweep transfers amountWei from the system balance to one of the
// immutable payout identities. It carries the same in-flight guard and
// serialization discipline as minting and checks the available balance
// before transferring.
func (e *Engine) Sweep(ctx context.Context, destination SweepDestination, amountWei *big.Int) error {
	if err := e.enterGuarded(); err != nil {
		return err
	}
	defer e.exitGuarded()

	e.mu.Lock()
	defer e.mu.Unlock()

	if amountWei == nil || amountWei.Sign() <= 0 {
		return domain.ErrZeroAmount
	}

	to, err := e.sweepAddress(destination)
	if err != nil {
		return err
	}

	atBlock, err := e.heads.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get block height: %w", err)
	}

	balance, err := e.payouts.Balance(ctx)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}
	if amountWei.Cmp(balance) > 0 {
		return domain.ErrInsufficientBalance
	}

	if err := e.payouts.Send(ctx, to, amountWei); err != nil {
		return fmt.Errorf("%w: sweep to %s: %s", domain.ErrTransferFailed, destination, err)
	}

	event := e.newEvent(domain.EventTypeSwept, atBlock)
	event.Destination = to.Hex()
	event.AmountWei = amountWei.String()
	e.publish(ctx, event)

	logger.InfoCtx(ctx, "sweep completed",
		zap.String("destination", string(destination)),
		zap.String("amount_wei", amountWei.String()))

	return nil
}

func (e *Engine) sweepAddress(destination SweepDestination) (common.Address, error) {
	switch destination {
	case SweepToTreasury:
		return e.identities.Treasury, nil
	case SweepToVault:
		return e.identities.Vault, nil
	case SweepToLaunchpad:
		return e.identities.Launchpad, nil
	default:
		return common.Address{}, fmt.Errorf("unknown sweep destination: %s", destination)
	}
}
