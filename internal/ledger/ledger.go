// Package ledger implements the mint accounting core: the sale-gated,
// supply-capped mint engine, the three-way payment split, the append-only
// snapshot trail, and the operator-facing configuration surface.
package ledger

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/block"
	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/logger"
	"github.com/pokebro/launchpad/internal/messaging"
	"github.com/pokebro/launchpad/internal/store"
)

// TokenIssuer is the capability interface for the external NFT contract.
// Mint must assign exactly the requested token id to the recipient and
// fail if the id is already assigned or the recipient is invalid.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=TokenIssuer=MockTokenIssuer,PayoutSender=MockPayoutSender
type TokenIssuer interface {
	// Mint issues the token with the given id to the recipient
	Mint(ctx context.Context, recipient common.Address, tokenID uint64) error
	// TotalSupply returns the issuer's reported supply (advisory only)
	TotalSupply(ctx context.Context) (*big.Int, error)
}

// PayoutSender moves native currency out of the system balance.
type PayoutSender interface {
	// Send transfers amountWei to the given address
	Send(ctx context.Context, to common.Address, amountWei *big.Int) error
	// Balance returns the system's available balance
	Balance(ctx context.Context) (*big.Int, error)
}

// SweepDestination names one of the immutable payout identities.
type SweepDestination string

const (
	SweepToTreasury  SweepDestination = "treasury"
	SweepToVault     SweepDestination = "vault"
	SweepToLaunchpad SweepDestination = "launchpad"
)

// SetParams holds the configuration of a set to create.
type SetParams struct {
	NameHash  common.Hash
	MaxPerSet uint64
	PriceWei  *big.Int
	Creator   common.Address
}

// Engine is the ledger state machine. All state-mutating operations are
// serialized behind a single mutex; mint and sweep additionally carry a
// process-global in-flight guard so an overlapping entry is rejected
// rather than queued.
type Engine struct {
	store      store.Store
	issuer     TokenIssuer
	payouts    PayoutSender
	publisher  messaging.Publisher
	heads      block.HeadProvider
	clock      adapter.Clock
	identities domain.PayoutIdentities

	mu       sync.Mutex
	inFlight atomic.Bool
}

// NewEngine creates the ledger engine. The payout identities are fixed
// for the lifetime of the engine.
func NewEngine(
	s store.Store,
	issuer TokenIssuer,
	payouts PayoutSender,
	publisher messaging.Publisher,
	heads block.HeadProvider,
	clock adapter.Clock,
	identities domain.PayoutIdentities,
) *Engine {
	return &Engine{
		store:      s,
		issuer:     issuer,
		payouts:    payouts,
		publisher:  publisher,
		heads:      heads,
		clock:      clock,
		identities: identities,
	}
}

// enterGuarded acquires the in-flight guard for mint and sweep.
// Returns domain.ErrReentrantCall when another mint or sweep is in flight.
func (e *Engine) enterGuarded() error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return domain.ErrReentrantCall
	}
	return nil
}

// exitGuarded releases the in-flight guard. Must run on every exit path.
func (e *Engine) exitGuarded() {
	e.inFlight.Store(false)
}

// newEvent builds a ledger event stamped with a fresh ULID, the current
// time, and the given block height.
func (e *Engine) newEvent(eventType domain.EventType, atBlock uint64) *domain.LedgerEvent {
	return &domain.LedgerEvent{
		ID:        ulid.Make().String(),
		Type:      eventType,
		AtBlock:   atBlock,
		Timestamp: e.clock.Now(),
	}
}

// publish emits an event to the stream. State is already committed when
// events go out, so a publish failure is logged rather than surfaced.
func (e *Engine) publish(ctx context.Context, event *domain.LedgerEvent) {
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish ledger event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}
