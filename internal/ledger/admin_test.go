package ledger_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/ledger"
	"github.com/pokebro/launchpad/internal/store"
	"github.com/pokebro/launchpad/internal/store/schema"
)

func validSetParams() ledger.SetParams {
	return ledger.SetParams{
		NameHash:  common.HexToHash("0xabc"),
		MaxPerSet: 100,
		PriceWei:  big.NewInt(500),
		Creator:   testCreator,
	}
}

func TestCreateSets_Success(t *testing.T) {
	engine, m, ctrl := setupEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	params := []ledger.SetParams{validSetParams(), validSetParams()}

	m.store.EXPECT().CountSets(ctx).Return(uint64(3), nil)
	m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
	m.store.EXPECT().CreateSets(ctx, []store.CreateSetInput{
		{
			NameHash:       common.HexToHash("0xabc").Hex(),
			MaxPerSet:      100,
			PriceWei:       "500",
			Creator:        testCreator.Hex(),
			CreatedAtBlock: 500,
		},
		{
			NameHash:       common.HexToHash("0xabc").Hex(),
			MaxPerSet:      100,
			PriceWei:       "500",
			Creator:        testCreator.Hex(),
			CreatedAtBlock: 500,
		},
	}).Return([]schema.Set{{ID: 4}, {ID: 5}}, nil)

	published := make([]*domain.LedgerEvent, 0, 2)
	m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.LedgerEvent) error {
			published = append(published, event)
			return nil
		}).Times(2)

	sets, err := engine.CreateSets(ctx, params)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, uint64(4), sets[0].ID)
	assert.Equal(t, uint64(5), sets[1].ID)

	require.Len(t, published, 2)
	assert.Equal(t, domain.EventTypeSetCreated, published[0].Type)
	assert.Equal(t, uint64(4), published[0].SetID)
	assert.Equal(t, uint64(5), published[1].SetID)
}

func TestCreateSets_Validation(t *testing.T) {
	zeroCreator := validSetParams()
	zeroCreator.Creator = common.Address{}

	nilPrice := validSetParams()
	nilPrice.PriceWei = nil

	negativePrice := validSetParams()
	negativePrice.PriceWei = big.NewInt(-1)

	oversized := make([]ledger.SetParams, domain.MaxCreateSetsPerBatch+1)
	for i := range oversized {
		oversized[i] = validSetParams()
	}

	tests := []struct {
		name    string
		params  []ledger.SetParams
		wantErr error
	}{
		{name: "batch too large", params: oversized, wantErr: domain.ErrBatchTooLarge},
		{name: "zero creator", params: []ledger.SetParams{zeroCreator}, wantErr: domain.ErrZeroAddress},
		{name: "nil price", params: []ledger.SetParams{nilPrice}, wantErr: domain.ErrZeroAmount},
		{name: "negative price", params: []ledger.SetParams{negativePrice}, wantErr: domain.ErrZeroAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _, ctrl := setupEngine(t)
			defer ctrl.Finish()

			_, err := engine.CreateSets(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateSets_EmptyBatch(t *testing.T) {
	engine, _, ctrl := setupEngine(t)
	defer ctrl.Finish()

	_, err := engine.CreateSets(context.Background(), nil)
	assert.Error(t, err)
}

func TestCreateSets_MaxSetsReached(t *testing.T) {
	engine, m, ctrl := setupEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// 63 existing sets plus a batch of 2 crosses the ceiling of 64
	m.store.EXPECT().CountSets(ctx).Return(uint64(domain.MaxSets-1), nil)

	_, err := engine.CreateSets(ctx, []ledger.SetParams{validSetParams(), validSetParams()})
	assert.ErrorIs(t, err, domain.ErrMaxSetsReached)
}

func TestSetMaxPerSet(t *testing.T) {
	tests := []struct {
		name      string
		set       *schema.Set
		maxPerSet uint64
		wantErr   error
	}{
		{name: "set missing", set: nil, maxPerSet: 10, wantErr: domain.ErrSetNotFound},
		{name: "below minted", set: openSet(1, "100", 50, 20), maxPerSet: 19, wantErr: domain.ErrMaxBelowMinted},
		{name: "down to minted", set: openSet(1, "100", 50, 20), maxPerSet: 20},
		{name: "raised", set: openSet(1, "100", 50, 20), maxPerSet: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, m, ctrl := setupEngine(t)
			defer ctrl.Finish()

			ctx := context.Background()
			m.store.EXPECT().GetSet(ctx, uint64(1)).Return(tt.set, nil)

			if tt.wantErr == nil {
				m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
				m.store.EXPECT().UpdateSetConfig(ctx, uint64(1), store.SetConfigUpdate{MaxPerSet: &tt.maxPerSet}).Return(nil)
				m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)
			}

			err := engine.SetMaxPerSet(ctx, 1, tt.maxPerSet)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetPrice(t *testing.T) {
	engine, m, ctrl := setupEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()
	price := "12000000000000000"

	m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
	m.store.EXPECT().UpdateSetConfig(ctx, uint64(7), store.SetConfigUpdate{PriceWei: &price}).Return(nil)
	m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, event *domain.LedgerEvent) error {
			assert.Equal(t, domain.EventTypeSetConfigUpdated, event.Type)
			assert.Equal(t, uint64(7), event.SetID)
			return nil
		})

	require.NoError(t, engine.SetPrice(ctx, 7, price))
}

func TestSetCreator_PropagatesStoreError(t *testing.T) {
	engine, m, ctrl := setupEngine(t)
	defer ctrl.Finish()

	ctx := context.Background()

	m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
	m.store.EXPECT().UpdateSetConfig(ctx, uint64(7), gomock.Any()).Return(domain.ErrSetNotFound)

	err := engine.SetCreator(ctx, 7, testCreator.Hex())
	assert.ErrorIs(t, err, domain.ErrSetNotFound)
}

func TestSaleGateToggles(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetSaleOpen(ctx, uint64(2), true).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, domain.EventTypeSaleOpened, event.Type)
				assert.Equal(t, uint64(2), event.SetID)
				return nil
			})

		require.NoError(t, engine.OpenSale(ctx, 2))
	})

	t.Run("close", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetSaleOpen(ctx, uint64(2), false).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, domain.EventTypeSaleClosed, event.Type)
				return nil
			})

		require.NoError(t, engine.CloseSale(ctx, 2))
	})

	t.Run("redundant open surfaces store error", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetSaleOpen(ctx, uint64(2), true).Return(domain.ErrSaleAlreadyOpen)

		assert.ErrorIs(t, engine.OpenSale(ctx, 2), domain.ErrSaleAlreadyOpen)
	})
}

func TestSetFeeBps(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetFeeBps(ctx, uint32(85)).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, domain.EventTypeFeeUpdated, event.Type)
				require.NotNil(t, event.FeeBps)
				assert.Equal(t, uint32(85), *event.FeeBps)
				return nil
			})

		require.NoError(t, engine.SetFeeBps(ctx, 85))
	})

	t.Run("at cap", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetFeeBps(ctx, uint32(domain.MaxFeeBps)).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)

		require.NoError(t, engine.SetFeeBps(ctx, domain.MaxFeeBps))
	})

	t.Run("above cap", func(t *testing.T) {
		engine, _, ctrl := setupEngine(t)
		defer ctrl.Finish()

		assert.ErrorIs(t, engine.SetFeeBps(context.Background(), domain.MaxFeeBps+1), domain.ErrInvalidFee)
	})
}

func TestPauseUnpause(t *testing.T) {
	t.Run("pause", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.store.EXPECT().GetLedgerState(ctx).Return(linkedState(0, 85), nil)
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetPaused(ctx, true).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, domain.EventTypePausedStateChanged, event.Type)
				require.NotNil(t, event.Paused)
				assert.True(t, *event.Paused)
				return nil
			})

		require.NoError(t, engine.Pause(ctx))
	})

	t.Run("pause while paused", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		paused := linkedState(0, 85)
		paused.Paused = true
		m.store.EXPECT().GetLedgerState(ctx).Return(paused, nil)

		assert.ErrorIs(t, engine.Pause(ctx), domain.ErrAlreadyPaused)
	})

	t.Run("unpause", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		paused := linkedState(0, 85)
		paused.Paused = true
		m.store.EXPECT().GetLedgerState(ctx).Return(paused, nil)
		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetPaused(ctx, false).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)

		require.NoError(t, engine.Unpause(ctx))
	})

	t.Run("unpause while running", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		m.store.EXPECT().GetLedgerState(ctx).Return(linkedState(0, 85), nil)

		assert.ErrorIs(t, engine.Unpause(ctx), domain.ErrNotPaused)
	})
}

func TestLinkNFTContract(t *testing.T) {
	t.Run("success normalizes the address", func(t *testing.T) {
		engine, m, ctrl := setupEngine(t)
		defer ctrl.Finish()

		ctx := context.Background()
		normalized := common.HexToAddress(testContract).Hex()

		m.heads.EXPECT().CurrentHeight(ctx).Return(uint64(500), nil)
		m.store.EXPECT().SetNFTContract(ctx, normalized).Return(nil)
		m.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, domain.EventTypeNFTContractLinked, event.Type)
				assert.Equal(t, normalized, event.Contract)
				return nil
			})

		require.NoError(t, engine.LinkNFTContract(ctx, testContract))
	})

	t.Run("zero address", func(t *testing.T) {
		engine, _, ctrl := setupEngine(t)
		defer ctrl.Finish()

		err := engine.LinkNFTContract(context.Background(), "0x0000000000000000000000000000000000000000")
		assert.ErrorIs(t, err, domain.ErrZeroAddress)
	})

	t.Run("malformed address", func(t *testing.T) {
		engine, _, ctrl := setupEngine(t)
		defer ctrl.Finish()

		err := engine.LinkNFTContract(context.Background(), "not-an-address")
		assert.ErrorIs(t, err, domain.ErrZeroAddress)
	})
}
