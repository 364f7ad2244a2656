package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pokebro/launchpad/internal/domain"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	if err := Migrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

// resetTables clears all ledger tables so each test starts from a clean slate
func resetTables(t *testing.T) Store {
	t.Helper()
	err := testDB.Exec("TRUNCATE TABLE snapshots, collectibles, sets, ledger_values RESTART IDENTITY CASCADE").Error
	require.NoError(t, err)
	return NewPGStore(testDB)
}

func seedSet(t *testing.T, s Store, maxPerSet uint64, saleOpen bool) uint64 {
	t.Helper()
	ctx := context.Background()

	sets, err := s.CreateSets(ctx, []CreateSetInput{{
		NameHash:       "0x0000000000000000000000000000000000000000000000000000000000000abc",
		MaxPerSet:      maxPerSet,
		PriceWei:       "1000",
		Creator:        "0x5555555555555555555555555555555555555555",
		CreatedAtBlock: 100,
	}})
	require.NoError(t, err)
	require.Len(t, sets, 1)

	if saleOpen {
		require.NoError(t, s.SetSaleOpen(ctx, sets[0].ID, true))
	}
	return sets[0].ID
}

func TestEnsureLedgerState_Idempotent(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureLedgerState(ctx, 85))

	state, err := s.GetLedgerState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), state.NextTokenID)
	assert.Equal(t, uint32(85), state.FeeBps)
	assert.False(t, state.Paused)
	assert.Empty(t, state.NFTContract)

	// Mutate, then re-seed; existing values must survive
	require.NoError(t, s.SetFeeBps(ctx, 250))
	require.NoError(t, s.SetPaused(ctx, true))
	require.NoError(t, s.EnsureLedgerState(ctx, 85))

	state, err = s.GetLedgerState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(250), state.FeeBps)
	assert.True(t, state.Paused)
}

func TestLedgerStateRoundTrip(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureLedgerState(ctx, 0))
	require.NoError(t, s.SetFeeBps(ctx, 1000))
	require.NoError(t, s.SetNFTContract(ctx, "0x1111111111111111111111111111111111111111"))

	state, err := s.GetLedgerState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), state.FeeBps)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", state.NFTContract)
}

func TestCreateSets_AssignsSerialIdentifiers(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	first := seedSet(t, s, 10, false)
	second := seedSet(t, s, 20, false)
	assert.Equal(t, uint64(1), first)
	assert.Equal(t, uint64(2), second)

	count, err := s.CountSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	sets, total, err := s.ListSets(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, sets, 2)
	assert.Equal(t, uint64(1), sets[0].ID)
	assert.Equal(t, uint64(2), sets[1].ID)
}

func TestGetSet_NotFoundReturnsNil(t *testing.T) {
	s := resetTables(t)

	set, err := s.GetSet(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, set)
}

func TestUpdateSetConfig(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	setID := seedSet(t, s, 10, false)

	newPrice := "2000"
	newCreator := "0x6666666666666666666666666666666666666666"
	require.NoError(t, s.UpdateSetConfig(ctx, setID, SetConfigUpdate{
		PriceWei: &newPrice,
		Creator:  &newCreator,
	}))

	set, err := s.GetSet(ctx, setID)
	require.NoError(t, err)
	assert.Equal(t, "2000", set.PriceWei)
	assert.Equal(t, newCreator, set.Creator)
	// Untouched fields survive a partial update
	assert.Equal(t, uint64(10), set.MaxPerSet)

	err = s.UpdateSetConfig(ctx, 99, SetConfigUpdate{PriceWei: &newPrice})
	assert.ErrorIs(t, err, domain.ErrSetNotFound)
}

func TestSetSaleOpen_Transitions(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	setID := seedSet(t, s, 10, false)

	require.NoError(t, s.SetSaleOpen(ctx, setID, true))
	assert.ErrorIs(t, s.SetSaleOpen(ctx, setID, true), domain.ErrSaleAlreadyOpen)

	require.NoError(t, s.SetSaleOpen(ctx, setID, false))
	assert.ErrorIs(t, s.SetSaleOpen(ctx, setID, false), domain.ErrSaleAlreadyClosed)

	assert.ErrorIs(t, s.SetSaleOpen(ctx, 99, true), domain.ErrSetNotFound)
}

func TestApplyMintBatch(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureLedgerState(ctx, 85))
	setID := seedSet(t, s, 10, true)

	recipient := "0x7777777777777777777777777777777777777777"
	result, err := s.ApplyMintBatch(ctx, MintBatchInput{
		SetID:        setID,
		FirstTokenID: 0,
		Count:        3,
		Recipient:    recipient,
		AtBlock:      200,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result.SnapshotSeq)
	assert.Equal(t, uint64(3), result.MintedFromSet)

	// Global cursor advanced
	state, err := s.GetLedgerState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), state.NextTokenID)

	// Provenance rows, one per unit
	for tokenID := uint64(0); tokenID < 3; tokenID++ {
		c, err := s.GetCollectible(ctx, tokenID)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, setID, c.SetID)
		assert.Equal(t, recipient, c.Recipient)
		assert.Equal(t, uint64(200), c.MintedAtBlock)
	}

	// Exactly one snapshot with the cumulative count
	snap, err := s.GetSnapshot(ctx, result.SnapshotSeq)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, setID, snap.SetID)
	assert.Equal(t, uint64(3), snap.MintedFromSet)
	assert.Equal(t, uint64(200), snap.AtBlock)

	// A second batch continues the id range and appends a new snapshot
	result, err = s.ApplyMintBatch(ctx, MintBatchInput{
		SetID:        setID,
		FirstTokenID: 3,
		Count:        2,
		Recipient:    recipient,
		AtBlock:      201,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), result.SnapshotSeq)
	assert.Equal(t, uint64(5), result.MintedFromSet)
}

func TestApplyMintBatch_SetSupplyGuard(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureLedgerState(ctx, 85))
	setID := seedSet(t, s, 2, true)

	_, err := s.ApplyMintBatch(ctx, MintBatchInput{
		SetID:        setID,
		FirstTokenID: 0,
		Count:        3,
		Recipient:    "0x7777777777777777777777777777777777777777",
		AtBlock:      200,
	})
	assert.ErrorIs(t, err, domain.ErrExceedsSetSupply)

	// The aborted batch left nothing behind
	state, err := s.GetLedgerState(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), state.NextTokenID)

	set, err := s.GetSet(ctx, setID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), set.MintedFromSet)

	_, total, err := s.ListSetSnapshots(ctx, setID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)
}

func TestApplyMintBatch_StaleCursor(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureLedgerState(ctx, 85))
	setID := seedSet(t, s, 10, true)

	// FirstTokenID was reserved against a cursor that has since moved
	_, err := s.ApplyMintBatch(ctx, MintBatchInput{
		SetID:        setID,
		FirstTokenID: 5,
		Count:        1,
		Recipient:    "0x7777777777777777777777777777777777777777",
		AtBlock:      200,
	})
	require.Error(t, err)

	set, err := s.GetSet(ctx, setID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), set.MintedFromSet)
}

func TestListSetSnapshots_InsertionOrder(t *testing.T) {
	s := resetTables(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureLedgerState(ctx, 85))
	setID := seedSet(t, s, 100, true)
	otherID := seedSet(t, s, 100, true)

	recipient := "0x7777777777777777777777777777777777777777"
	next := uint64(0)
	mint := func(id uint64, count uint64, atBlock uint64) {
		_, err := s.ApplyMintBatch(ctx, MintBatchInput{
			SetID:        id,
			FirstTokenID: next,
			Count:        count,
			Recipient:    recipient,
			AtBlock:      atBlock,
		})
		require.NoError(t, err)
		next += count
	}

	mint(setID, 1, 200)
	mint(otherID, 4, 201)
	mint(setID, 2, 202)
	mint(setID, 3, 203)

	snapshots, total, err := s.ListSetSnapshots(ctx, setID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, snapshots, 3)

	// Per-set history in global sequence order with cumulative counts
	assert.Equal(t, uint64(1), snapshots[0].MintedFromSet)
	assert.Equal(t, uint64(3), snapshots[1].MintedFromSet)
	assert.Equal(t, uint64(6), snapshots[2].MintedFromSet)
	assert.Less(t, snapshots[0].Seq, snapshots[1].Seq)
	assert.Less(t, snapshots[1].Seq, snapshots[2].Seq)

	// Pagination walks the same order
	page, total, err := s.ListSetSnapshots(ctx, setID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, snapshots[1].Seq, page[0].Seq)
	assert.Equal(t, snapshots[2].Seq, page[1].Seq)
}

func TestGetSnapshot_NotFoundReturnsNil(t *testing.T) {
	s := resetTables(t)

	snap, err := s.GetSnapshot(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestGetCollectible_NotFoundReturnsNil(t *testing.T) {
	s := resetTables(t)

	c, err := s.GetCollectible(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, c)
}
