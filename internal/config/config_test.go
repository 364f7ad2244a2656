package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokebro/launchpad/internal/config"
)

const (
	testTreasury  = "0x1111111111111111111111111111111111111111"
	testVault     = "0x2222222222222222222222222222222222222222"
	testLaunchpad = "0x3333333333333333333333333333333333333333"
)

func setPayoutEnv(t *testing.T) {
	t.Setenv("POKEBRO_LEDGER_TREASURY_ADDRESS", testTreasury)
	t.Setenv("POKEBRO_LEDGER_VAULT_ADDRESS", testVault)
	t.Setenv("POKEBRO_LEDGER_LAUNCHPAD_ADDRESS", testLaunchpad)
}

func TestLoadAPIConfig_Defaults(t *testing.T) {
	setPayoutEnv(t)

	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "LEDGER_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, int64(1), cfg.Ethereum.ChainID)
	assert.Equal(t, uint32(0), cfg.Ledger.InitialFeeBps)
}

func TestLoadAPIConfig_EnvOverrides(t *testing.T) {
	setPayoutEnv(t)
	t.Setenv("POKEBRO_SERVER_PORT", "9090")
	t.Setenv("POKEBRO_DATABASE_HOST", "db.internal")
	t.Setenv("POKEBRO_LEDGER_INITIAL_FEE_BPS", "85")

	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, uint32(85), cfg.Ledger.InitialFeeBps)
}

func TestLoadAPIConfig_MissingPayoutAddress(t *testing.T) {
	t.Setenv("POKEBRO_LEDGER_TREASURY_ADDRESS", testTreasury)
	t.Setenv("POKEBRO_LEDGER_VAULT_ADDRESS", testVault)
	t.Setenv("POKEBRO_LEDGER_LAUNCHPAD_ADDRESS", "")

	_, err := config.LoadAPIConfig("", t.TempDir())
	assert.ErrorContains(t, err, "ledger.launchpad_address is required")
}

func TestLoadAPIConfig_DuplicatePayoutAddresses(t *testing.T) {
	t.Setenv("POKEBRO_LEDGER_TREASURY_ADDRESS", testTreasury)
	t.Setenv("POKEBRO_LEDGER_VAULT_ADDRESS", testTreasury)
	t.Setenv("POKEBRO_LEDGER_LAUNCHPAD_ADDRESS", testLaunchpad)

	_, err := config.LoadAPIConfig("", t.TempDir())
	assert.ErrorContains(t, err, "must be distinct")
}

func TestLedgerConfig_Validate_ZeroAddress(t *testing.T) {
	cfg := config.LedgerConfig{
		TreasuryAddress:  "0x0000000000000000000000000000000000000000",
		VaultAddress:     testVault,
		LaunchpadAddress: testLaunchpad,
	}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "zero address")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "launchpad",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=launchpad sslmode=disable",
		cfg.DSN())
}
