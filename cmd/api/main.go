package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/api/middleware"
	"github.com/pokebro/launchpad/internal/api/server"
	"github.com/pokebro/launchpad/internal/block"
	"github.com/pokebro/launchpad/internal/config"
	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/ledger"
	"github.com/pokebro/launchpad/internal/logger"
	"github.com/pokebro/launchpad/internal/providers/evm"
	"github.com/pokebro/launchpad/internal/providers/jetstream"
	"github.com/pokebro/launchpad/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "launchpad-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting PokeBro Launchpad API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	// Seed the global counters on first startup
	if err := dataStore.EnsureLedgerState(ctx, cfg.Ledger.InitialFeeBps); err != nil {
		logger.FatalCtx(ctx, "Failed to seed ledger state", zap.Error(err))
	}

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Connect to the Ethereum node
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum node", zap.Error(err))
	}
	defer ethClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum node", zap.Int64("chain_id", cfg.Ethereum.ChainID))

	clock := adapter.NewClock()

	heads := block.NewHeadProvider(evm.NewHeadFetcher(ethClient), block.Config{
		TTL:         cfg.Ethereum.BlockHeadTTL,
		StaleWindow: cfg.Ethereum.BlockHeadStaleWindow,
	}, clock)

	// The issuer resolves the linked contract per call; an empty link is
	// tolerated here because the engine rejects mints until one is set.
	contractSource := func(ctx context.Context) (common.Address, error) {
		state, err := dataStore.GetLedgerState(ctx)
		if err != nil {
			return common.Address{}, err
		}
		return common.HexToAddress(state.NFTContract), nil
	}
	issuer, err := evm.NewIssuer(ethClient, contractSource, cfg.Ethereum.OperatorPrivateKey, cfg.Ethereum.ChainID)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create token issuer", zap.Error(err))
	}

	payouts, err := evm.NewPayoutSender(ethClient, cfg.Ethereum.OperatorPrivateKey, cfg.Ethereum.ChainID)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create payout sender", zap.Error(err))
	}

	engine := ledger.NewEngine(dataStore, issuer, payouts, publisher, heads, clock, domain.PayoutIdentities{
		Treasury:  common.HexToAddress(cfg.Ledger.TreasuryAddress),
		Vault:     common.HexToAddress(cfg.Ledger.VaultAddress),
		Launchpad: common.HexToAddress(cfg.Ledger.LaunchpadAddress),
	})

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	srv := server.New(serverConfig, engine, dataStore, middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
