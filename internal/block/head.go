// Package block provides cached access to the chain head height.
package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/logger"
)

// headInfo represents a cached head observation
type headInfo struct {
	Height     uint64
	ObservedAt time.Time
}

// HeadProvider reports the current block height, potentially from cache.
// Every ledger mutation is stamped with this height.
//
//go:generate mockgen -source=head.go -destination=../mocks/head_provider.go -package=mocks -mock_names=HeadProvider=MockHeadProvider,HeadFetcher=MockHeadFetcher
type HeadProvider interface {
	// CurrentHeight returns the latest block height, potentially from cache
	CurrentHeight(ctx context.Context) (uint64, error)
}

// HeadFetcher is the interface for fetching the head height from the chain
type HeadFetcher interface {
	// FetchHead fetches the latest block height from the chain
	FetchHead(ctx context.Context) (uint64, error)
}

// Config holds configuration for the HeadProvider
type Config struct {
	// TTL is how long to cache the head height
	TTL time.Duration

	// StaleWindow is how long to use stale data if fetching fails.
	// If the cached data is older than this and fetch fails, return error.
	StaleWindow time.Duration
}

// headProvider implements HeadProvider with TTL-based caching.
// It reduces RPC calls to the node by caching the head height for a
// configurable TTL period.
type headProvider struct {
	fetcher HeadFetcher
	config  Config
	clock   adapter.Clock

	mu   sync.RWMutex
	head *headInfo
}

// NewHeadProvider creates a new HeadProvider with caching
func NewHeadProvider(fetcher HeadFetcher, config Config, clock adapter.Clock) HeadProvider {
	return &headProvider{
		fetcher: fetcher,
		config:  config,
		clock:   clock,
	}
}

// CurrentHeight returns the latest block height, using cache if valid
func (p *headProvider) CurrentHeight(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()

	// If cache is valid (within TTL), return cached value
	if cached != nil && now.Sub(cached.ObservedAt) < p.config.TTL {
		logger.DebugCtx(ctx, "Using cached head height", zap.Uint64("height", cached.Height))
		return cached.Height, nil
	}

	// Cache expired or doesn't exist, fetch fresh data
	logger.DebugCtx(ctx, "Fetching head height from node")
	height, err := p.fetcher.FetchHead(ctx)
	if err != nil {
		// If fetch failed, check if we can use stale cache
		if cached != nil && now.Sub(cached.ObservedAt) < p.config.StaleWindow {
			logger.DebugCtx(ctx, "Using stale head height", zap.Uint64("height", cached.Height))
			return cached.Height, nil
		}
		return 0, fmt.Errorf("failed to fetch head height and no valid cache available: %w", err)
	}

	p.mu.Lock()
	p.head = &headInfo{
		Height:     height,
		ObservedAt: now,
	}
	p.mu.Unlock()

	return height, nil
}
