package evm

import (
	"context"
	"fmt"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/block"
)

type headFetcher struct {
	client adapter.EthClient
}

// NewHeadFetcher creates a block.HeadFetcher over an Ethereum client
func NewHeadFetcher(client adapter.EthClient) block.HeadFetcher {
	return &headFetcher{client: client}
}

// FetchHead fetches the latest block height from the chain
func (f *headFetcher) FetchHead(ctx context.Context) (uint64, error) {
	header, err := f.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest header: %w", err)
	}
	return header.Number.Uint64(), nil
}
