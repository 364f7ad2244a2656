package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/ledger"
)

type payoutSender struct {
	sender *txSender
	client adapter.EthClient
}

// NewPayoutSender creates a ledger.PayoutSender that moves native
// currency out of the operator account.
func NewPayoutSender(client adapter.EthClient, operatorKeyHex string, chainID int64) (ledger.PayoutSender, error) {
	sender, err := newTxSender(client, operatorKeyHex, chainID)
	if err != nil {
		return nil, err
	}

	return &payoutSender{
		sender: sender,
		client: client,
	}, nil
}

// Send transfers amountWei to the given address
func (p *payoutSender) Send(ctx context.Context, to common.Address, amountWei *big.Int) error {
	if err := p.sender.send(ctx, to, amountWei, nil); err != nil {
		return fmt.Errorf("payout transaction failed: %w", err)
	}
	return nil
}

// Balance returns the operator account's available balance
func (p *payoutSender) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := p.client.BalanceAt(ctx, p.sender.from, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}
