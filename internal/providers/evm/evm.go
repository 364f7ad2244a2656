// Package evm implements the on-chain collaborators over an Ethereum
// JSON-RPC endpoint: the token issuer, the payout sender, and the head
// fetcher.
package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/logger"
)

// txSender signs and broadcasts transactions from the operator account
// and waits for inclusion.
type txSender struct {
	client  adapter.EthClient
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

func newTxSender(client adapter.EthClient, operatorKeyHex string, chainID int64) (*txSender, error) {
	key, err := crypto.HexToECDSA(operatorKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse operator key: %w", err)
	}

	return &txSender{
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(chainID),
	}, nil
}

// send builds, signs, and broadcasts a transaction, then waits for a
// successful receipt.
func (s *txSender) send(ctx context.Context, to common.Address, value *big.Int, data []byte) error {
	nonce, err := s.client.PendingNonceAt(ctx, s.from)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := s.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  s.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.DebugCtx(ctx, "transaction broadcast", zap.String("tx_hash", signed.Hash().Hex()))

	return s.waitMined(ctx, signed.Hash())
}

// waitMined polls for the receipt with exponential backoff until the
// transaction is included or ctx expires.
func (s *txSender) waitMined(ctx context.Context, txHash common.Hash) error {
	operation := func() error {
		receipt, err := s.client.TransactionReceipt(ctx, txHash)
		if err != nil {
			return fmt.Errorf("receipt not available: %w", err)
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			return backoff.Permanent(fmt.Errorf("transaction %s reverted", txHash.Hex()))
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
}
