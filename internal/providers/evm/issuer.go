package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/pokebro/launchpad/internal/adapter"
	"github.com/pokebro/launchpad/internal/ledger"
)

const issuerABIJSON = `[
	{"inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"mint","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// ContractSource resolves the currently linked NFT contract address.
// The link can change at runtime, so the issuer resolves it per call.
type ContractSource func(ctx context.Context) (common.Address, error)

type issuer struct {
	contract ContractSource
	abi      abi.ABI
	sender   *txSender
	client   adapter.EthClient
}

// NewIssuer creates a ledger.TokenIssuer backed by the linked NFT
// contract. Mint transactions are signed with the operator key.
func NewIssuer(client adapter.EthClient, contract ContractSource, operatorKeyHex string, chainID int64) (ledger.TokenIssuer, error) {
	parsed, err := abi.JSON(strings.NewReader(issuerABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	sender, err := newTxSender(client, operatorKeyHex, chainID)
	if err != nil {
		return nil, err
	}

	return &issuer{
		contract: contract,
		abi:      parsed,
		sender:   sender,
		client:   client,
	}, nil
}

// Mint issues the token with the given id to the recipient
func (i *issuer) Mint(ctx context.Context, recipient common.Address, tokenID uint64) error {
	contract, err := i.contract(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve contract address: %w", err)
	}

	data, err := i.abi.Pack("mint", recipient, new(big.Int).SetUint64(tokenID))
	if err != nil {
		return fmt.Errorf("failed to pack mint call: %w", err)
	}

	if err := i.sender.send(ctx, contract, nil, data); err != nil {
		return fmt.Errorf("mint transaction failed: %w", err)
	}

	return nil
}

// TotalSupply returns the contract's reported supply
func (i *issuer) TotalSupply(ctx context.Context) (*big.Int, error) {
	contract, err := i.contract(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contract address: %w", err)
	}

	data, err := i.abi.Pack("totalSupply")
	if err != nil {
		return nil, fmt.Errorf("failed to pack totalSupply call: %w", err)
	}

	result, err := i.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	var supply *big.Int
	if err := i.abi.UnpackIntoInterface(&supply, "totalSupply", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return supply, nil
}
