package evm_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokebro/launchpad/internal/logger"
	"github.com/pokebro/launchpad/internal/mocks"
	"github.com/pokebro/launchpad/internal/providers/evm"
)

// Well-known throwaway key; never funded on any real network.
const testOperatorKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const testChainID = int64(31337)

var testNFTContract = common.HexToAddress("0x1111111111111111111111111111111111111111")

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func operatorAddress(t *testing.T) common.Address {
	t.Helper()
	key, err := crypto.HexToECDSA(testOperatorKey)
	require.NoError(t, err)
	return crypto.PubkeyToAddress(key.PublicKey)
}

func staticContract(addr common.Address) evm.ContractSource {
	return func(ctx context.Context) (common.Address, error) {
		return addr, nil
	}
}

// expectTransaction wires the happy-path RPC sequence for one broadcast
// and captures the signed transaction.
func expectTransaction(client *mocks.MockEthClient, captured **types.Transaction) {
	client.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
	client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(60_000), nil)
	client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx *types.Transaction) error {
			*captured = tx
			return nil
		})
	client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(
		&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
}

func TestNewIssuer_InvalidOperatorKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockEthClient(ctrl)

	_, err := evm.NewIssuer(client, staticContract(testNFTContract), "zz", testChainID)
	assert.Error(t, err)
}

func TestIssuerMint(t *testing.T) {
	t.Run("broadcasts a mint call to the linked contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		issuer, err := evm.NewIssuer(client, staticContract(testNFTContract), testOperatorKey, testChainID)
		require.NoError(t, err)

		var tx *types.Transaction
		expectTransaction(client, &tx)

		recipient := common.HexToAddress("0x6666666666666666666666666666666666666666")
		require.NoError(t, issuer.Mint(context.Background(), recipient, 42))

		require.NotNil(t, tx)
		assert.Equal(t, testNFTContract, *tx.To())
		assert.Equal(t, uint64(7), tx.Nonce())
		// mint(address,uint256) selector plus two words
		require.Len(t, tx.Data(), 4+32+32)
		assert.Equal(t, recipient.Bytes(), tx.Data()[4+12:4+32])
		assert.Equal(t, big.NewInt(42), new(big.Int).SetBytes(tx.Data()[4+32:]))
	})

	t.Run("reverted transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		issuer, err := evm.NewIssuer(client, staticContract(testNFTContract), testOperatorKey, testChainID)
		require.NoError(t, err)

		client.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(7), nil)
		client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
		client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(60_000), nil)
		client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
		client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(
			&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

		err = issuer.Mint(context.Background(), common.HexToAddress("0x66"), 42)
		assert.ErrorContains(t, err, "reverted")
	})

	t.Run("contract resolution failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		source := func(ctx context.Context) (common.Address, error) {
			return common.Address{}, errors.New("state unavailable")
		}
		issuer, err := evm.NewIssuer(client, source, testOperatorKey, testChainID)
		require.NoError(t, err)

		err = issuer.Mint(context.Background(), common.HexToAddress("0x66"), 42)
		assert.Error(t, err)
	})
}

func TestPayoutSender(t *testing.T) {
	t.Run("send transfers value with no calldata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		payouts, err := evm.NewPayoutSender(client, testOperatorKey, testChainID)
		require.NoError(t, err)

		var tx *types.Transaction
		expectTransaction(client, &tx)

		to := common.HexToAddress("0x2222222222222222222222222222222222222222")
		require.NoError(t, payouts.Send(context.Background(), to, big.NewInt(149)))

		require.NotNil(t, tx)
		assert.Equal(t, to, *tx.To())
		assert.Equal(t, big.NewInt(149), tx.Value())
		assert.Empty(t, tx.Data())
	})

	t.Run("broadcast failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		payouts, err := evm.NewPayoutSender(client, testOperatorKey, testChainID)
		require.NoError(t, err)

		client.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil)
		client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1), nil)
		client.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(21_000), nil)
		client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(errors.New("nonce too low"))

		err = payouts.Send(context.Background(), common.HexToAddress("0x22"), big.NewInt(1))
		assert.Error(t, err)
	})

	t.Run("balance reads the operator account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		payouts, err := evm.NewPayoutSender(client, testOperatorKey, testChainID)
		require.NoError(t, err)

		client.EXPECT().BalanceAt(gomock.Any(), operatorAddress(t), nil).Return(big.NewInt(5000), nil)

		balance, err := payouts.Balance(context.Background())
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(5000), balance)
	})
}

func TestHeadFetcher(t *testing.T) {
	t.Run("returns the latest height", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		fetcher := evm.NewHeadFetcher(client)

		client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(
			&types.Header{Number: big.NewInt(12345)}, nil)

		height, err := fetcher.FetchHead(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(12345), height)
	})

	t.Run("propagates rpc errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		client := mocks.NewMockEthClient(ctrl)

		fetcher := evm.NewHeadFetcher(client)

		client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(nil, errors.New("rpc down"))

		_, err := fetcher.FetchHead(context.Background())
		assert.Error(t, err)
	})
}
