package domain

import "errors"

// Input validation errors. Safe to retry with corrected input.
var (
	// ErrZeroMint is returned when a mint is requested with count == 0
	ErrZeroMint = errors.New("mint count is zero")

	// ErrBatchTooLarge is returned when a mint batch exceeds MaxMintPerTx
	ErrBatchTooLarge = errors.New("mint batch too large")

	// ErrZeroAddress is returned when a zero address is supplied where a real one is required
	ErrZeroAddress = errors.New("zero address")

	// ErrZeroAmount is returned when a zero amount is supplied where a positive one is required
	ErrZeroAmount = errors.New("zero amount")

	// ErrArrayLengthMismatch is returned when batched arguments have different lengths
	ErrArrayLengthMismatch = errors.New("array length mismatch")

	// ErrInvalidFee is returned when a fee rate is outside [0, MaxFeeBps]
	ErrInvalidFee = errors.New("fee exceeds maximum basis points")
)

// State-conflict errors. The caller must re-check state before retrying.
var (
	// ErrPokeBroNotSet is returned when minting is attempted before the NFT contract is linked
	ErrPokeBroNotSet = errors.New("pokebro contract not set")

	// ErrSetNotFound is returned when a set identifier is outside [1, setCounter]
	ErrSetNotFound = errors.New("set not found")

	// ErrSaleNotOpen is returned when minting from a set whose sale is closed
	ErrSaleNotOpen = errors.New("sale not open")

	// ErrSaleAlreadyOpen is returned when opening a sale that is already open
	ErrSaleAlreadyOpen = errors.New("sale already open")

	// ErrSaleAlreadyClosed is returned when closing a sale that is already closed
	ErrSaleAlreadyClosed = errors.New("sale already closed")

	// ErrMaxSetsReached is returned when set creation would exceed MaxSets
	ErrMaxSetsReached = errors.New("maximum number of sets reached")

	// ErrMaxBelowMinted is returned when a set cap would be lowered below its minted count
	ErrMaxBelowMinted = errors.New("max per set below minted count")
)

// Capacity errors. Permanent for the given request.
var (
	// ErrExceedsSetSupply is returned when a batch would exceed the set's cap
	ErrExceedsSetSupply = errors.New("exceeds set supply")

	// ErrExceedsGlobalSupply is returned when a batch would exceed PokeBroCap
	ErrExceedsGlobalSupply = errors.New("exceeds global supply")
)

// Payment errors.
var (
	// ErrInsufficientPayment is returned when paidWei is below priceWei*count
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrTransferFailed is returned when a payout transfer fails; the whole batch aborts
	ErrTransferFailed = errors.New("transfer failed")

	// ErrInsufficientBalance is returned when a sweep exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Lifecycle and concurrency errors.
var (
	// ErrPlatformPaused is returned when minting is attempted while the platform is paused
	ErrPlatformPaused = errors.New("platform paused")

	// ErrAlreadyPaused is returned when pausing an already paused platform
	ErrAlreadyPaused = errors.New("already paused")

	// ErrNotPaused is returned when unpausing a platform that is not paused
	ErrNotPaused = errors.New("not paused")

	// ErrReentrantCall is returned when a mint or sweep is entered while another is in flight
	ErrReentrantCall = errors.New("reentrant call")
)
