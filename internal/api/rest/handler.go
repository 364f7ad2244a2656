package rest

import (
	"context"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/pokebro/launchpad/internal/domain"
	"github.com/pokebro/launchpad/internal/ledger"
	"github.com/pokebro/launchpad/internal/store"
	"github.com/pokebro/launchpad/internal/store/schema"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Ledger is the subset of the mint engine the REST surface drives.
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	MintFromSet(ctx context.Context, setID uint64, count uint64, paidWei *big.Int, caller common.Address) (*domain.MintReceipt, error)
	Sweep(ctx context.Context, destination ledger.SweepDestination, amountWei *big.Int) error
	CreateSets(ctx context.Context, params []ledger.SetParams) ([]schema.Set, error)
	SetPrice(ctx context.Context, setID uint64, priceWei string) error
	SetCreator(ctx context.Context, setID uint64, creator string) error
	SetNameHash(ctx context.Context, setID uint64, nameHash string) error
	SetMaxPerSet(ctx context.Context, setID uint64, maxPerSet uint64) error
	OpenSale(ctx context.Context, setID uint64) error
	CloseSale(ctx context.Context, setID uint64) error
	SetFeeBps(ctx context.Context, feeBps uint32) error
	Pause(ctx context.Context) error
	Unpause(ctx context.Context) error
	LinkNFTContract(ctx context.Context, address string) error
}

// Handler defines the interface for REST API handlers
type Handler interface {
	// Mint mints a batch of collectibles from a set
	// POST /api/v1/mint
	Mint(c *gin.Context)

	// CreateSets creates one or more sets (requires authentication)
	// POST /api/v1/sets
	CreateSets(c *gin.Context)

	// UpdateSet applies a partial configuration update to a set (requires authentication)
	// PATCH /api/v1/sets/:id
	UpdateSet(c *gin.Context)

	// OpenSale opens a set's sale (requires authentication)
	// POST /api/v1/sets/:id/sale/open
	OpenSale(c *gin.Context)

	// CloseSale closes a set's sale (requires authentication)
	// POST /api/v1/sets/:id/sale/close
	CloseSale(c *gin.Context)

	// SetFee updates the platform fee rate (requires authentication)
	// PUT /api/v1/ledger/fee
	SetFee(c *gin.Context)

	// Pause engages the global kill-switch (requires authentication)
	// POST /api/v1/ledger/pause
	Pause(c *gin.Context)

	// Unpause releases the global kill-switch (requires authentication)
	// POST /api/v1/ledger/unpause
	Unpause(c *gin.Context)

	// LinkContract records the NFT contract address (requires authentication)
	// PUT /api/v1/ledger/contract
	LinkContract(c *gin.Context)

	// Sweep transfers accumulated balance to a payout identity (requires authentication)
	// POST /api/v1/sweep
	Sweep(c *gin.Context)

	// GetLedgerState retrieves the global counters and flags
	// GET /api/v1/ledger
	GetLedgerState(c *gin.Context)

	// ListSets retrieves sets with pagination
	// GET /api/v1/sets?limit=<limit>&offset=<offset>
	ListSets(c *gin.Context)

	// GetSet retrieves a single set by its identifier
	// GET /api/v1/sets/:id
	GetSet(c *gin.Context)

	// ListSetSnapshots retrieves a set's snapshots in insertion order
	// GET /api/v1/sets/:id/snapshots?limit=<limit>&offset=<offset>
	ListSetSnapshots(c *gin.Context)

	// GetCollectible retrieves the provenance record for a token id
	// GET /api/v1/collectibles/:token_id
	GetCollectible(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	engine Ledger
	store  store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(engine Ledger, s store.Store) Handler {
	return &handler{
		engine: engine,
		store:  s,
	}
}

// Mint mints a batch of collectibles from a set
func (h *handler) Mint(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if !common.IsHexAddress(req.Recipient) {
		respondBadRequest(c, "Invalid recipient address")
		return
	}
	recipient := common.HexToAddress(req.Recipient)
	if domain.IsZeroAddress(recipient) {
		respondBadRequest(c, "Recipient must not be the zero address")
		return
	}

	paidWei, ok := new(big.Int).SetString(req.PaidWei, 10)
	if !ok || paidWei.Sign() < 0 {
		respondBadRequest(c, "Invalid paid_wei amount")
		return
	}

	receipt, err := h.engine.MintFromSet(c.Request.Context(), req.SetID, req.Count, paidWei, recipient)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMintResponse(receipt))
}

// CreateSets creates one or more sets
func (h *handler) CreateSets(c *gin.Context) {
	var req CreateSetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	n := len(req.NameHashes)
	if len(req.MaxPerSet) != n || len(req.PricesWei) != n || len(req.Creators) != n {
		respondDomainError(c, domain.ErrArrayLengthMismatch)
		return
	}

	params := make([]ledger.SetParams, 0, n)
	for i := 0; i < n; i++ {
		if !common.IsHexAddress(req.Creators[i]) {
			respondBadRequest(c, "Invalid creator address", req.Creators[i])
			return
		}
		price, ok := new(big.Int).SetString(req.PricesWei[i], 10)
		if !ok || price.Sign() < 0 {
			respondBadRequest(c, "Invalid price", req.PricesWei[i])
			return
		}
		params = append(params, ledger.SetParams{
			NameHash:  common.HexToHash(req.NameHashes[i]),
			MaxPerSet: req.MaxPerSet[i],
			PriceWei:  price,
			Creator:   common.HexToAddress(req.Creators[i]),
		})
	}

	sets, err := h.engine.CreateSets(c.Request.Context(), params)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	out := make([]SetResponse, 0, len(sets))
	for i := range sets {
		out = append(out, toSetResponse(&sets[i]))
	}
	c.JSON(http.StatusCreated, gin.H{"sets": out})
}

// UpdateSet applies a partial configuration update to a set
func (h *handler) UpdateSet(c *gin.Context) {
	setID, ok := parseSetID(c)
	if !ok {
		return
	}

	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if req.NameHash == nil && req.MaxPerSet == nil && req.PriceWei == nil && req.Creator == nil {
		respondBadRequest(c, "No fields to update")
		return
	}

	ctx := c.Request.Context()

	if req.MaxPerSet != nil {
		if err := h.engine.SetMaxPerSet(ctx, setID, *req.MaxPerSet); err != nil {
			respondDomainError(c, err)
			return
		}
	}
	if req.PriceWei != nil {
		price, ok := new(big.Int).SetString(*req.PriceWei, 10)
		if !ok || price.Sign() < 0 {
			respondBadRequest(c, "Invalid price", *req.PriceWei)
			return
		}
		if err := h.engine.SetPrice(ctx, setID, price.String()); err != nil {
			respondDomainError(c, err)
			return
		}
	}
	if req.Creator != nil {
		if !common.IsHexAddress(*req.Creator) || domain.IsZeroAddress(common.HexToAddress(*req.Creator)) {
			respondDomainError(c, domain.ErrZeroAddress)
			return
		}
		if err := h.engine.SetCreator(ctx, setID, common.HexToAddress(*req.Creator).Hex()); err != nil {
			respondDomainError(c, err)
			return
		}
	}
	if req.NameHash != nil {
		if err := h.engine.SetNameHash(ctx, setID, common.HexToHash(*req.NameHash).Hex()); err != nil {
			respondDomainError(c, err)
			return
		}
	}

	set, err := h.store.GetSet(ctx, setID)
	if err != nil {
		respondInternalError(c, err, "Failed to load set")
		return
	}
	if set == nil {
		respondNotFound(c, "Set not found")
		return
	}

	c.JSON(http.StatusOK, toSetResponse(set))
}

// OpenSale opens a set's sale
func (h *handler) OpenSale(c *gin.Context) {
	h.toggleSale(c, true)
}

// CloseSale closes a set's sale
func (h *handler) CloseSale(c *gin.Context) {
	h.toggleSale(c, false)
}

func (h *handler) toggleSale(c *gin.Context, open bool) {
	setID, ok := parseSetID(c)
	if !ok {
		return
	}

	var err error
	if open {
		err = h.engine.OpenSale(c.Request.Context(), setID)
	} else {
		err = h.engine.CloseSale(c.Request.Context(), setID)
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"set_id": setID, "sale_open": open})
}

// SetFee updates the platform fee rate
func (h *handler) SetFee(c *gin.Context) {
	var req SetFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.engine.SetFeeBps(c.Request.Context(), req.FeeBps); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fee_bps": req.FeeBps})
}

// Pause engages the global kill-switch
func (h *handler) Pause(c *gin.Context) {
	if err := h.engine.Pause(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": true})
}

// Unpause releases the global kill-switch
func (h *handler) Unpause(c *gin.Context) {
	if err := h.engine.Unpause(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": false})
}

// LinkContract records the NFT contract address
func (h *handler) LinkContract(c *gin.Context) {
	var req LinkContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.engine.LinkNFTContract(c.Request.Context(), req.Address); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": common.HexToAddress(req.Address).Hex()})
}

// Sweep transfers accumulated balance to a payout identity
func (h *handler) Sweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var destination ledger.SweepDestination
	switch req.Destination {
	case string(ledger.SweepToTreasury):
		destination = ledger.SweepToTreasury
	case string(ledger.SweepToVault):
		destination = ledger.SweepToVault
	case string(ledger.SweepToLaunchpad):
		destination = ledger.SweepToLaunchpad
	default:
		respondBadRequest(c, "Invalid sweep destination", req.Destination)
		return
	}

	amount, ok := new(big.Int).SetString(req.AmountWei, 10)
	if !ok {
		respondBadRequest(c, "Invalid amount_wei")
		return
	}

	if err := h.engine.Sweep(c.Request.Context(), destination, amount); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"destination": req.Destination, "amount_wei": req.AmountWei})
}

// GetLedgerState retrieves the global counters and flags
func (h *handler) GetLedgerState(c *gin.Context) {
	state, err := h.store.GetLedgerState(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to load ledger state")
		return
	}

	c.JSON(http.StatusOK, toLedgerStateResponse(state))
}

// ListSets retrieves sets with pagination
func (h *handler) ListSets(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	sets, total, err := h.store.ListSets(c.Request.Context(), limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list sets")
		return
	}

	out := make([]SetResponse, 0, len(sets))
	for i := range sets {
		out = append(out, toSetResponse(&sets[i]))
	}

	c.JSON(http.StatusOK, SetListResponse{
		Sets: out,
		Meta: ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// GetSet retrieves a single set by its identifier
func (h *handler) GetSet(c *gin.Context) {
	setID, ok := parseSetID(c)
	if !ok {
		return
	}

	set, err := h.store.GetSet(c.Request.Context(), setID)
	if err != nil {
		respondInternalError(c, err, "Failed to load set")
		return
	}
	if set == nil {
		respondNotFound(c, "Set not found")
		return
	}

	c.JSON(http.StatusOK, toSetResponse(set))
}

// ListSetSnapshots retrieves a set's snapshots in insertion order
func (h *handler) ListSetSnapshots(c *gin.Context) {
	setID, ok := parseSetID(c)
	if !ok {
		return
	}
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	set, err := h.store.GetSet(c.Request.Context(), setID)
	if err != nil {
		respondInternalError(c, err, "Failed to load set")
		return
	}
	if set == nil {
		respondNotFound(c, "Set not found")
		return
	}

	snapshots, total, err := h.store.ListSetSnapshots(c.Request.Context(), setID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list snapshots")
		return
	}

	out := make([]SnapshotResponse, 0, len(snapshots))
	for i := range snapshots {
		out = append(out, toSnapshotResponse(&snapshots[i]))
	}

	c.JSON(http.StatusOK, SnapshotListResponse{
		Snapshots: out,
		Meta:      ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// GetCollectible retrieves the provenance record for a token id
func (h *handler) GetCollectible(c *gin.Context) {
	tokenID, err := strconv.ParseUint(c.Param("token_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid token id")
		return
	}

	collectible, err := h.store.GetCollectible(c.Request.Context(), tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to load collectible")
		return
	}
	if collectible == nil {
		respondNotFound(c, "Collectible not found")
		return
	}

	c.JSON(http.StatusOK, toCollectibleResponse(collectible))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseSetID(c *gin.Context) (uint64, bool) {
	setID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || setID == 0 {
		respondBadRequest(c, "Invalid set id")
		return 0, false
	}
	return setID, true
}

func parsePagination(c *gin.Context) (int, uint64, bool) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondValidationError(c, "limit must be a positive integer")
			return 0, 0, false
		}
		if parsed > maxListLimit {
			parsed = maxListLimit
		}
		limit = parsed
	}

	var offset uint64
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondValidationError(c, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = parsed
	}

	return limit, offset, true
}
