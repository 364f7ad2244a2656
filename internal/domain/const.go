package domain

const (
	// PokeBroCap is the global ceiling on token identifiers.
	// nextTokenID + count must never exceed it after any mint batch.
	PokeBroCap = 100_000

	// MaxMintPerTx bounds the number of units a single mint batch may request.
	MaxMintPerTx = 24

	// MaxSets is the hard ceiling on the number of sets ever created.
	MaxSets = 64

	// MaxCreateSetsPerBatch bounds the batched set-creation variant.
	MaxCreateSetsPerBatch = 24

	// BpsBase is the basis-point denominator (10000 = 100%).
	BpsBase = 10_000

	// MaxFeeBps is the upper bound for the platform fee (10%).
	MaxFeeBps = 1_000
)
