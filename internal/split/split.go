// Package split implements the three-way payment split applied to every
// mint batch: platform fee, set creator share, and launchpad share.
package split

import (
	"math/big"

	"github.com/pokebro/launchpad/internal/domain"
)

// Shares holds the result of splitting a total payment.
// Fee + Creator + Launchpad always equals the input total exactly.
type Shares struct {
	Fee       *big.Int
	Creator   *big.Int
	Launchpad *big.Int
}

// Split divides totalWei into the platform fee, the creator share, and the
// launchpad share:
//
//	fee       = floor(totalWei * feeBps / 10000)
//	creator   = floor((totalWei - fee) / 2)
//	launchpad = totalWei - fee - creator
//
// Integer division truncates toward zero; the launchpad share absorbs the
// rounding remainder so no fractional wei is lost or invented.
// Defined for all totalWei >= 0 and feeBps in [0, BpsBase].
func Split(totalWei *big.Int, feeBps uint32) Shares {
	fee := new(big.Int).Mul(totalWei, big.NewInt(int64(feeBps)))
	fee.Quo(fee, big.NewInt(domain.BpsBase))

	remainder := new(big.Int).Sub(totalWei, fee)
	creator := new(big.Int).Quo(remainder, big.NewInt(2))
	launchpad := new(big.Int).Sub(remainder, creator)

	return Shares{
		Fee:       fee,
		Creator:   creator,
		Launchpad: launchpad,
	}
}

// Total returns the exact sum of the three shares.
func (s Shares) Total() *big.Int {
	total := new(big.Int).Add(s.Fee, s.Creator)
	return total.Add(total, s.Launchpad)
}
