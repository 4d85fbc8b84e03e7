// Package system tracks the block height and per-account call counters.
package system

import (
	"cmp"
	"maps"

	"github.com/danmuck/palletctl/internal/support"
)

// Pallet holds the current block number and the nonce of every caller seen so far.
type Pallet[AccountID cmp.Ordered, BlockNumber, Nonce support.Unsigned] struct {
	blockNumber BlockNumber
	nonce       map[AccountID]Nonce
}

// NewPallet starts at block zero with no nonces recorded.
func NewPallet[AccountID cmp.Ordered, BlockNumber, Nonce support.Unsigned]() *Pallet[AccountID, BlockNumber, Nonce] {
	return &Pallet[AccountID, BlockNumber, Nonce]{
		nonce: make(map[AccountID]Nonce),
	}
}

func (p *Pallet[AccountID, BlockNumber, Nonce]) BlockNumber() BlockNumber {
	return p.blockNumber
}

func (p *Pallet[AccountID, BlockNumber, Nonce]) IncBlockNumber() {
	p.blockNumber++
}

// IncNonce bumps who's nonce by one. Absent accounts start from zero.
func (p *Pallet[AccountID, BlockNumber, Nonce]) IncNonce(who AccountID) {
	p.nonce[who] = p.nonce[who] + 1
}

// Nonce returns who's nonce and whether one has been recorded.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Nonce(who AccountID) (Nonce, bool) {
	n, ok := p.nonce[who]
	return n, ok
}

// Nonces returns a copy of every recorded nonce.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Nonces() map[AccountID]Nonce {
	out := make(map[AccountID]Nonce, len(p.nonce))
	maps.Copy(out, p.nonce)
	return out
}
