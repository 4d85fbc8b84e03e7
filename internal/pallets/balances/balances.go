// Package balances owns the account ledger and its checked transfer operation.
package balances

import (
	"cmp"
	"errors"
	"maps"

	"github.com/holiman/uint256"
)

var (
	ErrInsufficientBalance = errors.New("balances: insufficient balance")
	ErrOverflow            = errors.New("balances: overflow")
)

// Balance is the ledger amount type.
type Balance = uint256.Int

// Pallet maps accounts to balances. Absent accounts hold zero.
type Pallet[AccountID cmp.Ordered] struct {
	balances map[AccountID]Balance
}

// NewPallet creates an empty ledger.
func NewPallet[AccountID cmp.Ordered]() *Pallet[AccountID] {
	return &Pallet[AccountID]{
		balances: make(map[AccountID]Balance),
	}
}

// SetBalance overwrites who's balance. Genesis seeding only; not dispatchable.
func (p *Pallet[AccountID]) SetBalance(who AccountID, amount *Balance) {
	p.balances[who] = valueOf(amount)
}

// Balance returns a copy of who's balance.
func (p *Pallet[AccountID]) Balance(who AccountID) *Balance {
	b := p.balances[who]
	return &b
}

// Balances returns a copy of every stored balance.
func (p *Pallet[AccountID]) Balances() map[AccountID]Balance {
	out := make(map[AccountID]Balance, len(p.balances))
	maps.Copy(out, p.balances)
	return out
}

// Transfer moves amount from caller to to. The sender is checked before the
// receiver, and nothing is written unless both checks pass.
func (p *Pallet[AccountID]) Transfer(caller, to AccountID, amount *Balance) error {
	value := valueOf(amount)
	callerBalance := p.balances[caller]

	var newCallerBalance Balance
	if _, underflow := newCallerBalance.SubOverflow(&callerBalance, &value); underflow {
		return ErrInsufficientBalance
	}

	// A self-transfer credits the already debited balance, so it nets to zero.
	toBalance := p.balances[to]
	if to == caller {
		toBalance = newCallerBalance
	}

	var newToBalance Balance
	if _, overflow := newToBalance.AddOverflow(&toBalance, &value); overflow {
		return ErrOverflow
	}

	p.balances[caller] = newCallerBalance
	p.balances[to] = newToBalance
	return nil
}

func valueOf(amount *Balance) Balance {
	if amount == nil {
		return Balance{}
	}
	return *amount
}
