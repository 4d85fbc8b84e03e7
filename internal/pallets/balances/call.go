package balances

import (
	"cmp"
	"fmt"

	"github.com/danmuck/palletctl/internal/support"
)

const CallTransfer = "balances.transfer"

// Call is the dispatchable surface of the ledger.
type Call[AccountID cmp.Ordered] interface {
	Name() string
	balancesCall()
}

// Transfer moves Amount from the caller to To.
type Transfer[AccountID cmp.Ordered] struct {
	To     AccountID
	Amount *Balance
}

func (Transfer[AccountID]) Name() string  { return CallTransfer }
func (Transfer[AccountID]) balancesCall() {}

var _ support.Dispatch[string, Call[string]] = (*Pallet[string])(nil)

// Dispatch routes call to its ledger operation.
func (p *Pallet[AccountID]) Dispatch(caller AccountID, call Call[AccountID]) error {
	switch c := call.(type) {
	case Transfer[AccountID]:
		return p.Transfer(caller, c.To, c.Amount)
	}
	return fmt.Errorf("%w: balances %T", support.ErrUnknownCall, call)
}
