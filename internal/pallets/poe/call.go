package poe

import (
	"cmp"
	"fmt"

	"github.com/danmuck/palletctl/internal/support"
)

const (
	CallCreateClaim = "proof_of_existence.create_claim"
	CallRevokeClaim = "proof_of_existence.revoke_claim"
)

// Call is the dispatchable surface of the claim registry.
type Call[AccountID, Content cmp.Ordered] interface {
	Name() string
	poeCall()
}

type CreateClaim[AccountID, Content cmp.Ordered] struct {
	Claim Content
}

type RevokeClaim[AccountID, Content cmp.Ordered] struct {
	Claim Content
}

func (CreateClaim[AccountID, Content]) Name() string { return CallCreateClaim }
func (CreateClaim[AccountID, Content]) poeCall()     {}

func (RevokeClaim[AccountID, Content]) Name() string { return CallRevokeClaim }
func (RevokeClaim[AccountID, Content]) poeCall()     {}

var _ support.Dispatch[string, Call[string, string]] = (*Pallet[string, string])(nil)

// Dispatch routes call to its registry operation.
func (p *Pallet[AccountID, Content]) Dispatch(caller AccountID, call Call[AccountID, Content]) error {
	switch c := call.(type) {
	case CreateClaim[AccountID, Content]:
		return p.CreateClaim(caller, c.Claim)
	case RevokeClaim[AccountID, Content]:
		return p.RevokeClaim(caller, c.Claim)
	}
	return fmt.Errorf("%w: poe %T", support.ErrUnknownCall, call)
}
