package runtime

import (
	"github.com/danmuck/palletctl/internal/pallets/balances"
	"github.com/danmuck/palletctl/internal/pallets/poe"
)

const unknownCallName = "unknown"

// RuntimeCall is the whole-system call union. Each variant wraps one pallet's own call union.
type RuntimeCall interface {
	Name() string
	runtimeCall()
}

type BalancesCall struct {
	Call balances.Call[AccountID]
}

type ProofOfExistenceCall struct {
	Call poe.Call[AccountID, Content]
}

func (c BalancesCall) Name() string {
	if c.Call == nil {
		return unknownCallName
	}
	return c.Call.Name()
}

func (BalancesCall) runtimeCall() {}

func (c ProofOfExistenceCall) Name() string {
	if c.Call == nil {
		return unknownCallName
	}
	return c.Call.Name()
}

func (ProofOfExistenceCall) runtimeCall() {}

// Transfer builds a balances.transfer runtime call.
func Transfer(to AccountID, amount *Balance) RuntimeCall {
	return BalancesCall{Call: balances.Transfer[AccountID]{To: to, Amount: amount}}
}

// CreateClaim builds a proof_of_existence.create_claim runtime call.
func CreateClaim(claim Content) RuntimeCall {
	return ProofOfExistenceCall{Call: poe.CreateClaim[AccountID, Content]{Claim: claim}}
}

// RevokeClaim builds a proof_of_existence.revoke_claim runtime call.
func RevokeClaim(claim Content) RuntimeCall {
	return ProofOfExistenceCall{Call: poe.RevokeClaim[AccountID, Content]{Claim: claim}}
}

func callName(call RuntimeCall) string {
	if call == nil {
		return unknownCallName
	}
	return call.Name()
}
