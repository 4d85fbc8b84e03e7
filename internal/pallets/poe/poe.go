// Package poe is the proof-of-existence registry: content claims with a single owner each.
package poe

import (
	"cmp"
	"errors"
	"maps"
)

var (
	ErrClaimAlreadyExists = errors.New("poe: claim already exists")
	ErrClaimNotFound      = errors.New("poe: claim does not exist")
	ErrNotClaimOwner      = errors.New("poe: claim does not belong to caller")
)

// Pallet maps claimed content to its owner.
type Pallet[AccountID, Content cmp.Ordered] struct {
	claims map[Content]AccountID
}

// NewPallet creates an empty claim registry.
func NewPallet[AccountID, Content cmp.Ordered]() *Pallet[AccountID, Content] {
	return &Pallet[AccountID, Content]{
		claims: make(map[Content]AccountID),
	}
}

// GetClaim returns the owner of claim, if any.
func (p *Pallet[AccountID, Content]) GetClaim(claim Content) (AccountID, bool) {
	owner, ok := p.claims[claim]
	return owner, ok
}

// Claims returns a copy of every claim.
func (p *Pallet[AccountID, Content]) Claims() map[Content]AccountID {
	out := make(map[Content]AccountID, len(p.claims))
	maps.Copy(out, p.claims)
	return out
}

// CreateClaim records caller as the owner of claim.
func (p *Pallet[AccountID, Content]) CreateClaim(caller AccountID, claim Content) error {
	if _, ok := p.claims[claim]; ok {
		return ErrClaimAlreadyExists
	}
	p.claims[claim] = caller
	return nil
}

// RevokeClaim removes claim. Only the current owner may revoke it.
func (p *Pallet[AccountID, Content]) RevokeClaim(caller AccountID, claim Content) error {
	owner, ok := p.claims[claim]
	if !ok {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	delete(p.claims, claim)
	return nil
}
