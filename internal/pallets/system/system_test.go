package system

import (
	"testing"

	"github.com/danmuck/palletctl/internal/testutil/testlog"
)

func TestInitSystem(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string, uint32, uint32]()

	if p.BlockNumber() != 0 {
		t.Fatalf("unexpected block number: %d", p.BlockNumber())
	}
	if _, ok := p.Nonce("daniel"); ok {
		t.Fatalf("expected no nonce for untouched account")
	}

	p.IncBlockNumber()
	if p.BlockNumber() != 1 {
		t.Fatalf("unexpected block number: %d", p.BlockNumber())
	}

	p.IncNonce("daniel")
	n, ok := p.Nonce("daniel")
	if !ok || n != 1 {
		t.Fatalf("unexpected nonce: %d ok=%v", n, ok)
	}
}

func TestIncNonceIsPerAccountAndMonotonic(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string, uint64, uint32]()

	for i := 0; i < 3; i++ {
		p.IncNonce("alice")
	}
	p.IncNonce("bob")

	if n, _ := p.Nonce("alice"); n != 3 {
		t.Fatalf("unexpected alice nonce: %d", n)
	}
	if n, _ := p.Nonce("bob"); n != 1 {
		t.Fatalf("unexpected bob nonce: %d", n)
	}
	if _, ok := p.Nonce("charlie"); ok {
		t.Fatalf("expected charlie absent")
	}

	snap := p.Nonces()
	if len(snap) != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	snap["alice"] = 99
	if n, _ := p.Nonce("alice"); n != 3 {
		t.Fatalf("snapshot mutation leaked into pallet: %d", n)
	}
}
