package balances

import (
	"errors"
	"testing"

	"github.com/danmuck/palletctl/internal/support"
	"github.com/danmuck/palletctl/internal/testutil/testlog"
	"github.com/holiman/uint256"
)

func maxBalance() *Balance {
	return new(uint256.Int).SetAllOne()
}

func expectBalance(t *testing.T, p *Pallet[string], who string, want uint64) {
	t.Helper()
	if got := p.Balance(who); !got.Eq(uint256.NewInt(want)) {
		t.Fatalf("unexpected balance for %s: got %s want %d", who, got.Dec(), want)
	}
}

func TestInitBalances(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()

	expectBalance(t, p, "alice", 0)
	p.SetBalance("alice", uint256.NewInt(100))
	expectBalance(t, p, "alice", 100)
	expectBalance(t, p, "bob", 0)
}

func TestTransferBalance(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()

	if err := p.Transfer("daniel", "vini", uint256.NewInt(10)); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}

	p.SetBalance("daniel", uint256.NewInt(10))
	if err := p.Transfer("daniel", "vini", uint256.NewInt(3)); err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	expectBalance(t, p, "daniel", 7)
	expectBalance(t, p, "vini", 3)

	p.SetBalance("vini", maxBalance())
	if err := p.Transfer("daniel", "vini", uint256.NewInt(3)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	expectBalance(t, p, "daniel", 7)
	if !p.Balance("vini").Eq(maxBalance()) {
		t.Fatalf("receiver mutated on overflow: %s", p.Balance("vini").Dec())
	}
}

func TestTransferInsufficientBalanceTakesPrecedence(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()
	p.SetBalance("alice", uint256.NewInt(1))
	p.SetBalance("bob", maxBalance())

	if err := p.Transfer("alice", "bob", uint256.NewInt(2)); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
	expectBalance(t, p, "alice", 1)
}

func TestTransferConservesTotal(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()
	p.SetBalance("alice", uint256.NewInt(100))
	p.SetBalance("bob", uint256.NewInt(5))

	steps := []struct {
		from, to string
		amount   uint64
	}{
		{"alice", "bob", 30},
		{"bob", "charlie", 35},
		{"charlie", "alice", 1},
		{"alice", "charlie", 500},
	}
	for _, s := range steps {
		_ = p.Transfer(s.from, s.to, uint256.NewInt(s.amount))

		total := new(uint256.Int)
		for _, b := range p.Balances() {
			total.Add(total, &b)
		}
		if !total.Eq(uint256.NewInt(105)) {
			t.Fatalf("total changed after %+v: %s", s, total.Dec())
		}
	}
	expectBalance(t, p, "alice", 71)
	expectBalance(t, p, "bob", 0)
	expectBalance(t, p, "charlie", 34)
}

func TestSelfTransferIsNoop(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()
	p.SetBalance("alice", uint256.NewInt(40))

	if err := p.Transfer("alice", "alice", uint256.NewInt(40)); err != nil {
		t.Fatalf("self transfer failed: %v", err)
	}
	expectBalance(t, p, "alice", 40)

	if err := p.Transfer("alice", "alice", uint256.NewInt(41)); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}

	p.SetBalance("max", maxBalance())
	if err := p.Transfer("max", "max", uint256.NewInt(7)); err != nil {
		t.Fatalf("self transfer at max failed: %v", err)
	}
	if !p.Balance("max").Eq(maxBalance()) {
		t.Fatalf("self transfer at max changed balance: %s", p.Balance("max").Dec())
	}
}

func TestBalanceReturnsCopy(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()
	p.SetBalance("alice", uint256.NewInt(9))

	b := p.Balance("alice")
	b.SetUint64(1000)
	expectBalance(t, p, "alice", 9)
}

func TestDispatchTransfer(t *testing.T) {
	testlog.Start(t)
	p := NewPallet[string]()
	p.SetBalance("alice", uint256.NewInt(10))

	if err := p.Dispatch("alice", Transfer[string]{To: "bob", Amount: uint256.NewInt(4)}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	expectBalance(t, p, "alice", 6)
	expectBalance(t, p, "bob", 4)

	if err := p.Dispatch("alice", nil); !errors.Is(err, support.ErrUnknownCall) {
		t.Fatalf("expected unknown call, got %v", err)
	}
}
