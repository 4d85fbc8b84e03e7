package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/danmuck/palletctl/internal/pallets/balances"
	"github.com/danmuck/palletctl/internal/pallets/poe"
	"github.com/danmuck/palletctl/internal/runtime"
	"github.com/holiman/uint256"
)

var (
	ErrUnknownCall   = errors.New("config: unknown call")
	ErrMissingField  = errors.New("config: missing field")
	ErrInvalidAmount = errors.New("config: invalid amount")
	ErrUnknownKeys   = errors.New("config: unknown keys")
)

// maxSuggestDistance bounds how far a typo may be from a known call name.
const maxSuggestDistance = 4

var knownCalls = []string{
	balances.CallTransfer,
	poe.CallCreateClaim,
	poe.CallRevokeClaim,
}

type fileChain struct {
	Genesis fileGenesis `toml:"genesis"`
	Blocks  []fileBlock `toml:"blocks"`
}

type fileGenesis struct {
	Balances []fileBalance `toml:"balances"`
}

type fileBalance struct {
	Account string `toml:"account"`
	Amount  string `toml:"amount"`
}

type fileBlock struct {
	Number     *uint64         `toml:"number"`
	Extrinsics []fileExtrinsic `toml:"extrinsics"`
}

type fileExtrinsic struct {
	Caller string `toml:"caller"`
	Call   string `toml:"call"`
	To     string `toml:"to"`
	Amount string `toml:"amount"`
	Claim  string `toml:"claim"`
}

// GenesisBalance seeds one account before the first block.
type GenesisBalance struct {
	Account runtime.AccountID
	Amount  *runtime.Balance
}

// Chain is a decoded chain file.
type Chain struct {
	Genesis []GenesisBalance
	Blocks  []runtime.Block
}

// Apply writes the genesis balances into rt.
func (c Chain) Apply(rt *runtime.Runtime) {
	for _, g := range c.Genesis {
		rt.Balances().SetBalance(g.Account, g.Amount)
	}
}

func LoadChain(path string) (Chain, error) {
	var raw fileChain
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Chain{}, fmt.Errorf("chain load failed (%s): %w", path, err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Chain{}, fmt.Errorf("chain parse failed (%s): %w", path, err)
	}
	chain, err := parseChain(raw)
	if err != nil {
		return Chain{}, fmt.Errorf("chain parse failed (%s): %w", path, err)
	}
	return chain, nil
}

// DecodeChain parses chain file contents already in memory.
func DecodeChain(data string) (Chain, error) {
	var raw fileChain
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Chain{}, fmt.Errorf("chain decode failed: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Chain{}, err
	}
	return parseChain(raw)
}

func checkUndecoded(meta toml.MetaData) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
}

func parseChain(raw fileChain) (Chain, error) {
	chain := Chain{
		Genesis: make([]GenesisBalance, 0, len(raw.Genesis.Balances)),
		Blocks:  make([]runtime.Block, 0, len(raw.Blocks)),
	}
	for i, b := range raw.Genesis.Balances {
		account := strings.TrimSpace(b.Account)
		if account == "" {
			return Chain{}, fmt.Errorf("genesis balance[%d]: %w: account", i, ErrMissingField)
		}
		amount, err := parseAmount(b.Amount)
		if err != nil {
			return Chain{}, fmt.Errorf("genesis balance[%d]: %w", i, err)
		}
		chain.Genesis = append(chain.Genesis, GenesisBalance{Account: account, Amount: amount})
	}

	for i, fb := range raw.Blocks {
		number := runtime.BlockNumber(i + 1)
		if fb.Number != nil {
			number = *fb.Number
		}
		block := runtime.Block{
			Header:     runtime.Header{BlockNumber: number},
			Extrinsics: make([]runtime.Extrinsic, 0, len(fb.Extrinsics)),
		}
		for j, fe := range fb.Extrinsics {
			ext, err := parseExtrinsic(fe)
			if err != nil {
				return Chain{}, fmt.Errorf("block[%d] extrinsic[%d]: %w", i, j, err)
			}
			block.Extrinsics = append(block.Extrinsics, ext)
		}
		chain.Blocks = append(chain.Blocks, block)
	}
	return chain, nil
}

func parseExtrinsic(fe fileExtrinsic) (runtime.Extrinsic, error) {
	caller := strings.TrimSpace(fe.Caller)
	if caller == "" {
		return runtime.Extrinsic{}, fmt.Errorf("%w: caller", ErrMissingField)
	}

	name := strings.TrimSpace(fe.Call)
	switch name {
	case balances.CallTransfer:
		to := strings.TrimSpace(fe.To)
		if to == "" {
			return runtime.Extrinsic{}, fmt.Errorf("%w: to", ErrMissingField)
		}
		amount, err := parseAmount(fe.Amount)
		if err != nil {
			return runtime.Extrinsic{}, err
		}
		return runtime.Extrinsic{Caller: caller, Call: runtime.Transfer(to, amount)}, nil
	case poe.CallCreateClaim:
		if fe.Claim == "" {
			return runtime.Extrinsic{}, fmt.Errorf("%w: claim", ErrMissingField)
		}
		return runtime.Extrinsic{Caller: caller, Call: runtime.CreateClaim(fe.Claim)}, nil
	case poe.CallRevokeClaim:
		if fe.Claim == "" {
			return runtime.Extrinsic{}, fmt.Errorf("%w: claim", ErrMissingField)
		}
		return runtime.Extrinsic{Caller: caller, Call: runtime.RevokeClaim(fe.Claim)}, nil
	case "":
		return runtime.Extrinsic{}, fmt.Errorf("%w: call", ErrMissingField)
	}

	if s, ok := suggestCall(name); ok {
		return runtime.Extrinsic{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownCall, name, s)
	}
	return runtime.Extrinsic{}, fmt.Errorf("%w: %q", ErrUnknownCall, name)
}

func parseAmount(raw string) (*uint256.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: amount", ErrMissingField)
	}
	v, err := uint256.FromDecimal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, raw, err)
	}
	return v, nil
}

func suggestCall(name string) (string, bool) {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, known := range knownCalls {
		d := levenshtein.ComputeDistance(strings.ToLower(name), known)
		if d < bestDist {
			best, bestDist = known, d
		}
	}
	return best, best != ""
}
