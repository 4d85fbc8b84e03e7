package runtime

import (
	"github.com/danmuck/palletctl/internal/pallets/balances"
	"github.com/danmuck/palletctl/internal/support"
)

type (
	AccountID   = string
	Balance     = balances.Balance
	BlockNumber = uint64
	Nonce       = uint32
	Content     = string
)

type (
	Header    = support.Header[BlockNumber]
	Extrinsic = support.Extrinsic[AccountID, RuntimeCall]
	Block     = support.Block[BlockNumber, AccountID, RuntimeCall]
)
