package runtime

import (
	"errors"
	"fmt"

	"github.com/danmuck/palletctl/internal/observability"
	"github.com/danmuck/palletctl/internal/pallets/balances"
	"github.com/danmuck/palletctl/internal/pallets/poe"
	"github.com/danmuck/palletctl/internal/pallets/system"
	"github.com/danmuck/palletctl/internal/support"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrBlockNumberMismatch = errors.New("runtime: block number mismatch")

// Runtime owns every pallet and applies blocks to them.
type Runtime struct {
	system           *system.Pallet[AccountID, BlockNumber, Nonce]
	balances         *balances.Pallet[AccountID]
	proofOfExistence *poe.Pallet[AccountID, Content]
	logger           zerolog.Logger
}

var _ support.Dispatch[AccountID, RuntimeCall] = (*Runtime)(nil)

// New creates a runtime with empty pallets, logging through the global logger.
func New() *Runtime {
	return NewWithLogger(log.Logger)
}

func NewWithLogger(logger zerolog.Logger) *Runtime {
	return &Runtime{
		system:           system.NewPallet[AccountID, BlockNumber, Nonce](),
		balances:         balances.NewPallet[AccountID](),
		proofOfExistence: poe.NewPallet[AccountID, Content](),
		logger:           logger.With().Str("component", "runtime").Logger(),
	}
}

func (r *Runtime) System() *system.Pallet[AccountID, BlockNumber, Nonce] {
	return r.system
}

func (r *Runtime) Balances() *balances.Pallet[AccountID] {
	return r.balances
}

func (r *Runtime) ProofOfExistence() *poe.Pallet[AccountID, Content] {
	return r.proofOfExistence
}

// Dispatch hands call to the pallet that owns its variant.
func (r *Runtime) Dispatch(caller AccountID, call RuntimeCall) error {
	switch c := call.(type) {
	case BalancesCall:
		return r.balances.Dispatch(caller, c.Call)
	case ProofOfExistenceCall:
		return r.proofOfExistence.Dispatch(caller, c.Call)
	}
	return fmt.Errorf("%w: runtime %T", support.ErrUnknownCall, call)
}

// ExecuteBlock applies block. The block number is incremented even when the
// header check fails; a mismatch is the only error returned. Extrinsic
// failures are reported through the receipt.
func (r *Runtime) ExecuteBlock(block Block) (BlockReceipt, error) {
	r.system.IncBlockNumber()
	expected := r.system.BlockNumber()

	receipt := BlockReceipt{BlockNumber: block.Header.BlockNumber}
	if block.Header.BlockNumber != expected {
		observability.RecordBlock(expected, false)
		r.logger.Error().
			Uint64("header", block.Header.BlockNumber).
			Uint64("expected", expected).
			Int("extrinsics", len(block.Extrinsics)).
			Msg("block_rejected")
		return receipt, fmt.Errorf("%w: header=%d expected=%d", ErrBlockNumberMismatch, block.Header.BlockNumber, expected)
	}

	receipt.Results = make([]ExtrinsicResult, 0, len(block.Extrinsics))
	for i, ext := range block.Extrinsics {
		r.system.IncNonce(ext.Caller)
		err := r.Dispatch(ext.Caller, ext.Call)

		res := ExtrinsicResult{
			Index:  i,
			Caller: ext.Caller,
			Call:   callName(ext.Call),
			Err:    err,
		}
		receipt.Results = append(receipt.Results, res)
		observability.RecordExtrinsic(res.Call, err == nil)

		if err != nil {
			r.logger.Warn().
				Uint64("block", expected).
				Int("extrinsic", i).
				Str("caller", ext.Caller).
				Str("call", res.Call).
				Err(err).
				Msg(diagnostic(expected, i, err))
			continue
		}
		r.logger.Debug().
			Uint64("block", expected).
			Int("extrinsic", i).
			Str("caller", ext.Caller).
			Str("call", res.Call).
			Msg("extrinsic_applied")
	}

	observability.RecordBlock(expected, true)
	r.logger.Info().
		Uint64("block", expected).
		Int("extrinsics", len(block.Extrinsics)).
		Int("failed", len(receipt.Failed())).
		Msg("block_executed")
	return receipt, nil
}
