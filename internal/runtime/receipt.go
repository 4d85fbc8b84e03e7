package runtime

import "fmt"

// ExtrinsicResult records the dispatch outcome of one extrinsic.
type ExtrinsicResult struct {
	Index  int
	Caller AccountID
	Call   string
	Err    error
}

func (r ExtrinsicResult) OK() bool {
	return r.Err == nil
}

// BlockReceipt is the per-extrinsic log of one executed block.
type BlockReceipt struct {
	BlockNumber BlockNumber
	Results     []ExtrinsicResult
}

// Failed returns the results whose dispatch returned an error.
func (r BlockReceipt) Failed() []ExtrinsicResult {
	out := make([]ExtrinsicResult, 0)
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Diagnostics formats every failed extrinsic as "Error in block N: extrinsic I: message".
func (r BlockReceipt) Diagnostics() []string {
	failed := r.Failed()
	out := make([]string, 0, len(failed))
	for _, res := range failed {
		out = append(out, diagnostic(r.BlockNumber, res.Index, res.Err))
	}
	return out
}

func diagnostic(block BlockNumber, index int, err error) string {
	return fmt.Sprintf("Error in block %d: extrinsic %d: %s", block, index, err)
}
