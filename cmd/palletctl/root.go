package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danmuck/palletctl/internal/runtime"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "palletctl",
	Short:         "Execute blocks against the in-memory pallet runtime",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// writeReport prints per-block diagnostics followed by the final state as JSON.
func writeReport(w io.Writer, receipts []runtime.BlockReceipt, state runtime.State) error {
	for _, r := range receipts {
		for _, d := range r.Diagnostics() {
			if _, err := fmt.Fprintln(w, d); err != nil {
				return err
			}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(state)
}
