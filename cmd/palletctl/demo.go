package main

import (
	"fmt"

	"github.com/danmuck/palletctl/internal/runtime"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in two-block demo and print the final state",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := runtime.New()
		receipts, err := runDemo(rt)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), receipts, rt.State())
	},
}

func runDemo(rt *runtime.Runtime) ([]runtime.BlockReceipt, error) {
	const (
		alice   = "alice"
		bob     = "bob"
		charlie = "charlie"
	)
	rt.Balances().SetBalance(alice, uint256.NewInt(100))

	blocks := []runtime.Block{
		{
			Header: runtime.Header{BlockNumber: 1},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.Transfer(bob, uint256.NewInt(30))},
				{Caller: alice, Call: runtime.Transfer(charlie, uint256.NewInt(20))},
				{Caller: alice, Call: runtime.CreateClaim("Hello Blockchain!")},
			},
		},
		{
			Header: runtime.Header{BlockNumber: 2},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.CreateClaim("Document Car Chevrolet")},
				{Caller: bob, Call: runtime.CreateClaim("Document Car Chevrolet")},
				{Caller: alice, Call: runtime.CreateClaim("Hello Blockchain!")},
			},
		},
	}

	receipts := make([]runtime.BlockReceipt, 0, len(blocks))
	for _, b := range blocks {
		receipt, err := rt.ExecuteBlock(b)
		if err != nil {
			return receipts, fmt.Errorf("invalid block %d: %w", b.Header.BlockNumber, err)
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}
