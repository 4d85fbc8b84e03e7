package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/danmuck/palletctl/internal/config"
	"github.com/danmuck/palletctl/internal/runtime"
	"github.com/danmuck/palletctl/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	chainPath  string
	queueDepth int
)

func init() {
	runCmd.Flags().StringVar(&chainPath, "chain", "", "path to a chain TOML file")
	runCmd.Flags().IntVar(&queueDepth, "queue-depth", service.DefaultQueueDepth, "block submission queue depth")
	_ = runCmd.MarkFlagRequired("chain")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the blocks of a chain file and print the final state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		chain, err := config.LoadChain(chainPath)
		if err != nil {
			return err
		}
		receipts, state, err := runChain(ctx, chain, service.Config{QueueDepth: queueDepth})
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), receipts, state)
	},
}

// runChain feeds every block of chain through a service and returns the receipts and final state.
func runChain(ctx context.Context, chain config.Chain, cfg service.Config) ([]runtime.BlockReceipt, runtime.State, error) {
	svc, err := service.NewWithConfig(runtime.New(), cfg)
	if err != nil {
		return nil, runtime.State{}, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	runErr := make(chan error, 1)
	go func() {
		runErr <- svc.Run(runCtx)
	}()

	if err := svc.Do(ctx, chain.Apply); err != nil {
		return nil, runtime.State{}, err
	}

	receipts := make([]runtime.BlockReceipt, 0, len(chain.Blocks))
	for _, b := range chain.Blocks {
		receipt, err := svc.Submit(ctx, b)
		if err != nil {
			return receipts, runtime.State{}, fmt.Errorf("block %d: %w", b.Header.BlockNumber, err)
		}
		receipts = append(receipts, receipt)
	}

	var state runtime.State
	if err := svc.Do(ctx, func(rt *runtime.Runtime) { state = rt.State() }); err != nil {
		return receipts, runtime.State{}, err
	}

	cancel()
	if err := <-runErr; err != nil {
		log.Error().Err(err).Msg("service_run_failed")
	}
	return receipts, state, nil
}
