package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	registerOnce sync.Once

	blocksExecuted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "palletctl",
			Subsystem: "runtime",
			Name:      "blocks_total",
			Help:      "Blocks submitted to execute_block, by outcome.",
		},
		[]string{"outcome"},
	)
	extrinsicsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "palletctl",
			Subsystem: "runtime",
			Name:      "extrinsics_total",
			Help:      "Extrinsics dispatched, by call and outcome.",
		},
		[]string{"call", "outcome"},
	)
	blockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "palletctl",
			Subsystem: "runtime",
			Name:      "block_height",
			Help:      "Current internal block number.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(blocksExecuted, extrinsicsApplied, blockHeight)
	})
}

func RecordBlock(height uint64, success bool) {
	RegisterMetrics()
	blocksExecuted.WithLabelValues(outcomeLabel(success)).Inc()
	blockHeight.Set(float64(height))
}

func RecordExtrinsic(call string, success bool) {
	RegisterMetrics()
	extrinsicsApplied.WithLabelValues(call, outcomeLabel(success)).Inc()
}

// BlocksCounter exposes the block counter for one outcome label.
func BlocksCounter(outcome string) prometheus.Counter {
	return blocksExecuted.WithLabelValues(outcome)
}

// ExtrinsicsCounter exposes the extrinsic counter for one call/outcome pair.
func ExtrinsicsCounter(call, outcome string) prometheus.Counter {
	return extrinsicsApplied.WithLabelValues(call, outcome)
}

func outcomeLabel(success bool) string {
	if success {
		return OutcomeSuccess
	}
	return OutcomeError
}
