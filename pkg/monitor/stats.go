package monitor

import (
	"sync/atomic"
)

// OpStats counts the comparisons and swaps a strategy performs on the directory.
type OpStats struct {
	Comparisons uint64
	Swaps       uint64
}

func NewOpStats() *OpStats {
	return &OpStats{}
}

func (st *OpStats) RecordCompare() {
	atomic.AddUint64(&st.Comparisons, 1)
}

func (st *OpStats) RecordSwap() {
	atomic.AddUint64(&st.Swaps, 1)
}

// Snapshot returns the current counters.
func (st *OpStats) Snapshot() (comparisons, swaps uint64) {
	return atomic.LoadUint64(&st.Comparisons), atomic.LoadUint64(&st.Swaps)
}

func (st *OpStats) Reset() {
	atomic.StoreUint64(&st.Comparisons, 0)
	atomic.StoreUint64(&st.Swaps, 0)
}

// SwapRatio is swaps per comparison, 0 when nothing was compared.
func (st *OpStats) SwapRatio() float64 {
	cmp, swp := st.Snapshot()
	if cmp == 0 {
		return 0.0
	}
	return float64(swp) / float64(cmp)
}
