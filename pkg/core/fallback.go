package core

import "time"

// DefaultFallbackFactor is how many baselines a sort may take before it is
// abandoned.
const DefaultFallbackFactor = 10

// Baseline is the search time of the linear-only run. The zero value is unset.
type Baseline struct {
	duration time.Duration
	set      bool
}

// BaselineFrom takes the search duration of a linear-only run.
func BaselineFrom(res BenchmarkResult) Baseline {
	return Baseline{duration: res.SearchDuration, set: true}
}

func NewBaseline(d time.Duration) Baseline {
	return Baseline{duration: d, set: true}
}

func (b Baseline) Duration() time.Duration { return b.duration }
func (b Baseline) IsSet() bool             { return b.set }

type FallbackState int

const (
	Sorting FallbackState = iota
	Completed
	Aborted
)

func (s FallbackState) String() string {
	switch s {
	case Sorting:
		return "sorting"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// FallbackController watches one preprocessing phase. It moves from Sorting
// to Aborted the first time elapsed time exceeds factor x baseline, or to
// Completed when the phase finishes first. Without a baseline it never aborts.
type FallbackController struct {
	now       func() time.Time
	start     time.Time
	threshold time.Duration
	armed     bool
	state     FallbackState
}

func newFallbackController(now func() time.Time, baseline Baseline, factor int) *FallbackController {
	return &FallbackController{
		now:       now,
		start:     now(),
		threshold: baseline.duration * time.Duration(factor),
		armed:     baseline.set,
		state:     Sorting,
	}
}

// Exceeded implements Guard.
func (fc *FallbackController) Exceeded() bool {
	if fc.state == Aborted {
		return true
	}
	if fc.state != Sorting || !fc.armed {
		return false
	}
	if fc.now().Sub(fc.start) > fc.threshold {
		fc.state = Aborted
		return true
	}
	return false
}

// finish closes the Sorting state if the phase ran to completion.
func (fc *FallbackController) finish() {
	if fc.state == Sorting {
		fc.state = Completed
	}
}

func (fc *FallbackController) State() FallbackState {
	return fc.state
}
