package core

import "time"

// BenchmarkResult is what one Runner.Run produces.
type BenchmarkResult struct {
	Label              string
	PreprocessLabel    string // "Sorting" or "Creating"
	MatchCount         int
	TotalQueries       int
	Preprocessed       bool
	PreprocessDuration time.Duration
	SearchDuration     time.Duration
	FallbackTriggered  bool
	Comparisons        uint64
	Swaps              uint64
}

func (r BenchmarkResult) PreprocessDurationMs() int64 {
	return r.PreprocessDuration.Milliseconds()
}

func (r BenchmarkResult) SearchDurationMs() int64 {
	return r.SearchDuration.Milliseconds()
}

// Total is preprocessing plus search time.
func (r BenchmarkResult) Total() time.Duration {
	return r.PreprocessDuration + r.SearchDuration
}
