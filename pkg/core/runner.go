package core

import (
	"log"
	"time"
)

// Runner pairs a preprocessing strategy with a search strategy over one
// directory and query set. Runs happen one at a time; each one times its two
// phases independently.
type Runner struct {
	dir     *Directory
	queries []string
	now     func() time.Time
	logger  *log.Logger
}

type RunnerOption func(*Runner)

// WithClock replaces time.Now, which tests use to drive the fallback.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

func NewRunner(dir *Directory, queries []string, opts ...RunnerOption) *Runner {
	r := &Runner{
		dir:     dir,
		queries: queries,
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type runConfig struct {
	baseline Baseline
	factor   int
}

type RunOption func(*runConfig)

// WithBaseline arms the fallback for this run.
func WithBaseline(b Baseline) RunOption {
	return func(c *runConfig) {
		c.baseline = b
	}
}

func WithFallbackFactor(factor int) RunOption {
	return func(c *runConfig) {
		if factor > 0 {
			c.factor = factor
		}
	}
}

func (r *Runner) Directory() *Directory {
	return r.dir
}

// Run executes pre (nil or NoSort means no preprocessing) and then search.
// If pre is abandoned by the fallback, a full linear search runs instead of
// search.
func (r *Runner) Run(pre Preprocessor, search Searcher, label string, opts ...RunOption) BenchmarkResult {
	cfg := runConfig{factor: DefaultFallbackFactor}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := BenchmarkResult{
		Label:        label,
		TotalQueries: len(r.queries),
	}

	r.dir.Stats().Reset()

	if _, skip := pre.(NoSort); pre != nil && !skip {
		res.Preprocessed = true
		res.PreprocessLabel = pre.Label()

		ctl := newFallbackController(r.now, cfg.baseline, cfg.factor)
		r.logger.Printf("[Bench] %s: %s over %d records", label, pre.Name(), r.dir.Len())
		start := r.now()
		pre.Prepare(r.dir, ctl)
		res.PreprocessDuration = r.now().Sub(start)
		ctl.finish()

		if ctl.State() == Aborted {
			res.FallbackTriggered = true
			r.logger.Printf("[Bench] %s: %s stopped after %v, falling back to linear search", label, pre.Name(), res.PreprocessDuration)
			search = LinearSubstringSearch{}
		}
	}
	res.Comparisons, res.Swaps = r.dir.Stats().Snapshot()

	start := r.now()
	res.MatchCount = search.Count(r.dir, r.queries)
	res.SearchDuration = r.now().Sub(start)

	r.logger.Printf("[Bench] %s: %s found %d/%d in %v", label, search.Name(), res.MatchCount, res.TotalQueries, res.SearchDuration)
	return res
}
