package core

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"sort"
	"testing"
	"time"

	"phonebench/pkg/common"
)

// tickClock advances by step on every call.
type tickClock struct {
	t    time.Time
	step time.Duration
}

func newTickClock(step time.Duration) *tickClock {
	return &tickClock{t: time.Unix(0, 0), step: step}
}

func (c *tickClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRunner(records []common.Record, queries []string, opts ...RunnerOption) *Runner {
	opts = append([]RunnerOption{WithLogger(quietLogger())}, opts...)
	return NewRunner(NewDirectory(records), queries, opts...)
}

func sampleRecords() []common.Record {
	return []common.Record{
		{Phone: "123", Name: "Alice Smith"},
		{Phone: "456", Name: "Bob Jones"},
		{Phone: "789", Name: "Carol Ann"},
	}
}

func randomRecords(t testing.TB, n int, seed int64) []common.Record {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	records := make([]common.Record, n)
	for i := range records {
		records[i] = common.Record{
			Phone: fmt.Sprintf("%07d", rng.Intn(10000000)),
			Name:  fmt.Sprintf("Name %04d", rng.Intn(n)),
		}
	}
	return records
}

func reversedRecords(n int) []common.Record {
	records := make([]common.Record, n)
	for i := range records {
		records[i] = common.Record{Phone: fmt.Sprint(i), Name: fmt.Sprintf("Name %04d", n-i)}
	}
	return records
}

func multiset(records []common.Record) map[common.Record]int {
	m := make(map[common.Record]int, len(records))
	for _, r := range records {
		m[r]++
	}
	return m
}

func sortedNames(records []common.Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	sort.Strings(names)
	return names
}

func namesOf(d *Directory) []string {
	names := make([]string, d.Len())
	for i := range names {
		names[i] = d.Name(i)
	}
	return names
}
