package core

import (
	"math"
	"strings"
)

// Searcher counts how many queries are found in the directory.
type Searcher interface {
	Name() string
	Count(d *Directory, queries []string) int
}

// LinearSubstringSearch matches a query against any name that contains it.
// It needs no preprocessing and is the fallback for an aborted sort.
type LinearSubstringSearch struct{}

func (LinearSubstringSearch) Name() string { return "linear search" }

func (LinearSubstringSearch) Count(d *Directory, queries []string) int {
	count := 0
	for _, q := range queries {
		for i := 0; i < d.Len(); i++ {
			if strings.Contains(d.Name(i), q) {
				count++
				break
			}
		}
	}
	return count
}

// JumpSearch probes every floor(sqrt(n))-th name of a sorted directory and
// scans back through a block once it passes the query. Exact match only.
type JumpSearch struct{}

func (JumpSearch) Name() string { return "jump search" }

func (JumpSearch) Count(d *Directory, queries []string) int {
	count := 0
	for _, q := range queries {
		if jumpSearch(d, q) > -1 {
			count++
		}
	}
	return count
}

func jumpSearch(d *Directory, value string) int {
	n := d.Len()
	step := int(math.Floor(math.Sqrt(float64(n))))
	curr, ind := 0, 0

	for curr <= n-1 {
		name := d.Name(curr)
		if name == value {
			return curr
		}
		if name > value {
			for ind = curr - 1; ind > curr-step && ind >= 0; ind-- {
				if d.Name(ind) == value {
					return ind
				}
			}
			return -1
		}
		curr += step
		ind = n - 1
	}

	// Ran off the end: scan back from the last record to the last probed block.
	for ; ind > curr-step; ind-- {
		if d.Name(ind) == value {
			return ind
		}
	}
	return -1
}

// BinarySearch halves a sorted directory. With duplicate names it returns
// whichever copy the midpoint lands on first.
type BinarySearch struct{}

func (BinarySearch) Name() string { return "binary search" }

func (BinarySearch) Count(d *Directory, queries []string) int {
	count := 0
	for _, q := range queries {
		if binarySearch(d, q) > -1 {
			count++
		}
	}
	return count
}

func binarySearch(d *Directory, value string) int {
	lo, hi := 0, d.Len()-1
	for lo <= hi {
		mid := (lo + hi) / 2
		name := d.Name(mid)
		switch {
		case value == name:
			return mid
		case value < name:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return -1
}

// HashLookup tests membership in the index built by its HashIndex.
type HashLookup struct {
	Index *HashIndex
}

func (HashLookup) Name() string { return "hash lookup" }

func (h HashLookup) Count(_ *Directory, queries []string) int {
	count := 0
	for _, q := range queries {
		if h.Index.Contains(q) {
			count++
		}
	}
	return count
}
