package core

import (
	"phonebench/pkg/common"
	"phonebench/pkg/monitor"
)

// Directory is the record store the strategies work on. Sorts reorder it in
// place; it is always a permutation of the records it was built from.
type Directory struct {
	records []common.Record
	stats   *monitor.OpStats
}

// NewDirectory copies records so the caller's slice is never reordered.
func NewDirectory(records []common.Record) *Directory {
	owned := make([]common.Record, len(records))
	copy(owned, records)
	return &Directory{
		records: owned,
		stats:   monitor.NewOpStats(),
	}
}

func (d *Directory) Len() int {
	return len(d.records)
}

func (d *Directory) At(i int) common.Record {
	return d.records[i]
}

func (d *Directory) Name(i int) string {
	return d.records[i].Name
}

// Greater reports whether the name at i orders after the name at j.
func (d *Directory) Greater(i, j int) bool {
	d.stats.RecordCompare()
	return d.records[i].Name > d.records[j].Name
}

func (d *Directory) Swap(i, j int) {
	d.stats.RecordSwap()
	d.records[i], d.records[j] = d.records[j], d.records[i]
}

// Records returns a copy of the current order.
func (d *Directory) Records() []common.Record {
	out := make([]common.Record, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Directory) Clone() *Directory {
	return NewDirectory(d.records)
}

// IsSorted reports whether names are non-decreasing.
func (d *Directory) IsSorted() bool {
	for i := 1; i < len(d.records); i++ {
		if d.records[i].Name < d.records[i-1].Name {
			return false
		}
	}
	return true
}

func (d *Directory) Stats() *monitor.OpStats {
	return d.stats
}
