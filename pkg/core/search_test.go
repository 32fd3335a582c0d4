package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebench/pkg/common"
)

func sortedDirectory(records []common.Record) *Directory {
	d := NewDirectory(records)
	QuickSort{}.Prepare(d, neverGuard{})
	return d
}

func exactSearchers(d *Directory) []Searcher {
	hash := NewHashIndex()
	hash.Prepare(d, neverGuard{})
	tree := NewTreeIndex(4)
	tree.Prepare(d, neverGuard{})
	return []Searcher{JumpSearch{}, BinarySearch{}, HashLookup{Index: hash}, TreeLookup{Index: tree}}
}

func TestSampleScenario(t *testing.T) {
	queries := []string{"Alice Smith", "Bob", "Dan"}

	linear := LinearSubstringSearch{}.Count(NewDirectory(sampleRecords()), queries)
	assert.Equal(t, 2, linear, "exact Alice Smith plus Bob as a substring of Bob Jones")

	d := sortedDirectory(sampleRecords())
	for _, s := range exactSearchers(d) {
		assert.Equal(t, 1, s.Count(d, queries), s.Name())
	}
}

func TestEmptyQuerySet(t *testing.T) {
	d := sortedDirectory(sampleRecords())
	searchers := append(exactSearchers(d), LinearSubstringSearch{})
	for _, s := range searchers {
		assert.Zero(t, s.Count(d, nil), s.Name())
	}
}

func TestSingleRecordStore(t *testing.T) {
	d := NewDirectory([]common.Record{{Phone: "1", Name: "Only One"}})
	searchers := append(exactSearchers(d), LinearSubstringSearch{})
	for _, s := range searchers {
		assert.Equal(t, 1, s.Count(d, []string{"Only One"}), s.Name())
		assert.Equal(t, 0, s.Count(d, []string{"Nobody"}), s.Name())
	}
}

func TestEmptyStore(t *testing.T) {
	d := NewDirectory(nil)
	searchers := append(exactSearchers(d), LinearSubstringSearch{})
	for _, s := range searchers {
		assert.Equal(t, 0, s.Count(d, []string{"x", ""}), s.Name())
	}
}

func TestExactSearchersAgreeOnUniqueNames(t *testing.T) {
	var records []common.Record
	for i := 0; i < 1000; i += 3 {
		records = append(records, common.Record{Phone: fmt.Sprint(i), Name: fmt.Sprintf("Person %05d", i)})
	}
	var queries []string
	for i := 0; i < 1100; i++ {
		queries = append(queries, fmt.Sprintf("Person %05d", i))
	}
	queries = append(queries, "", "Person", "Zed", "A")

	d := sortedDirectory(records)
	want := len(records)
	for _, s := range exactSearchers(d) {
		assert.Equal(t, want, s.Count(d, queries), s.Name())
	}
	assert.GreaterOrEqual(t, LinearSubstringSearch{}.Count(d, queries), want)
}

func TestExactSearchersFindEveryPosition(t *testing.T) {
	// Sizes around perfect squares move the last block boundary.
	for _, n := range []int{1, 2, 3, 4, 5, 8, 9, 10, 15, 16, 17, 24, 25, 26, 99, 100, 101} {
		records := make([]common.Record, n)
		queries := make([]string, n)
		for i := range records {
			records[i] = common.Record{Phone: fmt.Sprint(i), Name: fmt.Sprintf("k%03d", i)}
			queries[i] = records[i].Name
		}
		d := NewDirectory(records)
		assert.Equal(t, n, JumpSearch{}.Count(d, queries), "jump n=%d", n)
		assert.Equal(t, n, BinarySearch{}.Count(d, queries), "binary n=%d", n)
		assert.Equal(t, 0, JumpSearch{}.Count(d, []string{"k", "k0005x", "z"}), "jump misses n=%d", n)
	}
}

func TestLinearIsSupersetOfExact(t *testing.T) {
	records := randomRecords(t, 400, 11)
	queries := []string{"Name", "Name 00", "Name 0012", "ame 01", "nobody"}
	for _, r := range records[:50] {
		queries = append(queries, r.Name)
	}

	d := sortedDirectory(records)
	linear := LinearSubstringSearch{}.Count(d, queries)
	for _, s := range exactSearchers(d) {
		assert.LessOrEqual(t, s.Count(d, queries), linear, s.Name())
	}
}

func TestDuplicateNamesHashKeepsLastPhone(t *testing.T) {
	d := NewDirectory([]common.Record{
		{Phone: "1", Name: "Twin"},
		{Phone: "2", Name: "Other"},
		{Phone: "3", Name: "Twin"},
	})
	hash := NewHashIndex()
	hash.Prepare(d, neverGuard{})
	phone, ok := hash.Phone("Twin")
	require.True(t, ok)
	assert.Equal(t, "3", phone)
	assert.Equal(t, 2, hash.Len())

	tree := NewTreeIndex(2)
	tree.Prepare(d, neverGuard{})
	phone, ok = tree.Phone("Twin")
	require.True(t, ok)
	assert.Equal(t, "3", phone)
	assert.Equal(t, 2, tree.Len())
}

func TestHashIndexRebuiltOnPrepare(t *testing.T) {
	hash := NewHashIndex()
	hash.Prepare(NewDirectory(sampleRecords()), neverGuard{})
	require.True(t, hash.Contains("Bob Jones"))

	hash.Prepare(NewDirectory([]common.Record{{Phone: "9", Name: "Dan"}}), neverGuard{})
	assert.False(t, hash.Contains("Bob Jones"))
	assert.True(t, hash.Contains("Dan"))
}

func TestTreeIndexAscendsInOrder(t *testing.T) {
	tree := NewTreeIndex(0)
	tree.Prepare(NewDirectory(reversedRecords(20)), neverGuard{})

	var names []string
	tree.Ascend(func(name, _ string) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, sortedNames(reversedRecords(20)), names)
}

func TestJumpSearchBackwardScanFromEnd(t *testing.T) {
	// n=10, step=3: probes 0,3,6,9 all < "k9z", then scans back from index 9.
	records := make([]common.Record, 10)
	for i := range records {
		records[i] = common.Record{Phone: fmt.Sprint(i), Name: fmt.Sprintf("k%d", i)}
	}
	d := NewDirectory(records)
	assert.Equal(t, 9, jumpSearch(d, "k9"))
	assert.Equal(t, 8, jumpSearch(d, "k8"))
	assert.Equal(t, -1, jumpSearch(d, "k9z"))
	assert.Equal(t, 0, jumpSearch(d, "k0"))
	assert.Equal(t, -1, jumpSearch(d, "a"))
}
