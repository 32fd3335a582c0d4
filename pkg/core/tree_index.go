package core

import (
	"github.com/google/btree"
)

type nameItem struct {
	Name  string
	Phone string
}

func (i nameItem) Less(than btree.Item) bool {
	return i.Name < than.(nameItem).Name
}

// TreeIndex keeps names in a B-tree. Like HashIndex, a repeated name keeps the
// phone of its last occurrence.
type TreeIndex struct {
	degree int
	tree   *btree.BTree
}

func NewTreeIndex(degree int) *TreeIndex {
	if degree < 2 {
		degree = 32
	}
	return &TreeIndex{
		degree: degree,
		tree:   btree.New(degree),
	}
}

func (t *TreeIndex) Name() string  { return "b-tree" }
func (t *TreeIndex) Label() string { return "Creating" }

func (t *TreeIndex) Prepare(d *Directory, _ Guard) {
	t.tree = btree.New(t.degree)
	for i := 0; i < d.Len(); i++ {
		rec := d.At(i)
		t.tree.ReplaceOrInsert(nameItem{Name: rec.Name, Phone: rec.Phone})
	}
}

func (t *TreeIndex) Contains(name string) bool {
	return t.tree.Has(nameItem{Name: name})
}

func (t *TreeIndex) Phone(name string) (string, bool) {
	res := t.tree.Get(nameItem{Name: name})
	if res == nil {
		return "", false
	}
	return res.(nameItem).Phone, true
}

func (t *TreeIndex) Len() int {
	return t.tree.Len()
}

// Ascend visits names in order until fn returns false.
func (t *TreeIndex) Ascend(fn func(name, phone string) bool) {
	t.tree.Ascend(func(i btree.Item) bool {
		item := i.(nameItem)
		return fn(item.Name, item.Phone)
	})
}

// TreeLookup tests membership in the index built by its TreeIndex.
type TreeLookup struct {
	Index *TreeIndex
}

func (TreeLookup) Name() string { return "b-tree lookup" }

func (l TreeLookup) Count(_ *Directory, queries []string) int {
	count := 0
	for _, q := range queries {
		if l.Index.Contains(q) {
			count++
		}
	}
	return count
}
