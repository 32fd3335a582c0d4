package core

// Preprocessor prepares the directory before a search phase. Label is the
// word used when reporting the phase ("Sorting" or "Creating").
type Preprocessor interface {
	Name() string
	Label() string
	Prepare(d *Directory, guard Guard)
}

// Guard is polled by long-running preprocessing to decide whether to give up.
type Guard interface {
	Exceeded() bool
}

// NoSort leaves the directory untouched; the runner reports no preprocessing.
type NoSort struct{}

func (NoSort) Name() string  { return "none" }
func (NoSort) Label() string { return "Sorting" }

func (NoSort) Prepare(_ *Directory, _ Guard) {}

// BubbleSort repeats adjacent-swap passes until a pass swaps nothing. The guard
// is checked after every comparison and the sort returns as soon as it fires,
// leaving the directory partially sorted.
type BubbleSort struct{}

func (BubbleSort) Name() string  { return "bubble sort" }
func (BubbleSort) Label() string { return "Sorting" }

func (BubbleSort) Prepare(d *Directory, guard Guard) {
	for {
		swapped := false
		for i := 1; i < d.Len(); i++ {
			if d.Greater(i-1, i) {
				d.Swap(i-1, i)
				swapped = true
			}
			if guard.Exceeded() {
				return
			}
		}
		if !swapped {
			return
		}
	}
}

// QuickSort sorts recursively over [start, end) index ranges.
type QuickSort struct{}

func (QuickSort) Name() string  { return "quick sort" }
func (QuickSort) Label() string { return "Sorting" }

func (QuickSort) Prepare(d *Directory, _ Guard) {
	quickSort(d, 0, d.Len())
}

func quickSort(d *Directory, start, end int) {
	if end-start < 2 {
		return
	}
	i := partition(d, start, end-1)
	quickSort(d, start, i)
	quickSort(d, i+1, end)
}

// partition works on the inclusive range [lo, hi]. The right pointer walks
// left until it finds a name smaller than the one under the left pointer and
// swaps; then the left pointer walks right until it finds a name greater than
// the one under the right pointer and swaps. The pointers meet on the pivot's
// final position.
func partition(d *Directory, lo, hi int) int {
	for lo < hi {
		for lo < hi {
			if d.Greater(lo, hi) {
				d.Swap(lo, hi)
				break
			}
			hi--
		}
		for lo < hi {
			if d.Greater(lo, hi) {
				d.Swap(lo, hi)
				break
			}
			lo++
		}
	}
	return lo
}
