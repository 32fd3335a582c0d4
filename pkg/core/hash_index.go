package core

// HashIndex maps name to phone. It is rebuilt from the directory on every
// Prepare; when names repeat, the later record wins.
type HashIndex struct {
	table map[string]string
}

func NewHashIndex() *HashIndex {
	return &HashIndex{table: make(map[string]string)}
}

func (h *HashIndex) Name() string  { return "hash table" }
func (h *HashIndex) Label() string { return "Creating" }

func (h *HashIndex) Prepare(d *Directory, _ Guard) {
	h.table = make(map[string]string, d.Len())
	for i := 0; i < d.Len(); i++ {
		rec := d.At(i)
		h.table[rec.Name] = rec.Phone
	}
}

func (h *HashIndex) Contains(name string) bool {
	_, ok := h.table[name]
	return ok
}

func (h *HashIndex) Phone(name string) (string, bool) {
	phone, ok := h.table[name]
	return phone, ok
}

func (h *HashIndex) Len() int {
	return len(h.table)
}
