package ecs

// Table is the storage contract shared by every component backing. The
// backing is chosen per component type when the table is constructed; the
// choice changes performance characteristics only, never query results.
type Table[T any] interface {
	// Insert attaches or overwrites the component on id. Inserting on a
	// dead id is silently ignored.
	Insert(id EntityID, v T)
	// Get returns a pointer to the component, or false if id is dead or
	// does not carry it. Absence is not an error.
	Get(id EntityID) (*T, bool)
	// Remove detaches the component from id. No-op when absent.
	Remove(id EntityID)
	Has(id EntityID) bool
	Len() int
	// Each visits every (entity, component) pair in the table. Callers
	// must not insert into or remove from the table while iterating;
	// mutating the component value in place is fine.
	Each(fn func(EntityID, *T))
}

// removable lets the world strip a destroyed entity from every table
// without knowing the component types.
type removable interface {
	Remove(id EntityID)
}

// DenseTable stores components in slot-indexed slices. Lookup is O(1) and
// iteration is cache-friendly at the cost of one slot per live entity,
// carried or not. Suited to components nearly every entity has.
type DenseTable[T any] struct {
	world   *World
	data    []T
	ids     []EntityID
	present []bool
	count   int
}

// NewDenseTable creates a dense table and registers it with the world so
// destroyed entities are purged from it on Maintain.
func NewDenseTable[T any](w *World) *DenseTable[T] {
	t := &DenseTable[T]{world: w}
	w.register(t)
	return t
}

func (t *DenseTable[T]) grow(idx uint32) {
	for int(idx) >= len(t.data) {
		var zero T
		t.data = append(t.data, zero)
		t.ids = append(t.ids, 0)
		t.present = append(t.present, false)
	}
}

func (t *DenseTable[T]) Insert(id EntityID, v T) {
	if !t.world.Alive(id) {
		return
	}
	idx := id.Index()
	t.grow(idx)
	if !t.present[idx] {
		t.count++
	}
	t.data[idx] = v
	t.ids[idx] = id
	t.present[idx] = true
}

func (t *DenseTable[T]) Get(id EntityID) (*T, bool) {
	if !t.world.Alive(id) {
		return nil, false
	}
	idx := id.Index()
	if int(idx) >= len(t.present) || !t.present[idx] || t.ids[idx] != id {
		return nil, false
	}
	return &t.data[idx], true
}

func (t *DenseTable[T]) Remove(id EntityID) {
	idx := id.Index()
	if int(idx) >= len(t.present) || !t.present[idx] || t.ids[idx] != id {
		return
	}
	var zero T
	t.data[idx] = zero
	t.present[idx] = false
	t.count--
}

func (t *DenseTable[T]) Has(id EntityID) bool {
	_, ok := t.Get(id)
	return ok
}

func (t *DenseTable[T]) Len() int { return t.count }

func (t *DenseTable[T]) Each(fn func(EntityID, *T)) {
	for idx := range t.data {
		if t.present[idx] {
			fn(t.ids[idx], &t.data[idx])
		}
	}
}

// SparseTable stores components in a hash map, so memory stays
// proportional to the entities actually carrying the component. Suited to
// components most entities lack.
type SparseTable[T any] struct {
	world *World
	data  map[EntityID]*T
}

// NewSparseTable creates a sparse table and registers it with the world so
// destroyed entities are purged from it on Maintain.
func NewSparseTable[T any](w *World) *SparseTable[T] {
	t := &SparseTable[T]{
		world: w,
		data:  make(map[EntityID]*T, 64),
	}
	w.register(t)
	return t
}

func (t *SparseTable[T]) Insert(id EntityID, v T) {
	if !t.world.Alive(id) {
		return
	}
	t.data[id] = &v
}

func (t *SparseTable[T]) Get(id EntityID) (*T, bool) {
	if !t.world.Alive(id) {
		return nil, false
	}
	c, ok := t.data[id]
	return c, ok
}

func (t *SparseTable[T]) Remove(id EntityID) {
	delete(t.data, id)
}

func (t *SparseTable[T]) Has(id EntityID) bool {
	_, ok := t.Get(id)
	return ok
}

func (t *SparseTable[T]) Len() int { return len(t.data) }

func (t *SparseTable[T]) Each(fn func(EntityID, *T)) {
	for id, c := range t.data {
		fn(id, c)
	}
}
