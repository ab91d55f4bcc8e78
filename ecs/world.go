package ecs

// World owns the entity pool, the set of registered component tables, and
// a deferred destruction queue. Destruction is two-phase: Destroy kills
// the id immediately, Maintain reclaims storage and recycles the slot.
// Maintain must run once per frame, after all mutation and never while a
// join is iterating the tables.
type World struct {
	pool         *entityPool
	tables       []removable
	destroyQueue []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         newEntityPool(),
		tables:       make([]removable, 0, 8),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

func (w *World) register(t removable) {
	w.tables = append(w.tables, t)
}

// Create allocates a fresh entity id, recycling a dead slot with a bumped
// generation when one is available. O(1) amortized.
func (w *World) Create() EntityID {
	return w.pool.create()
}

// Alive reports whether id refers to a live entity.
func (w *World) Alive(id EntityID) bool {
	return w.pool.alive(id)
}

// Destroy marks id dead. Lookups fail from this point on; the entity's
// component storage is reclaimed by the next Maintain. Destroying a dead
// or stale id is a no-op.
func (w *World) Destroy(id EntityID) {
	if !w.pool.invalidate(id) {
		return
	}
	w.destroyQueue = append(w.destroyQueue, id)
}

// Maintain purges queued destructions: every registered table drops the
// entity's row and the slot returns to the free list for reuse.
func (w *World) Maintain() {
	for _, id := range w.destroyQueue {
		for _, t := range w.tables {
			t.Remove(id)
		}
		w.pool.free(id.Index())
	}
	w.destroyQueue = w.destroyQueue[:0]
}
