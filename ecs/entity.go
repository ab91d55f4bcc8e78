package ecs

// EntityID packs a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation is bumped when the slot is
// destroyed, so stale ids fail every lookup without any extra bookkeeping.
type EntityID uint64

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index portion of the id.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the generation portion of the id.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// entityPool allocates entity slots with generational indices and a free list.
type entityPool struct {
	generations []uint32
	freeList    []uint32
	nextIndex   uint32
}

func newEntityPool() *entityPool {
	return &entityPool{
		generations: make([]uint32, 0, 256),
		freeList:    make([]uint32, 0, 64),
	}
}

func (p *entityPool) create() EntityID {
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return newEntityID(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	if int(idx) >= len(p.generations) {
		p.generations = append(p.generations, 0)
	}
	return newEntityID(idx, p.generations[idx])
}

func (p *entityPool) alive(id EntityID) bool {
	idx := id.Index()
	if idx >= p.nextIndex {
		return false
	}
	return p.generations[idx] == id.Generation()
}

// invalidate bumps the slot's generation so the id is dead immediately.
// The slot itself is only recycled once free is called, which lets the
// caller defer storage reclamation to a sync point.
func (p *entityPool) invalidate(id EntityID) bool {
	idx := id.Index()
	if idx >= p.nextIndex {
		return false
	}
	if p.generations[idx] != id.Generation() {
		return false // already destroyed (stale reference)
	}
	p.generations[idx]++
	return true
}

func (p *entityPool) free(index uint32) {
	p.freeList = append(p.freeList, index)
}
