package ecs

import "testing"

type joinPos struct{ X, Y float64 }
type joinRend struct{ Glyph rune }
type joinHP struct{ Current, Max int }

func TestJoin2YieldsExactlyTheIntersection(t *testing.T) {
	w := NewWorld()
	positions := NewDenseTable[joinPos](w)
	renderables := NewDenseTable[joinRend](w)
	healths := NewSparseTable[joinHP](w)

	both := w.Create()
	positions.Insert(both, joinPos{1, 1})
	renderables.Insert(both, joinRend{'g'})

	posOnly := w.Create()
	positions.Insert(posOnly, joinPos{2, 2})

	rendOnly := w.Create()
	renderables.Insert(rendOnly, joinRend{'x'})

	// Health presence must not influence the join.
	withHP := w.Create()
	positions.Insert(withHP, joinPos{3, 3})
	renderables.Insert(withHP, joinRend{'@'})
	healths.Insert(withHP, joinHP{3, 5})

	seen := make(map[EntityID]bool)
	Join2(positions, renderables, func(id EntityID, p *joinPos, r *joinRend) {
		if p == nil || r == nil {
			t.Fatal("join yielded nil component")
		}
		seen[id] = true
	})

	if len(seen) != 2 {
		t.Fatalf("join yielded %d entities, want 2", len(seen))
	}
	if !seen[both] || !seen[withHP] {
		t.Error("join missed an entity holding both components")
	}
	if seen[posOnly] || seen[rendOnly] {
		t.Error("join yielded an entity lacking a component")
	}
}

func TestJoin2DrivesFromEitherSide(t *testing.T) {
	// Make the sparse table the smaller side so the probe direction flips.
	w := NewWorld()
	positions := NewDenseTable[joinPos](w)
	healths := NewSparseTable[joinHP](w)

	for i := 0; i < 10; i++ {
		id := w.Create()
		positions.Insert(id, joinPos{float64(i), 0})
		if i == 4 {
			healths.Insert(id, joinHP{1, 1})
		}
	}

	count := 0
	Join2(positions, healths, func(id EntityID, p *joinPos, h *joinHP) {
		count++
		if p.X != 4 {
			t.Errorf("joined wrong entity, X = %v", p.X)
		}
	})
	if count != 1 {
		t.Errorf("join yielded %d entities, want 1", count)
	}
}

func TestJoin2InPlaceMutation(t *testing.T) {
	w := NewWorld()
	positions := NewDenseTable[joinPos](w)
	renderables := NewDenseTable[joinRend](w)

	id := w.Create()
	positions.Insert(id, joinPos{5, 3})
	renderables.Insert(id, joinRend{'@'})

	Join2(positions, renderables, func(_ EntityID, p *joinPos, _ *joinRend) {
		p.X -= 1.0
	})

	if got, _ := positions.Get(id); got.X != 4 {
		t.Errorf("mutation through join not persisted, X = %v", got.X)
	}
}

func TestJoin3(t *testing.T) {
	w := NewWorld()
	positions := NewDenseTable[joinPos](w)
	renderables := NewDenseTable[joinRend](w)
	healths := NewSparseTable[joinHP](w)

	full := w.Create()
	positions.Insert(full, joinPos{1, 2})
	renderables.Insert(full, joinRend{'@'})
	healths.Insert(full, joinHP{3, 5})

	partial := w.Create()
	positions.Insert(partial, joinPos{4, 4})
	renderables.Insert(partial, joinRend{'g'})

	count := 0
	Join3(positions, renderables, healths, func(id EntityID, p *joinPos, r *joinRend, h *joinHP) {
		count++
		if id != full {
			t.Errorf("Join3 yielded %v, want %v", id, full)
		}
		if h.Current != 3 || h.Max != 5 {
			t.Errorf("Join3 yielded wrong health %+v", *h)
		}
	})
	if count != 1 {
		t.Errorf("Join3 yielded %d entities, want 1", count)
	}
}
