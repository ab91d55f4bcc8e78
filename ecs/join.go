package ecs

// Join2 visits exactly the entities present in both tables, yielding a
// pointer into each. It drives from the smaller table and probes the
// larger one. The visit order is unspecified but stable for the duration
// of one call. Callers must not insert into or remove from either table
// while the join runs; mutating the yielded components in place is fine.
func Join2[A, B any](ta Table[A], tb Table[B], fn func(EntityID, *A, *B)) {
	if ta.Len() <= tb.Len() {
		ta.Each(func(id EntityID, a *A) {
			if b, ok := tb.Get(id); ok {
				fn(id, a, b)
			}
		})
		return
	}
	tb.Each(func(id EntityID, b *B) {
		if a, ok := ta.Get(id); ok {
			fn(id, a, b)
		}
	})
}

// Join3 visits exactly the entities present in all three tables. Same
// iteration contract as Join2.
func Join3[A, B, C any](ta Table[A], tb Table[B], tc Table[C], fn func(EntityID, *A, *B, *C)) {
	smallest := ta.Len()
	which := 0
	if tb.Len() < smallest {
		smallest = tb.Len()
		which = 1
	}
	if tc.Len() < smallest {
		which = 2
	}

	switch which {
	case 0:
		ta.Each(func(id EntityID, a *A) {
			if b, ok := tb.Get(id); ok {
				if c, ok := tc.Get(id); ok {
					fn(id, a, b, c)
				}
			}
		})
	case 1:
		tb.Each(func(id EntityID, b *B) {
			if a, ok := ta.Get(id); ok {
				if c, ok := tc.Get(id); ok {
					fn(id, a, b, c)
				}
			}
		})
	case 2:
		tc.Each(func(id EntityID, c *C) {
			if a, ok := ta.Get(id); ok {
				if b, ok := tb.Get(id); ok {
					fn(id, a, b, c)
				}
			}
		})
	}
}
