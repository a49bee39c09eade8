package board

// MovePool recycles Move instances per kind so the search can discard
// candidate boards without feeding the garbage collector. A pool belongs
// to a single search goroutine and must never be shared between
// concurrent searches. A move handed back with Release must never be
// touched again; the pool will reuse it.
type MovePool struct {
	free   [moveKindCount][]*Move
	hits   uint64
	misses uint64
}

// NewMovePool returns an empty pool.
func NewMovePool() *MovePool {
	return &MovePool{}
}

// Acquire returns a move of the given kind, recycled when one is
// available and freshly allocated (counted as a miss) otherwise.
func (mp *MovePool) Acquire(kind MoveKind) *Move {
	if list := mp.free[kind]; len(list) > 0 {
		m := list[len(list)-1]
		mp.free[kind] = list[:len(list)-1]
		m.reset()
		m.kind = kind
		mp.hits++
		return m
	}
	mp.misses++
	m := &Move{}
	m.reset()
	m.kind = kind
	return m
}

// Release hands a move back for reuse.
func (mp *MovePool) Release(m *Move) {
	mp.free[m.kind] = append(mp.free[m.kind], m)
}

// Hits returns how many acquisitions were served from the free lists.
func (mp *MovePool) Hits() uint64 {
	return mp.hits
}

// Misses returns how many acquisitions had to allocate.
func (mp *MovePool) Misses() uint64 {
	return mp.misses
}

// Size returns the number of moves currently held by the pool.
func (mp *MovePool) Size() int {
	n := 0
	for _, list := range mp.free {
		n += len(list)
	}
	return n
}

// acquireMove acquires from mp, falling back to plain allocation for
// boards that carry no pool.
func acquireMove(mp *MovePool, kind MoveKind) *Move {
	if mp == nil {
		m := &Move{}
		m.reset()
		m.kind = kind
		return m
	}
	return mp.Acquire(kind)
}
