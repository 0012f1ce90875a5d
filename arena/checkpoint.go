package arena

// Checkpoint is a saved arena position. Ending a checkpoint rewinds the
// arena (and every attached pool) to where it was when Begin was called,
// which is a much cheaper way to discard temporary allocations than a full
// Reset.
//
// Checkpoints nest strictly LIFO. End verifies the nesting depth and refuses
// to rewind out of order, since an out-of-order rewind would silently
// corrupt the bookkeeping of the scopes still open.
type Checkpoint struct {
	a     *Arena
	cur   int
	used  int
	none  bool // arena had no regions at Begin
	gen   uint64
	depth int
	marks []poolMark
	ended bool
}

// Begin captures the current allocation position.
//
// The usual shape is:
//
//	cp := a.Begin()
//	defer cp.End()
func (a *Arena) Begin() *Checkpoint {
	a.depth++
	cp := &Checkpoint{
		a:     a,
		gen:   a.gen,
		depth: a.depth,
	}
	if len(a.regions) == 0 {
		cp.none = true
	} else {
		cp.cur = a.cur
		cp.used = a.regions[a.cur].used
	}
	if len(a.pools) > 0 {
		cp.marks = make([]poolMark, len(a.pools))
		for i, p := range a.pools {
			cp.marks[i] = p.mark()
		}
	}
	return cp
}

// End rewinds the arena to the position captured by Begin. Allocations made
// since Begin are dead afterwards; regions stay linked for reuse.
//
// End returns ErrCheckpointOrder if an inner checkpoint is still open, and
// ErrStaleCheckpoint if the arena was reset or released since Begin (the
// saved position no longer describes anything). Ending the same checkpoint
// twice is a no-op.
func (cp *Checkpoint) End() error {
	if cp.ended {
		return nil
	}
	a := cp.a
	if a.gen != cp.gen {
		cp.ended = true
		return ErrStaleCheckpoint
	}
	if a.depth != cp.depth {
		return ErrCheckpointOrder
	}
	cp.ended = true
	a.depth--

	if cp.none {
		if len(a.regions) > 0 {
			a.cur = 0
			a.regions[0].used = 0
		}
	} else {
		a.cur = cp.cur
		a.regions[a.cur].used = cp.used
	}
	for i, p := range a.pools {
		if i < len(cp.marks) {
			p.rewindTo(cp.marks[i])
		} else {
			// Pool attached while the scope was open: it had nothing
			// before Begin, so everything in it belongs to the scope.
			p.rewindAll()
		}
	}
	return nil
}
