package arena

const (
	// DefaultRegionSize is the capacity of the first region an arena creates
	// when no larger request forces a bigger one.
	DefaultRegionSize = 8 * 1024

	// Alignment is the alignment of every returned chunk: twice the pointer
	// width, matching what a general-purpose allocator would guarantee.
	Alignment = 16
)

// region is one contiguous block in the arena chain. Regions at indexes
// beyond cur are linked but currently unused; they are candidates for
// adoption on the next overflow.
type region struct {
	buf  []byte // len(buf) == capacity
	used int    // bytes handed out, including alignment padding
}

// Arena hands out aligned chunks from a chain of growable regions.
// The zero value is ready to use and carries no byte budget.
type Arena struct {
	regions []*region
	cur     int // index of the region allocations come from; valid only if len(regions) > 0

	limit   int // cap on acquired region/chunk capacity; 0 = unlimited
	charged int // capacity currently acquired from the runtime

	gen   uint64
	depth int // open checkpoint count, for LIFO enforcement

	pools []rewinder
}

// rewinder is implemented by typed pools attached to this arena so that
// Reset, Release and checkpoint rewinds reach them too.
type rewinder interface {
	mark() poolMark
	rewindTo(poolMark)
	rewindAll()
	drop()
}

// New returns an empty arena with no budget.
func New() *Arena {
	return &Arena{}
}

// WithLimit returns an arena that refuses to acquire more than limit bytes
// of region capacity, failing allocations with ErrOutOfMemory instead. This
// is the explicit stand-in for system memory exhaustion: Reset keeps regions
// and therefore keeps their budget charge, while Release and region
// discarding refund it.
func WithLimit(limit int) *Arena {
	return &Arena{limit: limit}
}

// Gen returns the arena generation. Reset and Release increment it; holders
// of arena-backed references compare generations to detect staleness.
func (a *Arena) Gen() uint64 { return a.gen }

// charge applies the capacity budget. Pools route their chunk growth through
// this too, so one limit governs everything the arena owns.
func (a *Arena) charge(n int) error {
	if a.limit > 0 && a.charged+n > a.limit {
		return ErrOutOfMemory
	}
	a.charged += n
	return nil
}

func (a *Arena) refund(n int) {
	a.charged -= n
}

// Alloc returns an Alignment-aligned chunk of exactly size bytes. A zero
// size returns nil with no error. The chunk is valid until the arena is
// reset or released, or until a checkpoint opened before the allocation is
// ended. Contents are unspecified; regions are recycled across cycles.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if size == 0 {
		return nil, nil
	}

	if len(a.regions) == 0 {
		c := DefaultRegionSize
		if size+Alignment > c {
			c = size + Alignment
		}
		if err := a.charge(c); err != nil {
			return nil, err
		}
		a.regions = append(a.regions, &region{buf: make([]byte, c)})
		a.cur = 0
	}

	r := a.regions[a.cur]
	padding := padFor(r.used)

	if r.used+padding+size > len(r.buf) {
		var err error
		if r, err = a.overflow(size); err != nil {
			return nil, err
		}
		padding = padFor(r.used)
	}

	off := r.used + padding
	r.used = off + size
	return r.buf[off : off+size : off+size], nil
}

// AllocZero is Alloc with zeroed contents.
func (a *Arena) AllocZero(size int) ([]byte, error) {
	b, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	clear(b)
	return b, nil
}

// overflow advances to a region that can hold size bytes, reusing linked
// regions from earlier cycles when possible. Regions that are too small to
// adopt are dropped on the spot: a request that did not fit them now can
// only be followed by requests they also cannot serve from empty, and
// keeping them would retain their capacity forever.
func (a *Arena) overflow(size int) (*region, error) {
	needed := size + Alignment

	for a.cur+1 < len(a.regions) {
		next := a.regions[a.cur+1]
		if len(next.buf) >= needed {
			a.cur++
			next.used = 0
			return next, nil
		}
		a.refund(len(next.buf))
		a.regions = append(a.regions[:a.cur+1], a.regions[a.cur+2:]...)
	}

	newCap := len(a.regions[a.cur].buf) * 2
	if needed > newCap {
		newCap = needed
	}
	if newCap < DefaultRegionSize {
		newCap = DefaultRegionSize
	}
	if err := a.charge(newCap); err != nil {
		return nil, err
	}

	r := &region{buf: make([]byte, newCap)}
	a.regions = append(a.regions, r)
	a.cur++
	return r, nil
}

// Reset rewinds the arena to its first region without returning any memory
// to the runtime, so the next cycle reuses the capacity already linked.
// Everything allocated before the call is dead; the generation is bumped so
// generation-checking consumers notice. Open checkpoints are voided.
func (a *Arena) Reset() {
	if len(a.regions) > 0 {
		a.cur = 0
		a.regions[0].used = 0
	}
	for _, p := range a.pools {
		p.rewindAll()
	}
	a.gen++
	a.depth = 0
}

// Release drops every region and pool chunk. The arena is empty afterwards
// and may be reused; the first allocation builds a fresh chain.
func (a *Arena) Release() {
	a.regions = nil
	a.cur = 0
	a.charged = 0
	for _, p := range a.pools {
		p.drop()
	}
	a.gen++
	a.depth = 0
}

func padFor(used int) int {
	if rem := used & (Alignment - 1); rem != 0 {
		return Alignment - rem
	}
	return 0
}
