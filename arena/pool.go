package arena

import "unsafe"

// poolMark is a pool position saved by a checkpoint: chunk index and the
// number of items handed out from that chunk.
type poolMark struct {
	chunk int
	used  int
}

// Pool allocates values of a single type in chunks whose lifetime follows
// the arena it is attached to: Reset, Release and checkpoint rewinds on the
// arena rewind the pool as well. This is how struct-shaped data gets arena
// semantics without reinterpreting raw bytes - the chunks are ordinary
// typed slices the garbage collector understands.
//
// Chunk capacity doubles as the pool grows, mirroring the arena's region
// growth, and chunk memory is charged against the arena's budget.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	a        *Arena
	chunks   [][]T
	cur      int // chunk currently allocated from
	used     int // items handed out from chunks[cur]
	elemSize int
}

// pool growth bounds, in items per chunk.
const (
	poolMinChunk = 64
	poolMaxChunk = 16 * 1024
)

// NewPool creates a pool of T attached to a.
func NewPool[T any](a *Arena) *Pool[T] {
	var zero T
	p := &Pool[T]{
		a:        a,
		elemSize: int(unsafe.Sizeof(zero)),
	}
	a.pools = append(a.pools, p)
	return p
}

// New returns a pointer to a zeroed T that lives until the owning arena is
// rewound past it. Fails only with ErrOutOfMemory.
func (p *Pool[T]) New() (*T, error) {
	if p.cur >= len(p.chunks) || p.used == cap(p.chunks[p.cur]) {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	c := p.chunks[p.cur]
	c = c[:p.used+1]
	p.chunks[p.cur] = c
	item := &c[p.used]
	p.used++
	var zero T
	*item = zero // chunks are recycled after rewinds
	return item, nil
}

// advance moves to the next chunk, growing the pool if none is linked.
func (p *Pool[T]) advance() error {
	if p.cur+1 < len(p.chunks) {
		p.cur++
		p.used = 0
		return nil
	}

	n := poolMinChunk
	if len(p.chunks) > 0 {
		n = cap(p.chunks[len(p.chunks)-1]) * 2
		if n > poolMaxChunk {
			n = poolMaxChunk
		}
	}
	if err := p.a.charge(n * p.elemSize); err != nil {
		return err
	}
	p.chunks = append(p.chunks, make([]T, 0, n))
	p.cur = len(p.chunks) - 1
	p.used = 0
	return nil
}

func (p *Pool[T]) mark() poolMark {
	return poolMark{chunk: p.cur, used: p.used}
}

func (p *Pool[T]) rewindTo(m poolMark) {
	p.cur = m.chunk
	p.used = m.used
	if p.cur < len(p.chunks) {
		p.chunks[p.cur] = p.chunks[p.cur][:p.used]
	}
}

func (p *Pool[T]) rewindAll() {
	for i := range p.chunks {
		p.chunks[i] = p.chunks[i][:0]
	}
	p.cur = 0
	p.used = 0
}

func (p *Pool[T]) drop() {
	p.chunks = nil
	p.cur = 0
	p.used = 0
}
