// Package arena provides a region-based bump allocator with O(1) bulk release.
//
// # Overview
//
// An Arena owns a chain of byte regions and hands out aligned chunks by
// advancing a bump pointer. Individual chunks are never freed; everything an
// arena has produced dies together when the arena is reset, released, or when
// a checkpoint that predates it is ended. This trades per-object lifetime for
// allocation speed and makes repeated parse/serialize cycles nearly
// allocation-free after warm-up.
//
// # Allocation Strategy
//
// Alloc first tries to fit the request in the current region after alignment
// padding. On overflow it walks forward through regions that were linked by a
// previous cycle but are currently unused, adopting the first one large
// enough and discarding the ones that are too small (they could never satisfy
// a future larger request and would otherwise be retained forever). Only when
// no linked region fits is a new region created, sized at
//
//	max(2 x current capacity, request + alignment, DefaultRegionSize)
//
// so capacity grows geometrically while Reset keeps the regions around for
// the next cycle.
//
// # Checkpoints
//
// Begin captures the current region and its used byte count; End rewinds to
// that mark. Checkpoints nest strictly LIFO and End reports
// ErrCheckpointOrder when scopes are closed out of order:
//
//	cp := a.Begin()
//	defer cp.End()
//	// temporary allocations...
//
// # Budget and Failure
//
// An arena may carry a byte budget (WithLimit). Allocations that would exceed
// it fail with ErrOutOfMemory, which callers are expected to propagate
// unchanged; this is the only failure mode an arena has.
//
// # Staleness
//
// Reset and Release bump the arena generation. Code that hands out references
// to arena-backed data records the generation at creation time and compares
// it later, turning use-after-reset from silent corruption into an explicit
// error. See Pool and the ast package for how this is applied.
//
// An Arena is not safe for concurrent use.
package arena
