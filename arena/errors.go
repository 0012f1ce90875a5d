package arena

import "errors"

var (
	// ErrOutOfMemory indicates the arena's byte budget is exhausted. It is
	// propagated unchanged through every layer built on the arena.
	ErrOutOfMemory = errors.New("arena: out of memory")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("arena: negative allocation size")

	// ErrCheckpointOrder indicates an attempt to end a checkpoint while an
	// inner checkpoint is still open. Checkpoints must end in LIFO order.
	ErrCheckpointOrder = errors.New("arena: checkpoint ended out of order")

	// ErrStaleCheckpoint indicates the arena was reset or released after the
	// checkpoint began, so its saved position is meaningless.
	ErrStaleCheckpoint = errors.New("arena: checkpoint outlived arena state")
)
