// Package vector
// Author: momentics <momentics@gmail.com>
//
// Resizable, indexable sequence container with pluggable ordering and
// cleanup, plus the structural algorithms built on its storage layout:
// shift, rotate, partition, slice, search and sort.
//
// A Vector either owns its storage (New, NewSized, Copy, Slice, Partition) or
// borrows a caller buffer (Overlay). Owned storage grows by (cap<<1)|1 on
// append and is admitted by the process allocator (see SetAllocator).
// Borrowed storage never grows and is never released by the vector.
//
// Negative indices count from the end: -1 is the last item. Sections are
// half-open [i1, i2).
//
// The destructor, when set, runs exactly once on every item that is
// irrevocably removed: Resize below length, Discard, Clear, Filter rejects,
// negative Shift, DestroyItem and Destroy. Pop, Set, Extend, Concat and
// Partition never call it.
//
// A Vector is not safe for concurrent use.
package vector
