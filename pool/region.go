// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Region is a block of memory owned outside any container. It is meant as
// backing store for overlay vectors: the region lends its slots, the overlay
// never frees them, and the region's owner unmaps it once the overlay is gone.

package pool

import (
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/momentics/hiovec/api"
)

// Region is an anonymous memory mapping (or a heap fallback) of fixed size.
type Region struct {
	data     []byte
	slotSize int
	mapped   bool
}

// MapRegion maps room for slots items of slotSize bytes each.
func MapRegion(slots, slotSize int) (*Region, error) {
	if slots <= 0 || slotSize <= 0 {
		return nil, errors.Wrapf(api.ErrInvalidArgument, "region %d x %d bytes", slots, slotSize)
	}
	data, mapped, err := mapAnon(slots * slotSize)
	if err != nil {
		return nil, errors.Wrap(err, "map region")
	}
	return &Region{data: data, slotSize: slotSize, mapped: mapped}, nil
}

// Bytes exposes the raw memory.
func (r *Region) Bytes() []byte { return r.data }

// Slots returns how many items of the region's slot size fit.
func (r *Region) Slots() int {
	if r.slotSize == 0 {
		return 0
	}
	return len(r.data) / r.slotSize
}

// Mapped reports whether the region came from the OS rather than the heap.
func (r *Region) Mapped() bool { return r.mapped }

// Close releases the memory. Slices obtained from the region must not be
// used afterwards.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	if !r.mapped {
		return nil
	}
	return unmapAnon(data)
}

// RegionSlots views the region as item slots. T must be pointer-free and its
// size must equal the region's slot size; the garbage collector does not scan
// mapped memory.
func RegionSlots[T any](r *Region) ([]T, error) {
	var zero T
	if int(unsafe.Sizeof(zero)) != r.slotSize {
		return nil, errors.Wrapf(api.ErrInvalidArgument,
			"slot size %d does not match item size %d", r.slotSize, unsafe.Sizeof(zero))
	}
	n := r.Slots()
	if n == 0 {
		return nil, errors.Wrap(api.ErrInvalidArgument, "region is closed")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(r.data))), n), nil
}
