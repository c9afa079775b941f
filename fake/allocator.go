// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocator and destructor recorder for testing.

package fake

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/momentics/hiovec/api"
)

// Call records one allocator invocation.
type Call struct {
	Op       string // "allocate", "reallocate" or "release"
	OldSlots int
	Slots    int
}

// Allocator is a scriptable api.Allocator. It admits requests until SetFail
// switches refusal on or SetFailAfter's countdown of admitted requests runs
// out.
type Allocator struct {
	mu        sync.Mutex
	fail      bool
	failAfter int // zero disables the countdown
	admitted  int
	calls     []Call
}

// NewAllocator creates an allocator admitting everything.
func NewAllocator() *Allocator { return &Allocator{} }

func (a *Allocator) admit(c Call) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, c)
	if a.fail || (a.failAfter > 0 && a.admitted >= a.failAfter) {
		return errors.Newf("fake: %s of %d slots refused", c.Op, c.Slots)
	}
	a.admitted++
	return nil
}

func (a *Allocator) Allocate(slots int) error {
	return a.admit(Call{Op: "allocate", Slots: slots})
}

func (a *Allocator) Reallocate(oldSlots, newSlots int) error {
	return a.admit(Call{Op: "reallocate", OldSlots: oldSlots, Slots: newSlots})
}

func (a *Allocator) Release(slots int) {
	a.mu.Lock()
	a.calls = append(a.calls, Call{Op: "release", Slots: slots})
	a.mu.Unlock()
}

// SetFail switches refusal on or off.
func (a *Allocator) SetFail(fail bool) {
	a.mu.Lock()
	a.fail = fail
	a.mu.Unlock()
}

// SetFailAfter refuses every request once n more have been admitted. Zero
// disables the countdown.
func (a *Allocator) SetFailAfter(n int) {
	a.mu.Lock()
	if n > 0 {
		a.failAfter = a.admitted + n
	} else {
		a.failAfter = 0
	}
	a.mu.Unlock()
}

// Calls returns a copy of the recorded invocations.
func (a *Allocator) Calls() []Call {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Call, len(a.calls))
	copy(out, a.calls)
	return out
}

// Count returns how many invocations of op were recorded.
func (a *Allocator) Count(op string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, c := range a.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

var _ api.Allocator = (*Allocator)(nil)
