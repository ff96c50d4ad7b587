package model

import (
	"sync/atomic"
)

// Gate admits one operation at a time. The zero value is open and usable.
// Concurrency-safe via atomic Bool because the owning operation releases it
// from whichever goroutine finishes the work.
type Gate struct{ busy atomic.Bool }

// TryAcquire closes the gate and reports whether the caller got it.
func (g *Gate) TryAcquire() bool {
	if g == nil {
		return false
	}
	return g.busy.CompareAndSwap(false, true)
}

// Release reopens the gate.
func (g *Gate) Release() {
	if g == nil {
		return
	}
	g.busy.Store(false)
}

// Busy reports whether an operation holds the gate.
func (g *Gate) Busy() bool {
	if g == nil {
		return false
	}
	return g.busy.Load()
}
