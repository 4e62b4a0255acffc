/*
Package arena provides a slot pool with stable handles.

Items live in a single growable slice and are addressed by a Handle, an index
into that slice. Handles stay valid across growth of the backing slice, which
makes them suitable as links in intrusive lists: a node may point to its
neighbors and to its owner without holding Go pointers into memory that may be
re-allocated. Reclaimed slots are kept on a free-list and reused before the
slice is grown. Every slot carries a generation, bumped on release, which
lets holders of a handle tell a re-used slot from their own allocation.

Slot 0 is reserved, so that the zero Handle (Nil) never denotes a live item.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import "fmt"

// Handle addresses a slot of a Pool.
type Handle uint32

// Nil is the handle which never refers to an item.
const Nil Handle = 0

// IsNil reports whether h is the Nil handle.
func (h Handle) IsNil() bool {
	return h == Nil
}

type slot[T any] struct {
	item T
	live bool
	gen  uint32 // incremented whenever the slot is released
}

// Pool is an arena of items of type T.
//
// The empty instance is a valid pool.
type Pool[T any] struct {
	slots []slot[T]
	free  []Handle
	live  int
}

// Alloc reserves a slot holding the zero value of T and returns its handle.
//
// Pointers obtained from At may be invalidated by Alloc.
func (p *Pool[T]) Alloc() Handle {
	if len(p.slots) == 0 {
		p.slots = append(p.slots, slot[T]{})
	}
	var h Handle
	if n := len(p.free); n > 0 {
		h = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		h = Handle(len(p.slots))
		if len(p.slots) < cap(p.slots) {
			// slot left over from Reset, keep its generation
			p.slots = p.slots[:h+1]
		} else {
			p.slots = append(p.slots, slot[T]{})
		}
	}
	p.slots[h].live = true
	p.live++
	return h
}

// Free releases the slot of h. The item is reset to the zero value of T, so
// that the pool does not keep references to garbage.
func (p *Pool[T]) Free(h Handle) {
	if !p.Live(h) {
		panic(fmt.Sprintf("arena: free of non-live handle %d", h))
	}
	p.slots[h] = slot[T]{gen: p.slots[h].gen + 1}
	p.free = append(p.free, h)
	p.live--
}

// At returns a pointer to the item of a live handle. It panics for handles
// which are Nil, out of range or freed.
func (p *Pool[T]) At(h Handle) *T {
	if !p.Live(h) {
		panic(fmt.Sprintf("arena: access to non-live handle %d", h))
	}
	return &p.slots[h].item
}

// Live reports whether h currently refers to an allocated slot.
func (p *Pool[T]) Live(h Handle) bool {
	return p != nil && h != Nil && int(h) < len(p.slots) && p.slots[h].live
}

// Gen returns the generation of the slot of h. A slot's generation changes
// every time it is released, so a pair of handle and generation identifies
// one allocation. Gen returns 0 for handles out of range.
func (p *Pool[T]) Gen(h Handle) uint32 {
	if p == nil || h == Nil || int(h) >= len(p.slots) {
		return 0
	}
	return p.slots[h].gen
}

// Holds reports whether h is live and still carries the allocation of
// generation gen.
func (p *Pool[T]) Holds(h Handle, gen uint32) bool {
	return p.Live(h) && p.slots[h].gen == gen
}

// Len returns the number of live items.
func (p *Pool[T]) Len() int {
	if p == nil {
		return 0
	}
	return p.live
}

// Reset frees every slot at once. Storage is retained for re-use.
func (p *Pool[T]) Reset() {
	for i := range p.slots {
		p.slots[i] = slot[T]{gen: p.slots[i].gen + 1}
	}
	if len(p.slots) > 0 {
		p.slots = p.slots[:1]
	}
	p.free = p.free[:0]
	p.live = 0
}

// Each calls f for every live handle in ascending slot order, until f
// returns false.
func (p *Pool[T]) Each(f func(Handle, *T) bool) {
	for i := 1; i < len(p.slots); i++ {
		if !p.slots[i].live {
			continue
		}
		if !f(Handle(i), &p.slots[i].item) {
			return
		}
	}
}
