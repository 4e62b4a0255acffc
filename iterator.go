package deque

import (
	"fmt"
	"math"

	"github.com/npillmayer/deque/arena"
)

// Iterator is a position within a deque: a pair of the deque's identity and a
// node allocation. The end position refers to the sentinel node.
//
// Iterators are values; navigation returns new iterators and leaves the
// receiver unchanged. The zero Iterator is invalid for every deque.
type Iterator[T any] struct {
	dq    *Deque[T]
	id    uint64
	epoch uint64
	nd    arena.Handle
	gen   uint32 // generation of nd's slot when the iterator was created
}

// ConstIterator is a read-only position within a deque.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (it Iterator[T]) check() error {
	if it.dq == nil {
		return fmt.Errorf("%w: iterator not initialized", ErrInvalidIterator)
	}
	return it.dq.owns(it)
}

func (it Iterator[T]) moved(n arena.Handle) Iterator[T] {
	it.nd = n
	it.gen = it.dq.ch.nodes.Gen(n)
	return it
}

// Value returns the element the iterator points to.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if err := it.check(); err != nil {
		return zero, err
	}
	nd := it.dq.ch.node(it.nd)
	if !nd.filled {
		return zero, fmt.Errorf("%w: dereference of end position", ErrInvalidIterator)
	}
	return nd.value, nil
}

// Set replaces the element the iterator points to.
func (it Iterator[T]) Set(value T) error {
	if err := it.check(); err != nil {
		return err
	}
	nd := it.dq.ch.node(it.nd)
	if !nd.filled {
		return fmt.Errorf("%w: dereference of end position", ErrInvalidIterator)
	}
	nd.value = value
	return nil
}

// Add returns an iterator n positions further towards the end. n may be
// negative. Moving beyond End() is an error.
func (it Iterator[T]) Add(n int) (Iterator[T], error) {
	if n == math.MinInt {
		return Iterator[T]{}, fmt.Errorf("%w: moving %d positions", ErrInvalidIterator, n)
	} else if n < 0 {
		return it.Sub(-n)
	}
	if err := it.check(); err != nil {
		return Iterator[T]{}, err
	}
	target, ok := it.dq.ch.forward(it.nd, n)
	if !ok {
		return Iterator[T]{}, fmt.Errorf("%w: moving %d positions past the end", ErrInvalidIterator, n)
	}
	return it.moved(target), nil
}

// Sub returns an iterator n positions further towards the front. n may be
// negative. Moving before Begin() is an error.
func (it Iterator[T]) Sub(n int) (Iterator[T], error) {
	if n == math.MinInt {
		return Iterator[T]{}, fmt.Errorf("%w: moving %d positions", ErrInvalidIterator, n)
	} else if n < 0 {
		return it.Add(-n)
	}
	if err := it.check(); err != nil {
		return Iterator[T]{}, err
	}
	target, ok := it.dq.ch.backward(it.nd, n)
	if !ok {
		return Iterator[T]{}, fmt.Errorf("%w: moving %d positions before the front", ErrInvalidIterator, n)
	}
	return it.moved(target), nil
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if err := it.check(); err != nil {
		return Iterator[T]{}, err
	}
	n := it.dq.ch.next(it.nd)
	if n.IsNil() {
		return Iterator[T]{}, fmt.Errorf("%w: increment of end position", ErrInvalidIterator)
	}
	return it.moved(n), nil
}

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if err := it.check(); err != nil {
		return Iterator[T]{}, err
	}
	n := it.dq.ch.prev(it.nd)
	if n.IsNil() {
		return Iterator[T]{}, fmt.Errorf("%w: decrement of first position", ErrInvalidIterator)
	}
	return it.moved(n), nil
}

// Diff returns the signed distance it − rhs in positions. Both iterators must
// belong to the same deque.
//
// Diff scans the block chain and takes time linear in the number of blocks.
func (it Iterator[T]) Diff(rhs Iterator[T]) (int, error) {
	if it.dq == nil || rhs.dq == nil || it.id != rhs.id {
		return 0, fmt.Errorf("%w: distance between different deques", ErrInvalidIterator)
	}
	if err := it.check(); err != nil {
		return 0, err
	}
	if err := rhs.check(); err != nil {
		return 0, err
	}
	return it.dq.ch.distance(it.nd, rhs.nd), nil
}

// Index returns the position of the iterator, counted from the front.
func (it Iterator[T]) Index() (int, error) {
	if err := it.check(); err != nil {
		return 0, err
	}
	return it.Diff(it.dq.Begin())
}

// IsEnd reports whether it is the end position of a deque.
func (it Iterator[T]) IsEnd() bool {
	if it.check() != nil {
		return false
	}
	return !it.dq.ch.node(it.nd).filled
}

// Equal reports whether two iterators denote the same position of the same
// deque.
func (it Iterator[T]) Equal(rhs Iterator[T]) bool {
	return it.id == rhs.id && it.epoch == rhs.epoch && it.nd == rhs.nd && it.gen == rhs.gen
}

// Const returns a read-only iterator for the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// --- ConstIterator ---------------------------------------------------------

// Value returns the element the iterator points to.
func (ci ConstIterator[T]) Value() (T, error) {
	return ci.it.Value()
}

// Add returns an iterator n positions further towards the end.
func (ci ConstIterator[T]) Add(n int) (ConstIterator[T], error) {
	it, err := ci.it.Add(n)
	return it.Const(), err
}

// Sub returns an iterator n positions further towards the front.
func (ci ConstIterator[T]) Sub(n int) (ConstIterator[T], error) {
	it, err := ci.it.Sub(n)
	return it.Const(), err
}

// Next returns an iterator to the following position.
func (ci ConstIterator[T]) Next() (ConstIterator[T], error) {
	it, err := ci.it.Next()
	return it.Const(), err
}

// Prev returns an iterator to the preceding position.
func (ci ConstIterator[T]) Prev() (ConstIterator[T], error) {
	it, err := ci.it.Prev()
	return it.Const(), err
}

// Diff returns the signed distance ci − rhs in positions.
func (ci ConstIterator[T]) Diff(rhs ConstIterator[T]) (int, error) {
	return ci.it.Diff(rhs.it)
}

// Index returns the position of the iterator, counted from the front.
func (ci ConstIterator[T]) Index() (int, error) {
	return ci.it.Index()
}

// IsEnd reports whether ci is the end position of a deque.
func (ci ConstIterator[T]) IsEnd() bool {
	return ci.it.IsEnd()
}

// Equal reports whether two iterators denote the same position.
func (ci ConstIterator[T]) Equal(rhs ConstIterator[T]) bool {
	return ci.it.Equal(rhs.it)
}

// --- Chain navigation ------------------------------------------------------

// forward returns the node steps positions after from. Steps are consumed
// inside from's block first, then whole blocks are skipped by their sizes.
// It reports false if the chain ends before.
func (c *chain[T]) forward(from arena.Handle, steps int) (arena.Handle, bool) {
	cur := from
	for steps > 0 {
		succ := c.node(cur).succ
		if succ.IsNil() {
			break
		}
		cur, steps = succ, steps-1
	}
	if steps == 0 {
		return cur, true
	}
	b := c.block(c.node(cur).blk).succ
	if b.IsNil() {
		return arena.Nil, false
	}
	steps-- // onto the head of b
	for steps >= c.block(b).size {
		steps -= c.block(b).size
		if b = c.block(b).succ; b.IsNil() {
			return arena.Nil, false
		}
	}
	n := c.block(b).head
	for ; steps > 0; steps-- {
		n = c.node(n).succ
	}
	return n, true
}

// backward returns the node steps positions before from. It reports false if
// the chain starts after.
func (c *chain[T]) backward(from arena.Handle, steps int) (arena.Handle, bool) {
	cur := from
	for steps > 0 {
		prev := c.node(cur).prev
		if prev.IsNil() {
			break
		}
		cur, steps = prev, steps-1
	}
	if steps == 0 {
		return cur, true
	}
	b := c.block(c.node(cur).blk).prev
	if b.IsNil() {
		return arena.Nil, false
	}
	steps-- // onto the tail of b
	for steps >= c.block(b).size {
		steps -= c.block(b).size
		if b = c.block(b).prev; b.IsNil() {
			return arena.Nil, false
		}
	}
	n := c.block(b).tail
	for ; steps > 0; steps-- {
		n = c.node(n).prev
	}
	return n, true
}

// distance returns pos(a) − pos(b). Only blocks holding one of the nodes are
// scanned node by node.
func (c *chain[T]) distance(a, b arena.Handle) int {
	ba, bb := c.node(a).blk, c.node(b).blk
	pa, pb := -1, -1
	offset := 0
	for blk := c.head; !blk.IsNil() && (pa < 0 || pb < 0); blk = c.block(blk).succ {
		if blk == ba || blk == bb {
			i := offset
			for n := c.block(blk).head; !n.IsNil(); n = c.node(n).succ {
				if n == a {
					pa = i
				}
				if n == b {
					pb = i
				}
				i++
			}
		}
		offset += c.block(blk).size
	}
	assert(pa >= 0 && pb >= 0, "iterator node not found in chain")
	return pa - pb
}
