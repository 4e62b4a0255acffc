package deque

import (
	"fmt"
	"iter"

	"github.com/npillmayer/deque/arena"
	"go.uber.org/atomic"
)

// Deque is a double-ended sequence container with random access, stored as
// an unrolled doubly linked list of blocks.
//
// A deque created by
//
//	Deque[T]{}
//
// is a valid object and behaves like an empty deque with the default
// configuration.
//
// Deques have value semantics only through Clone and Assign; copying a Deque
// struct is not supported.
type Deque[T any] struct {
	id    uint64 // identity, unique per instance
	epoch uint64 // incremented whenever all nodes are discarded
	cfg   Config
	ch    chain[T]
}

var instances atomic.Uint64

// New creates an empty deque with the default configuration.
func New[T any]() *Deque[T] {
	d := &Deque[T]{}
	d.init(Config{})
	return d
}

// NewWithConfig creates an empty deque with a validated configuration.
func NewWithConfig[T any](cfg Config) (*Deque[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	d := &Deque[T]{}
	d.init(cfg)
	return d, nil
}

func (d *Deque[T]) init(cfg Config) {
	d.id = instances.Inc()
	d.cfg = cfg.normalized()
	d.ch.reset()
}

// lazy sets up a zero deque on first use.
func (d *Deque[T]) lazy() {
	assert(d != nil, "operation on nil deque")
	if d.id == 0 {
		d.init(d.cfg)
	}
}

// Config returns the effective configuration.
func (d *Deque[T]) Config() Config {
	if d == nil {
		return Config{}.normalized()
	}
	return d.cfg.normalized()
}

// BlockCapacity returns B, the block capacity of the deque.
func (d *Deque[T]) BlockCapacity() int {
	return d.Config().BlockCapacity
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	if d == nil || d.id == 0 {
		return 0
	}
	return d.ch.count - 1
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.Len() == 0
}

// Blocks returns the number of blocks currently in use.
func (d *Deque[T]) Blocks() int {
	if d == nil || d.id == 0 {
		return 0
	}
	return d.ch.blockCount()
}

// BlockSizes returns the node count of every block in chain order. The
// sentinel is counted in the size of the last block.
func (d *Deque[T]) BlockSizes() []int {
	if d == nil || d.id == 0 {
		return nil
	}
	sizes := make([]int, 0, d.ch.blocks.Len())
	for b := d.ch.head; !b.IsNil(); b = d.ch.block(b).succ {
		sizes = append(sizes, d.ch.block(b).size)
	}
	return sizes
}

// Clear removes all elements. Every iterator of d becomes invalid.
func (d *Deque[T]) Clear() {
	d.lazy()
	d.ch.reset()
	d.epoch++
	tracer().Debugf("deque: cleared")
}

// --- Element access --------------------------------------------------------

// locate returns the node at logical position pos, which must be in range.
func (d *Deque[T]) locate(pos int) arena.Handle {
	b := d.ch.head
	rem := pos
	for {
		size := d.ch.block(b).size
		if rem < size {
			break
		}
		rem -= size
		b = d.ch.block(b).succ
		assert(!b.IsNil(), "locate ran past the last block")
	}
	n := d.ch.block(b).head
	for ; rem > 0; rem-- {
		n = d.ch.node(n).succ
	}
	return n
}

func (d *Deque[T]) checkPos(pos int) error {
	if pos < 0 || pos >= d.Len() {
		return fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, pos, d.Len())
	}
	return nil
}

// At returns the element at position pos.
func (d *Deque[T]) At(pos int) (T, error) {
	if err := d.checkPos(pos); err != nil {
		var zero T
		return zero, err
	}
	return d.ch.node(d.locate(pos)).value, nil
}

// Set replaces the element at position pos.
func (d *Deque[T]) Set(pos int, value T) error {
	if err := d.checkPos(pos); err != nil {
		return err
	}
	d.ch.node(d.locate(pos)).value = value
	return nil
}

// Front returns the first element.
func (d *Deque[T]) Front() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return d.ch.node(d.ch.first()).value, nil
}

// Back returns the last element.
func (d *Deque[T]) Back() (T, error) {
	if d.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return d.ch.node(d.ch.prev(d.ch.sentinel())).value, nil
}

// --- Iterators -------------------------------------------------------------

func (d *Deque[T]) iterator(n arena.Handle) Iterator[T] {
	return Iterator[T]{dq: d, id: d.id, epoch: d.epoch, nd: n, gen: d.ch.nodes.Gen(n)}
}

// Begin returns an iterator to the first element, or End() for an empty deque.
func (d *Deque[T]) Begin() Iterator[T] {
	d.lazy()
	return d.iterator(d.ch.first())
}

// End returns an iterator to the position after the last element.
func (d *Deque[T]) End() Iterator[T] {
	d.lazy()
	return d.iterator(d.ch.sentinel())
}

// CBegin returns a read-only iterator to the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] {
	return d.Begin().Const()
}

// CEnd returns a read-only iterator to the position after the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] {
	return d.End().Const()
}

// owns checks that it is a live iterator of d.
func (d *Deque[T]) owns(it Iterator[T]) error {
	if it.dq == nil || it.id != d.id {
		return fmt.Errorf("%w: iterator belongs to a different deque", ErrInvalidIterator)
	}
	if it.epoch != d.epoch || !d.ch.nodes.Holds(it.nd, it.gen) {
		return fmt.Errorf("%w: stale iterator", ErrInvalidIterator)
	}
	return nil
}

// --- Modification ----------------------------------------------------------

// Insert inserts value before the element it points to and returns an
// iterator to the inserted element. it may be End().
//
// Iterators to other elements remain valid.
func (d *Deque[T]) Insert(it Iterator[T], value T) (Iterator[T], error) {
	d.lazy()
	if err := d.owns(it); err != nil {
		return Iterator[T]{}, err
	}
	n := d.ch.newNode(value)
	b := d.ch.node(it.nd).blk
	d.ch.linkBefore(it.nd, n)
	d.maintain(b)
	inserted, err := d.iterator(it.nd).Sub(1)
	assert(err == nil && inserted.nd == n, "inserted node not found before insert position")
	return inserted, nil
}

// Erase removes the element it points to and returns an iterator to the
// following element, which is End() if the last element has been removed.
//
// it and every copy of it become invalid; iterators to other elements remain
// valid.
func (d *Deque[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	d.lazy()
	if err := d.owns(it); err != nil {
		return Iterator[T]{}, err
	}
	if it.nd == d.ch.sentinel() {
		return Iterator[T]{}, fmt.Errorf("%w: cannot erase end position", ErrInvalidIterator)
	}
	next := d.ch.next(it.nd)
	assert(!next.IsNil(), "erased node has no successor")
	b := d.ch.node(it.nd).blk
	d.ch.unlink(it.nd)
	d.ch.nodes.Free(it.nd)
	d.maintain(b)
	return d.iterator(next), nil
}

// PushBack appends value to the end.
func (d *Deque[T]) PushBack(value T) {
	_, err := d.Insert(d.End(), value)
	assert(err == nil, "push back failed")
}

// PushFront prepends value to the front.
func (d *Deque[T]) PushFront(value T) {
	_, err := d.Insert(d.Begin(), value)
	assert(err == nil, "push front failed")
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.Empty() {
		return zero, ErrEmptyContainer
	}
	it, err := d.End().Sub(1)
	if err != nil {
		return zero, err
	}
	value := d.ch.node(it.nd).value
	if _, err = d.Erase(it); err != nil {
		return zero, err
	}
	return value, nil
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.Empty() {
		return zero, ErrEmptyContainer
	}
	it := d.Begin()
	value := d.ch.node(it.nd).value
	if _, err := d.Erase(it); err != nil {
		return zero, err
	}
	return value, nil
}

// --- Copy semantics --------------------------------------------------------

// Clone returns a deep copy of d. The copy has its own identity; iterators of
// d are not valid for the copy.
func (d *Deque[T]) Clone() *Deque[T] {
	d.lazy()
	c := &Deque[T]{}
	c.init(d.cfg)
	c.ch.copyFrom(&d.ch)
	return c
}

// Assign replaces the contents and configuration of d by a deep copy of src.
// Every iterator of d becomes invalid. Assigning a deque to itself does
// nothing.
func (d *Deque[T]) Assign(src *Deque[T]) {
	d.lazy()
	if src == nil {
		d.Clear()
		return
	}
	src.lazy()
	if src == d || src.id == d.id {
		return
	}
	d.cfg = src.cfg
	d.ch.copyFrom(&src.ch)
	d.epoch++
}

// --- Iteration -------------------------------------------------------------

// All returns an iterator over positions and elements, front to back.
//
// The deque must not be modified during iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d.Empty() {
			return
		}
		i := 0
		for b := d.ch.head; !b.IsNil(); b = d.ch.block(b).succ {
			for n := d.ch.block(b).head; !n.IsNil(); n = d.ch.node(n).succ {
				nd := d.ch.node(n)
				if !nd.filled {
					return
				}
				if !yield(i, nd.value) {
					return
				}
				i++
			}
		}
	}
}

// Backward returns an iterator over positions and elements, back to front.
//
// The deque must not be modified during iteration.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d.Empty() {
			return
		}
		i := d.Len() - 1
		for n := d.ch.prev(d.ch.sentinel()); !n.IsNil(); n = d.ch.prev(n) {
			if !yield(i, d.ch.node(n).value) {
				return
			}
			i--
		}
	}
}

// Values returns the elements as a slice, front to back.
func (d *Deque[T]) Values() []T {
	values := make([]T, 0, d.Len())
	for _, v := range d.All() {
		values = append(values, v)
	}
	return values
}
