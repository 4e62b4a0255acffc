package deque

import (
	"github.com/npillmayer/deque/arena"
)

// maintain restores the block size bounds for block b after its size changed.
//
// A block reaching 2B nodes is split, a block shrinking to B/2 nodes is merged
// into a neighbor. A merge may leave the absorbing neighbor with 2B nodes or
// more; it is then split once. Both halves of a split hold at least B nodes,
// so rebalancing ends there.
func (d *Deque[T]) maintain(b arena.Handle) {
	size := d.ch.block(b).size
	if size >= d.cfg.splitAt() {
		d.split(b)
		return
	}
	if size <= d.cfg.mergeAt() {
		into := d.merge(b)
		if !into.IsNil() && d.ch.block(into).size >= d.cfg.splitAt() {
			d.split(into)
		}
	}
}

// split moves the first half of block b into a new block, which is inserted
// into the chain immediately before b. The sentinel, being the last node of
// the last block, always stays in b.
func (d *Deque[T]) split(b arena.Handle) arena.Handle {
	nb := d.ch.blocks.Alloc()
	blk := d.ch.block(b)
	half := blk.size / 2
	assert(half > 0, "split of block with fewer than two nodes")
	cut := blk.head
	for i := 1; i < half; i++ {
		cut = d.ch.node(cut).succ
	}
	rest := d.ch.node(cut).succ
	assert(!rest.IsNil(), "split would empty the original block")
	nblk := d.ch.block(nb)
	nblk.head, nblk.tail, nblk.size = blk.head, cut, half
	d.ch.adopt(nb, nblk.head, cut)
	d.ch.node(cut).succ = arena.Nil
	d.ch.node(rest).prev = arena.Nil
	blk.head = rest
	blk.size -= half
	d.ch.insertBlockBefore(nb, b)
	tracer().Debugf("deque: split block of %d nodes into %d + %d", blk.size+half, half, blk.size)
	return nb
}

// merge fuses block b into its previous neighbor or, if b is the first block,
// into its next neighbor. It returns the absorbing block, or arena.Nil if b is
// the only block.
func (d *Deque[T]) merge(b arena.Handle) arena.Handle {
	blk := d.ch.block(b)
	into, atFront := blk.prev, false
	if into.IsNil() {
		into, atFront = blk.succ, true
	}
	if into.IsNil() {
		return arena.Nil
	}
	moved := blk.size
	d.ch.moveAll(b, into, atFront)
	d.ch.removeBlock(b)
	tracer().Debugf("deque: merged %d nodes into neighbor block, now %d nodes",
		moved, d.ch.block(into).size)
	return into
}
