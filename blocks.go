package deque

import (
	"github.com/npillmayer/deque/arena"
)

// node is one element slot. The sentinel is the only node with filled == false.
type node[T any] struct {
	value      T
	filled     bool
	blk        arena.Handle // owning block
	prev, succ arena.Handle // neighbors within the owning block
}

// block is a doubly linked list of nodes. size is the node count, including
// the sentinel for the last block.
type block struct {
	size       int
	head, tail arena.Handle // first and last node
	prev, succ arena.Handle // neighbor blocks
}

// chain is the list of blocks which together form the node sequence.
// Nodes and blocks are held in arenas and linked by handles.
//
// Pointers returned by node() and block() must not be held across calls which
// allocate, as allocation may move the backing storage.
type chain[T any] struct {
	nodes      arena.Pool[node[T]]
	blocks     arena.Pool[block]
	head, tail arena.Handle // first and last block
	count      int          // number of nodes, i.e. logical length + 1
}

func (c *chain[T]) node(h arena.Handle) *node[T] {
	return c.nodes.At(h)
}

func (c *chain[T]) block(h arena.Handle) *block {
	return c.blocks.At(h)
}

// reset drops all blocks and nodes and sets up a single block holding the
// sentinel.
func (c *chain[T]) reset() {
	c.nodes.Reset()
	c.blocks.Reset()
	b := c.blocks.Alloc()
	s := c.nodes.Alloc()
	c.node(s).blk = b
	blk := c.block(b)
	blk.head, blk.tail, blk.size = s, s, 1
	c.head, c.tail = b, b
	c.count = 1
}

// sentinel returns the node marking the end of the sequence.
func (c *chain[T]) sentinel() arena.Handle {
	return c.block(c.tail).tail
}

// first returns the first node of the chain, which is the sentinel for an
// empty sequence.
func (c *chain[T]) first() arena.Handle {
	return c.block(c.head).head
}

// next returns the node following n, crossing into the next block if
// necessary. It returns arena.Nil for the sentinel.
func (c *chain[T]) next(n arena.Handle) arena.Handle {
	nd := c.node(n)
	if !nd.succ.IsNil() {
		return nd.succ
	}
	for b := c.block(nd.blk).succ; !b.IsNil(); b = c.block(b).succ {
		if h := c.block(b).head; !h.IsNil() {
			return h
		}
	}
	return arena.Nil
}

// prev returns the node preceding n, crossing into the previous block if
// necessary. It returns arena.Nil for the first node.
func (c *chain[T]) prev(n arena.Handle) arena.Handle {
	nd := c.node(n)
	if !nd.prev.IsNil() {
		return nd.prev
	}
	for b := c.block(nd.blk).prev; !b.IsNil(); b = c.block(b).prev {
		if t := c.block(b).tail; !t.IsNil() {
			return t
		}
	}
	return arena.Nil
}

// newNode allocates a detached node carrying value v.
func (c *chain[T]) newNode(v T) arena.Handle {
	h := c.nodes.Alloc()
	nd := c.node(h)
	nd.value = v
	nd.filled = true
	return h
}

// linkBefore splices the detached node n into the block of node at,
// immediately before at.
func (c *chain[T]) linkBefore(at, n arena.Handle) {
	target := c.node(at)
	b := target.blk
	p := target.prev
	target.prev = n
	nd := c.node(n)
	nd.blk, nd.prev, nd.succ = b, p, at
	blk := c.block(b)
	if p.IsNil() {
		blk.head = n
	} else {
		c.node(p).succ = n
	}
	blk.size++
	c.count++
}

// unlink removes node n from its block. The node is left detached but
// allocated; the caller frees it.
func (c *chain[T]) unlink(n arena.Handle) {
	nd := c.node(n)
	blk := c.block(nd.blk)
	if nd.prev.IsNil() {
		blk.head = nd.succ
	} else {
		c.node(nd.prev).succ = nd.succ
	}
	if nd.succ.IsNil() {
		blk.tail = nd.prev
	} else {
		c.node(nd.succ).prev = nd.prev
	}
	blk.size--
	c.count--
	nd.blk, nd.prev, nd.succ = arena.Nil, arena.Nil, arena.Nil
}

// adopt sets the back-reference of every node in [from..to] to block b.
func (c *chain[T]) adopt(b, from, to arena.Handle) {
	if from.IsNil() {
		return
	}
	for h := from; ; h = c.node(h).succ {
		c.node(h).blk = b
		if h == to {
			return
		}
	}
}

// moveAll moves the complete node list of block src into block dst. If
// atFront is set, the nodes are placed in front of dst's nodes, otherwise
// after them. src is left empty.
func (c *chain[T]) moveAll(src, dst arena.Handle, atFront bool) {
	s := c.block(src)
	if s.size == 0 {
		return
	}
	shead, stail, ssize := s.head, s.tail, s.size
	s.head, s.tail, s.size = arena.Nil, arena.Nil, 0
	c.adopt(dst, shead, stail)
	d := c.block(dst)
	switch {
	case d.size == 0:
		d.head, d.tail = shead, stail
	case atFront:
		c.node(stail).succ = d.head
		c.node(d.head).prev = stail
		d.head = shead
	default:
		c.node(d.tail).succ = shead
		c.node(shead).prev = d.tail
		d.tail = stail
	}
	d.size += ssize
}

// insertBlockBefore links the detached block nb into the chain immediately
// before block b.
func (c *chain[T]) insertBlockBefore(nb, b arena.Handle) {
	blk := c.block(b)
	p := blk.prev
	blk.prev = nb
	nblk := c.block(nb)
	nblk.prev, nblk.succ = p, b
	if p.IsNil() {
		c.head = nb
	} else {
		c.block(p).succ = nb
	}
}

// removeBlock unlinks block b from the chain and frees it together with every
// node it still owns.
func (c *chain[T]) removeBlock(b arena.Handle) {
	blk := c.block(b)
	p, s := blk.prev, blk.succ
	if p.IsNil() {
		c.head = s
	} else {
		c.block(p).succ = s
	}
	if s.IsNil() {
		c.tail = p
	} else {
		c.block(s).prev = p
	}
	c.freeBlock(b)
}

// freeBlock releases block b and its nodes. It does not touch chain links.
func (c *chain[T]) freeBlock(b arena.Handle) {
	blk := c.block(b)
	n := blk.head
	c.count -= blk.size
	for !n.IsNil() {
		succ := c.node(n).succ
		c.nodes.Free(n)
		n = succ
	}
	c.blocks.Free(b)
}

// blockCount returns the number of blocks in the chain.
func (c *chain[T]) blockCount() int {
	cnt := 0
	for b := c.head; !b.IsNil(); b = c.block(b).succ {
		cnt++
	}
	return cnt
}

// copyFrom replaces the contents of c with a deep copy of src, preserving its
// block layout.
func (c *chain[T]) copyFrom(src *chain[T]) {
	c.nodes.Reset()
	c.blocks.Reset()
	c.head, c.tail, c.count = arena.Nil, arena.Nil, 0
	for sb := src.head; !sb.IsNil(); sb = src.block(sb).succ {
		b := c.blocks.Alloc()
		if c.tail.IsNil() {
			c.head = b
		} else {
			c.block(c.tail).succ = b
			c.block(b).prev = c.tail
		}
		c.tail = b
		last := arena.Nil
		for sn := src.block(sb).head; !sn.IsNil(); sn = src.node(sn).succ {
			n := c.nodes.Alloc()
			srcNode := src.node(sn)
			nd := c.node(n)
			nd.value, nd.filled = srcNode.value, srcNode.filled
			nd.blk, nd.prev = b, last
			if last.IsNil() {
				c.block(b).head = n
			} else {
				c.node(last).succ = n
			}
			last = n
		}
		blk := c.block(b)
		blk.tail = last
		blk.size = src.block(sb).size
		c.count += blk.size
	}
}
