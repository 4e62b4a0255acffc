package deque

import (
	"fmt"

	"github.com/npillmayer/deque/arena"
)

// Check validates the structural invariants of the deque:
//
//   - exactly one sentinel exists, and it is the last node of the last block,
//   - every block but a sole one holds more than B/2 and fewer than 2B nodes,
//   - every node refers back to the block which contains it,
//   - block and node lists are consistently doubly linked and their counts
//     agree with the stored sizes,
//   - every allocated block and node is part of the chain.
//
// Check walks the complete structure. It is intended for tests and
// diagnostics.
func (d *Deque[T]) Check() error {
	if d == nil {
		return fmt.Errorf("%w: nil deque", ErrCorrupted)
	}
	if d.id == 0 {
		return nil // not yet initialized, behaves like an empty deque
	}
	c := &d.ch
	if c.head.IsNil() || c.tail.IsNil() {
		return fmt.Errorf("%w: chain has no blocks", ErrCorrupted)
	}
	if !c.block(c.head).prev.IsNil() {
		return fmt.Errorf("%w: first block has a predecessor", ErrCorrupted)
	}
	blockCount, nodeCount, sentinels := 0, 0, 0
	prev := arena.Nil
	for b := c.head; !b.IsNil(); b = c.block(b).succ {
		if !c.blocks.Live(b) {
			return fmt.Errorf("%w: chain links to freed block %d", ErrCorrupted, b)
		}
		blk := c.block(b)
		if blk.prev != prev {
			return fmt.Errorf("%w: block %d has broken back link", ErrCorrupted, b)
		}
		n, s, err := d.checkBlock(b)
		if err != nil {
			return err
		}
		nodeCount += n
		sentinels += s
		blockCount++
		if blockCount > c.blocks.Len() {
			return fmt.Errorf("%w: block chain is cyclic", ErrCorrupted)
		}
		prev = b
	}
	if prev != c.tail {
		return fmt.Errorf("%w: tail block %d is not the last block of the chain", ErrCorrupted, c.tail)
	}
	if sentinels != 1 {
		return fmt.Errorf("%w: found %d sentinel nodes", ErrCorrupted, sentinels)
	}
	if c.node(c.sentinel()).filled {
		return fmt.Errorf("%w: last node is not the sentinel", ErrCorrupted)
	}
	if nodeCount != c.count {
		return fmt.Errorf("%w: node count mismatch (%d != %d)", ErrCorrupted, nodeCount, c.count)
	}
	var orphan error
	c.nodes.Each(func(h arena.Handle, nd *node[T]) bool {
		if !c.blocks.Live(nd.blk) {
			orphan = fmt.Errorf("%w: live node %d is not owned by a live block", ErrCorrupted, h)
			return false
		}
		return true
	})
	if orphan != nil {
		return orphan
	}
	if nodeCount != c.nodes.Len() || blockCount != c.blocks.Len() {
		return fmt.Errorf("%w: arena holds unreachable items (nodes %d/%d, blocks %d/%d)",
			ErrCorrupted, nodeCount, c.nodes.Len(), blockCount, c.blocks.Len())
	}
	if blockCount > 1 {
		for b := c.head; !b.IsNil(); b = c.block(b).succ {
			size := c.block(b).size
			if size <= d.cfg.mergeAt() || size >= d.cfg.splitAt() {
				return fmt.Errorf("%w: block %d holds %d nodes, bounds are (%d, %d)",
					ErrCorrupted, b, size, d.cfg.mergeAt(), d.cfg.splitAt())
			}
		}
	} else if size := c.block(c.head).size; size < 1 || size >= d.cfg.splitAt() {
		return fmt.Errorf("%w: sole block holds %d nodes", ErrCorrupted, size)
	}
	return nil
}

// checkBlock validates the node list of block b and returns its node count
// and the number of sentinels found in it.
func (d *Deque[T]) checkBlock(b arena.Handle) (nodes int, sentinels int, err error) {
	c := &d.ch
	blk := c.block(b)
	prev := arena.Nil
	for n := blk.head; !n.IsNil(); n = c.node(n).succ {
		if !c.nodes.Live(n) {
			return 0, 0, fmt.Errorf("%w: block %d links to freed node %d", ErrCorrupted, b, n)
		}
		nd := c.node(n)
		if nd.blk != b {
			return 0, 0, fmt.Errorf("%w: node %d refers to block %d, contained in block %d",
				ErrCorrupted, n, nd.blk, b)
		}
		if nd.prev != prev {
			return 0, 0, fmt.Errorf("%w: node %d has broken back link", ErrCorrupted, n)
		}
		if !nd.filled {
			sentinels++
			if !nd.succ.IsNil() || b != c.tail {
				return 0, 0, fmt.Errorf("%w: sentinel %d is not the last node", ErrCorrupted, n)
			}
		}
		nodes++
		if nodes > c.count {
			return 0, 0, fmt.Errorf("%w: node list of block %d is cyclic", ErrCorrupted, b)
		}
		prev = n
	}
	if prev != blk.tail {
		return 0, 0, fmt.Errorf("%w: block %d tail mismatch", ErrCorrupted, b)
	}
	if nodes != blk.size {
		return 0, 0, fmt.Errorf("%w: block %d size mismatch (%d != %d)", ErrCorrupted, b, nodes, blk.size)
	}
	return nodes, sentinels, nil
}
