/*
Package deque offers a double-ended sequence container with random access.

# Unrolled Lists

A Deque stores its elements in an unrolled doubly linked list: a chain of
blocks, where every block is itself a short doubly linked list of nodes. The
number of nodes per block is kept within a band around a fixed capacity B.
Whenever an insertion lets a block grow to 2B nodes, it is split in half;
whenever an erasure lets a block shrink to B/2 nodes, it is merged into a
neighbor.

Bounding block sizes this way bounds the number of blocks to Θ(n/B) and every
scan inside a block to O(B). With B chosen near √n, positional access and
insertion/erasure in the middle of the sequence cost amortized O(√n), while
operations at either end are O(1) amortized, as only a boundary block will
ever split there.

	Operation      |   Deque
	---------------+------------------
	At             |   O(n/B + B)
	Insert, Erase  |   O(B) + O(1) per iterator step
	Push, Pop      |   O(1) amortized
	Iterator ±1    |   O(1)
	Iterator ±k    |   O(k/B + B)

The logical end of the sequence is marked by a sentinel node without payload.
It is always the last node of the last block, which makes End() an ordinary
position and spares iterator arithmetic from nil checks.

Blocks and nodes live in arenas (see package arena) and reference each other
by stable handles. An iterator is a pair of a container reference and a node
handle. Iterators stay valid across insertions and erasures of other elements,
including splits and merges of the blocks they point into; erasing the
element an iterator points to invalidates it.

Deques are not safe for concurrent use.

# BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'deque'
func tracer() tracing.Trace {
	return tracing.Select("deque")
}

// DequeError is an error type for the deque module
type DequeError string

func (e DequeError) Error() string {
	return string(e)
}

// ErrOutOfBounds is flagged whenever a position is not less than the
// length of the deque.
const ErrOutOfBounds = DequeError("index out of bounds")

// ErrEmptyContainer is flagged when accessing or removing elements of an
// empty deque.
const ErrEmptyContainer = DequeError("container is empty")

// ErrInvalidIterator is flagged for iterators of a different deque, for
// dereferencing or erasing the end position, for stale iterators and for
// iterator arithmetic leaving the sequence.
const ErrInvalidIterator = DequeError("invalid iterator")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = DequeError("illegal arguments")

// ErrCorrupted is flagged by Check when a structural invariant does not hold.
const ErrCorrupted = DequeError("deque structure corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
