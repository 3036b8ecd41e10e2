// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package jtable implements an integer-keyed, integer-valued hash table
// built on open addressing with collision chains threaded directly through
// the bucket array, rather than through external linked lists. Each bucket
// is a fixed-size record carrying small forward-offset fields (prev, next,
// chainStart) instead of pointers, which keeps entries compact and the
// whole table a single contiguous allocation.
//
// The table is not safe for concurrent use; callers must serialize their
// own access the same way a caller of a plain slice would.
package jtable

// ctrl is the tag distinguishing the four bucket states.
type ctrl uint8

const (
	// ctrlEmpty marks a free slot. All other fields are undefined.
	ctrlEmpty ctrl = iota
	// ctrlSnug marks a slot occupied by an entry whose key hashes to this
	// slot. It is the head of its own chain.
	ctrlSnug
	// ctrlDisplacedHead marks a slot occupied by an entry whose key hashes
	// elsewhere, and which is the head of that foreign chain. The SNUG
	// bucket at the hash-home holds chainStart pointing here.
	ctrlDisplacedHead
	// ctrlDisplaced marks a slot occupied by an entry whose key hashes
	// elsewhere, and which is not the head of its chain.
	ctrlDisplaced
)

// maxCap bounds the table's capacity so that the 16-bit forward-offset
// fields below can always address any position reachable from any other.
// See SPEC_FULL.md §9.1 for why this is a cap rather than a widened offset
// type.
const maxCap = 1 << 16

// bucket is one slot of the table's backing array. prev, next and
// chainStart are forward, modular displacements: a nonzero offset d at
// index i means "the linked bucket is at (i+d) mod cap". A value of 0
// means "none" in all three fields, since no bucket ever links to itself.
type bucket struct {
	ctrl       ctrl
	prev       uint16
	next       uint16
	chainStart uint16
	key        int64
	val        int64
}

func (b *bucket) occupied() bool {
	return b.ctrl != ctrlEmpty
}
