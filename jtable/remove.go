// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// Remove deletes key from the table, if present; it is a no-op otherwise.
//
// Marking a bucket EMPTY only flips its ctrl tag. The other fields are left
// untouched until the slot is reused by a future Insert: the cascade below
// depends on reading a just-emptied bucket's chainStart, which must still
// hold whatever value it had while the slot was occupied.
func (t *Table) Remove(key int64) {
	cap := len(t.buckets)
	if cap == 0 {
		return
	}
	h := home(key, cap)
	// b aliases buckets[h] for the whole call; the final chainStart repair
	// below deliberately reads through it after the cascade may have
	// mutated buckets[h]. See DESIGN.md for why this ordering is kept.
	b := &t.buckets[h]
	if !b.occupied() {
		return
	}

	rmvi := t.followChain(key, h)
	rmvb := &t.buckets[rmvi]
	if rmvb.key != key {
		return
	}

	if rmvb.ctrl == ctrlSnug {
		if rmvb.next == 0 {
			rmvb.ctrl = ctrlEmpty
			t.length--
			return
		}
		j := advance(rmvi, rmvb.next, cap)
		nextb := &t.buckets[j]
		nextb.ctrl = ctrlEmpty
		if nextb.next != 0 {
			rmvb.next += nextb.next
		} else {
			rmvb.next = 0
		}
		rmvb.key = nextb.key
		rmvb.val = nextb.val
		rmvb.prev = 0
		if nextb.next != 0 {
			nextnextb := &t.buckets[advance(j, nextb.next, cap)]
			nextnextb.prev = rmvb.next
		}
		t.replaceWithChainStart(j)
		t.length--
		return
	}

	// DISPLACED or DISPLACED_HEAD: splice rmvi out of its chain, cascade,
	// then repair the hash-home's chainStart if rmvi was its chain head.
	next, prev := rmvb.next, rmvb.prev
	rmvb.ctrl = ctrlEmpty
	if prev != 0 {
		j := retreat(rmvi, prev, cap)
		prevb := &t.buckets[j]
		if next != 0 {
			prevb.next += next
		} else {
			prevb.next = 0
		}
	}
	if next != 0 {
		j := advance(rmvi, next, cap)
		nextb := &t.buckets[j]
		if prev != 0 {
			nextb.prev += prev
		} else {
			nextb.prev = 0
		}
	}
	t.replaceWithChainStart(rmvi)
	if advance(h, b.chainStart, cap) != rmvi {
		t.length--
		return
	}
	if next != 0 {
		b.chainStart += next
	} else {
		b.chainStart = 0
	}
	t.length--
}

// replaceWithChainStart repairs a just-emptied slot i whose own chainStart
// is nonzero, meaning i is the hash-home of a chain whose head sits
// further along. If so, that head is promoted into i and the cascade
// recurses on the head's old position, since that slot may itself have a
// nonzero chainStart.
func (t *Table) replaceWithChainStart(i int) {
	cap := len(t.buckets)
	b := &t.buckets[i]
	if b.chainStart == 0 {
		return
	}
	j := advance(i, b.chainStart, cap)
	headb := &t.buckets[j]
	headb.ctrl = ctrlEmpty
	b.ctrl = ctrlSnug
	if headb.next != 0 {
		b.next = headb.next + b.chainStart
		nextb := &t.buckets[advance(i, b.next, cap)]
		nextb.prev = b.next
	} else {
		b.next = 0
	}
	b.chainStart = 0
	b.prev = 0
	b.key = headb.key
	b.val = headb.val
	if headb.chainStart != 0 {
		t.replaceWithChainStart(j)
	}
}
