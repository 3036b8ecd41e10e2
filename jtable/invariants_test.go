// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

import "fmt"

// checkInvariants enumerates every non-EMPTY bucket and verifies it is
// reachable from its key's hash-home, that chains are doubly linked, that
// chainStart/DISPLACED_HEAD correspondence holds, and that len matches the
// occupied count. It returns a descriptive error on the first violation
// found, or nil if every invariant holds.
func (t *Table) checkInvariants() error {
	cap := len(t.buckets)
	occupied := 0
	seen := make(map[int64]bool)

	for h := 0; h < cap; h++ {
		b := &t.buckets[h]
		if b.ctrl == ctrlEmpty {
			continue
		}
		occupied++
		if seen[b.key] {
			return fmt.Errorf("duplicate key %d in table", b.key)
		}
		seen[b.key] = true

		home := home(b.key, cap)
		if home == h {
			if b.ctrl != ctrlSnug {
				return fmt.Errorf("bucket %d holds key %d at its own hash-home but ctrl=%d, want SNUG", h, b.key, b.ctrl)
			}
			continue
		}

		// b is displaced: it must be reachable from its hash-home, either
		// by walking the home SNUG bucket's own next chain (when the home
		// slot holds this chain's own head), or via chainStart to a
		// foreign DISPLACED_HEAD and then next hops (when the home slot
		// is occupied by a different chain entirely).
		homeb := &t.buckets[home]
		if homeb.ctrl == ctrlEmpty {
			return fmt.Errorf("key %d hashes to empty home %d", b.key, home)
		}
		var start int
		if homeb.ctrl == ctrlSnug {
			start = home
		} else {
			if homeb.chainStart == 0 {
				return fmt.Errorf("key %d hashes to home %d, which has no chainStart", b.key, home)
			}
			start = advance(home, homeb.chainStart, cap)
			// The head is usually DISPLACED_HEAD, but removing a chain's
			// head shifts chainStart to its successor without retagging
			// it, leaving a DISPLACED bucket with prev=0 as the head.
			switch t.buckets[start].ctrl {
			case ctrlDisplacedHead:
			case ctrlDisplaced:
				if t.buckets[start].prev != 0 {
					return fmt.Errorf("home %d chainStart points to %d, a DISPLACED bucket with prev=%d (want a chain head)",
						home, start, t.buckets[start].prev)
				}
			default:
				return fmt.Errorf("home %d chainStart points to %d, which is not a chain head (ctrl=%d)",
					home, start, t.buckets[start].ctrl)
			}
		}
		found := false
		i := start
		for {
			if i == h {
				found = true
				break
			}
			if t.buckets[i].next == 0 {
				break
			}
			i = advance(i, t.buckets[i].next, cap)
		}
		if !found {
			return fmt.Errorf("bucket %d (key %d) is not reachable from its hash-home %d", h, b.key, home)
		}
	}

	// Doubly-linked check: every nonzero next must have a matching prev.
	for i := 0; i < cap; i++ {
		b := &t.buckets[i]
		if b.ctrl == ctrlEmpty || b.next == 0 {
			continue
		}
		j := advance(i, b.next, cap)
		if t.buckets[j].prev != b.next {
			return fmt.Errorf("bucket %d has next=%d to %d, but %d.prev=%d (want %d)",
				i, b.next, j, j, t.buckets[j].prev, b.next)
		}
	}

	if occupied != t.length {
		return fmt.Errorf("len=%d but %d buckets are occupied", t.length, occupied)
	}
	return nil
}
