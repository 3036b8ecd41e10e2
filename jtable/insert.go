// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// Insert stores val under key, overwriting any existing value for key
// without changing Len(). Inserting triggers a resize first if the table
// is at or above 75% load.
func (t *Table) Insert(key, val int64) {
	if t.length >= 3*len(t.buckets)/4 {
		t.resize()
	}

	cap := len(t.buckets)
	h := home(key, cap)
	b := &t.buckets[h]

	if !b.occupied() {
		// Case 1: the home slot is free. Cheapest possible insert.
		*b = bucket{ctrl: ctrlSnug, key: key, val: val}
		t.length++
		return
	}

	if b.ctrl != ctrlSnug && b.chainStart == 0 {
		// Case 2: the home slot is itself a foreign chain's link, and no
		// chain has been started for this hash yet. Quadratically probe
		// for a new DISPLACED_HEAD so this hash's chain spreads away from
		// whatever chain already occupies h.
		j := t.probeQuadratic(h)
		b.chainStart = offsetTo(h, j, cap)
		t.buckets[j] = bucket{ctrl: ctrlDisplacedHead, key: key, val: val}
		t.length++
		return
	}

	// Case 3: either h is SNUG, or a chain for this hash already exists.
	// Walk the chain; overwrite on a match, otherwise extend it linearly.
	i := t.followChain(key, h)
	tail := &t.buckets[i]
	if tail.key == key {
		tail.val = val
		return
	}
	j := t.probeLinear(i)
	d := offsetTo(i, j, cap)
	tail.next = d
	t.buckets[j] = bucket{ctrl: ctrlDisplaced, prev: d, key: key, val: val}
	t.length++
}
