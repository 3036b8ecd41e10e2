// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// resize replaces the backing array with a fresh one of 4x the current
// capacity (or 32, starting from empty), and reinserts every live entry.
// Reinsertion order doesn't matter: the invariants are restored one entry
// at a time by the normal insert path.
func (t *Table) resize() {
	newCap := 32
	if c := len(t.buckets); c != 0 {
		newCap = c * 4
	}
	if newCap > maxCap {
		panic("jtable: capacity would exceed 65536 buckets")
	}
	old := t.buckets
	t.buckets = make([]bucket, newCap)
	t.length = 0
	for i := range old {
		if old[i].occupied() {
			t.Insert(old[i].key, old[i].val)
		}
	}
}
