// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// followChain walks the chain rooted at hash-home index h looking for key,
// and returns the index of either the matching bucket or the chain's tail
// if no match is found. The caller must have already checked that
// buckets[h] is occupied.
func (t *Table) followChain(key int64, h int) int {
	cap := len(t.buckets)
	b := &t.buckets[h]
	i := advance(h, b.chainStart, cap)
	b = &t.buckets[i]
	for {
		if b.key == key {
			return i
		}
		if b.next == 0 {
			return i
		}
		i = advance(i, b.next, cap)
		b = &t.buckets[i]
	}
}
