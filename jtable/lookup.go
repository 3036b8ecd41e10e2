// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// Lookup returns the value stored under key and true, or (0, false) if key
// is absent.
func (t *Table) Lookup(key int64) (int64, bool) {
	cap := len(t.buckets)
	if cap == 0 {
		return 0, false
	}
	h := home(key, cap)
	if !t.buckets[h].occupied() {
		return 0, false
	}
	i := t.followChain(key, h)
	b := &t.buckets[i]
	if b.key != key {
		return 0, false
	}
	return b.val, true
}

// LookupRef returns a pointer to the stored value for key, or nil if
// absent. The caller may mutate the value through the pointer; the
// pointer is invalidated by any subsequent Insert that triggers a resize,
// or by any Remove.
func (t *Table) LookupRef(key int64) *int64 {
	cap := len(t.buckets)
	if cap == 0 {
		return nil
	}
	h := home(key, cap)
	if !t.buckets[h].occupied() {
		return nil
	}
	i := t.followChain(key, h)
	b := &t.buckets[i]
	if b.key != key {
		return nil
	}
	return &b.val
}
