// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// Table is an integer-keyed, integer-valued hash table. The zero value is
// ready to use and performs no allocation until the first Insert.
//
// Table is not safe for concurrent use by multiple goroutines without
// external synchronization.
type Table struct {
	buckets []bucket
	length  int
}

// New returns a ready-to-use, empty Table. It is equivalent to the zero
// value; it exists so callers can write jtable.New() where a constructor
// reads more naturally.
func New() *Table {
	return &Table{}
}

// Len returns the number of keys currently stored.
func (t *Table) Len() int {
	return t.length
}

// Cap returns the size of the backing bucket array. It is 0 until the
// first Insert.
func (t *Table) Cap() int {
	return len(t.buckets)
}

// Deinit releases the table's backing storage. It is idempotent and safe
// to call on a zero-value or already-deinited Table. Go's garbage
// collector makes this optional; the method exists so callers pairing
// explicit init/deinit calls have a symmetric API.
func (t *Table) Deinit() {
	t.buckets = nil
	t.length = 0
}
