// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

// home returns the hash-home slot for key: the index it would occupy if
// unopposed. Hashing is the identity function on the key's bit pattern,
// reduced mod cap; this is deliberately weak (adversarial keys collide by
// construction) and is load-bearing for the test suite's placement
// assertions, so it must not change.
func home(key int64, cap int) int {
	return int(uint64(key) % uint64(cap))
}

// offsetTo returns the forward, modular displacement from i to j, both in
// [0, cap). The result is always in [0, cap) and is 0 only when i == j.
func offsetTo(i, j, cap int) uint16 {
	d := j - i
	if d < 0 {
		d += cap
	}
	return uint16(d)
}

// advance returns (i+d) mod cap for a forward offset d.
func advance(i int, d uint16, cap int) int {
	j := i + int(d)
	if j >= cap {
		j -= cap
	}
	return j
}

// retreat returns (i-d) mod cap for a forward offset d, i.e. the index that
// is d ahead of the result.
func retreat(i int, d uint16, cap int) int {
	j := i - int(d)
	if j < 0 {
		j += cap
	}
	return j
}

// probeLinear starts at i and walks forward one slot at a time until it
// finds an EMPTY bucket, returning its index.
func (t *Table) probeLinear(i int) int {
	cap := len(t.buckets)
	for {
		i++
		if i == cap {
			i = 0
		}
		if !t.buckets[i].occupied() {
			return i
		}
	}
}

// probeQuadratic starts at i and walks forward in triangular-number steps
// (+1, +2, +3, ...) until it finds an EMPTY bucket, returning its index.
func (t *Table) probeQuadratic(i int) int {
	cap := len(t.buckets)
	step := 1
	for {
		i += step
		step++
		i %= cap
		if !t.buckets[i].occupied() {
			return i
		}
	}
}
