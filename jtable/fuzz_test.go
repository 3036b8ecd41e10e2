// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

import (
	"testing"

	"golang.org/x/exp/rand"
)

// refModel differentially checks Table against a plain Go map driven by
// the same operation sequence.
type refModel struct {
	tbl *Table
	ref map[int64]int64
}

func newRefModel() *refModel {
	return &refModel{tbl: New(), ref: make(map[int64]int64)}
}

func (m *refModel) insert(k, v int64) {
	m.tbl.Insert(k, v)
	m.ref[k] = v
}

func (m *refModel) remove(k int64) {
	m.tbl.Remove(k)
	delete(m.ref, k)
}

func (m *refModel) check(t *testing.T, step int) {
	t.Helper()
	if m.tbl.Len() != len(m.ref) {
		t.Fatalf("step %d: Len() = %d, want %d", step, m.tbl.Len(), len(m.ref))
	}
	for k, want := range m.ref {
		got, ok := m.tbl.Lookup(k)
		if !ok || got != want {
			t.Fatalf("step %d: Lookup(%d) = (%d, %v), want (%d, true)", step, k, got, ok, want)
		}
	}
	if err := m.tbl.checkInvariants(); err != nil {
		t.Fatalf("step %d: invariants violated: %v\n%s", step, err, m.tbl.dump())
	}
}

// fuzzDifferential runs numOps random insert/remove operations drawn from
// keys in [0, keyUniverse), checking Table against a reference map after
// every step. A small keyUniverse forces heavy collisions under the
// identity hash function; a large one forces repeated resizes.
func fuzzDifferential(t *testing.T, seed uint64, keyUniverse int64, numOps int) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := newRefModel()
	for i := 0; i < numOps; i++ {
		k := rng.Int63n(keyUniverse)
		v := rng.Int63()
		if rng.Intn(3) == 0 && len(m.ref) > 0 {
			// Bias removals toward keys known to be present so the table
			// exercises real chain splices, not just no-op removes.
			idx := rng.Intn(len(m.ref))
			j := 0
			for existing := range m.ref {
				if j == idx {
					k = existing
					break
				}
				j++
			}
			m.remove(k)
		} else {
			m.insert(k, v)
		}
		m.check(t, i)
	}
}

func TestFuzzSmallKeyUniverseForcesCollisions(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		fuzzDifferential(t, seed, 40, 2000)
	}
}

func TestFuzzLargeKeyUniverseForcesResizes(t *testing.T) {
	for seed := uint64(100); seed <= 103; seed++ {
		fuzzDifferential(t, seed, 1<<20, 3000)
	}
}

func TestFuzzAdversarialSameHomeBucket(t *testing.T) {
	// Every key in this universe shares home 0 once cap stabilizes at a
	// power the keys are all multiples of, stressing chain construction
	// and the cascade path on removal far harder than uniform keys would.
	rng := rand.New(rand.NewSource(7))
	m := newRefModel()
	const stride = 128
	for i := 0; i < 400; i++ {
		k := int64(rng.Intn(64)) * stride
		if rng.Intn(2) == 0 && len(m.ref) > 0 {
			idx := rng.Intn(len(m.ref))
			j := 0
			for existing := range m.ref {
				if j == idx {
					k = existing
					break
				}
				j++
			}
			m.remove(k)
		} else {
			m.insert(k, int64(i))
		}
		m.check(t, i)
	}
}
