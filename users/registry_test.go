// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package users

import "testing"

func TestRegistryJoinLeaveName(t *testing.T) {
	r := New()

	r.Join(5)
	if name, ok := r.Name(5); !ok || name != "" {
		t.Fatalf("Name(5) = (%q, %v), want (\"\", true)", name, ok)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}

	r.SetName(5, "alice")
	if name, ok := r.Name(5); !ok || name != "alice" {
		t.Fatalf("Name(5) = (%q, %v), want (alice, true)", name, ok)
	}

	r.Leave(5)
	if _, ok := r.Name(5); ok {
		t.Fatalf("Name(5) ok after Leave, want false")
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d after Leave, want 0", r.Len())
	}
}

func TestRegistrySetNameUnregisteredIsNoop(t *testing.T) {
	r := New()
	r.SetName(1, "ghost") // must not panic
	if _, ok := r.Name(1); ok {
		t.Fatalf("Name(1) ok, want false for a never-joined fd")
	}
}

func TestRegistryLeaveUnregisteredIsNoop(t *testing.T) {
	r := New()
	r.Leave(99) // must not panic
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
}

func TestRegistryReusesFreedSlots(t *testing.T) {
	r := New()
	r.Join(1)
	r.Join(2)
	r.Leave(1)
	r.Join(3)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if name, ok := r.Name(3); !ok || name != "" {
		t.Fatalf("Name(3) = (%q, %v), want (\"\", true)", name, ok)
	}
	if name, ok := r.Name(2); !ok || name != "" {
		t.Fatalf("Name(2) = (%q, %v), want (\"\", true)", name, ok)
	}
}

func TestRegistryStatsTracksLen(t *testing.T) {
	r := New()
	for fd := 0; fd < 10; fd++ {
		r.Join(fd)
	}
	st := r.Stats()
	if st.Len != 10 {
		t.Fatalf("Stats().Len = %d, want 10", st.Len)
	}
	if st.Cap < st.Len {
		t.Fatalf("Stats().Cap = %d, smaller than Len = %d", st.Cap, st.Len)
	}
}
