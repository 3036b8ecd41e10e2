// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package users is the host application's one concrete embedding of
// jtable.Table: a per-listener registry mapping a connected socket's file
// descriptor to a slot holding that connection's display name.
package users

import (
	"sync"

	"github.com/aristanetworks/jtable/jtable"
)

// chatUser is the side-table payload a registry slot points to. The table
// itself only ever stores small integers (fd -> slot index); the name and
// anything else that doesn't fit a pointer-width int lives here.
type chatUser struct {
	name string
	fd   int
}

// Registry maps connection file descriptors to display names. It owns one
// jtable.Table as the fd -> slot index mapping, exactly as a bare int64 ->
// int64 table is meant to be embedded: callers needing anything richer
// than two integers keep it in a side array and store the array index.
//
// The table itself is not safe for concurrent use, so Registry serializes
// every table operation behind its own mutex: the line server's accept
// goroutine and its epoll pump both touch the same listener's registry.
type Registry struct {
	mu    sync.Mutex
	table *jtable.Table
	slots []*chatUser
	free  []int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{table: jtable.New()}
}

// Join registers fd under the default anonymous (empty) name in a fresh
// slot. It reports nothing back; joining an fd that is already registered
// points its table entry at the new slot and does not free the old one
// (fds are normally only reused after Leave).
func (r *Registry) Join(fd int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := &chatUser{fd: fd, name: ""}
	var slot int
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[slot] = u
	} else {
		slot = len(r.slots)
		r.slots = append(r.slots, u)
	}
	r.table.Insert(int64(fd), int64(slot))
}

// Leave removes fd's registration, if any.
func (r *Registry) Leave(fd int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.table.Lookup(int64(fd))
	if !ok {
		return
	}
	r.table.Remove(int64(fd))
	r.slots[slot] = nil
	r.free = append(r.free, int(slot))
}

// SetName changes the display name registered for fd. It is a no-op if fd
// is not registered.
func (r *Registry) SetName(fd int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.table.Lookup(int64(fd))
	if !ok {
		return
	}
	r.slots[slot].name = name
}

// Name returns fd's current display name and whether fd is registered.
func (r *Registry) Name(fd int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.table.Lookup(int64(fd))
	if !ok {
		return "", false
	}
	return r.slots[slot].name, true
}

// Len returns the number of currently-registered connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.Len()
}

// Stats exposes the underlying table's occupancy for the monitor and
// metrics packages.
func (r *Registry) Stats() jtable.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.Stats()
}
