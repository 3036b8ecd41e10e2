// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package chat

import (
	"bufio"
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/aristanetworks/jtable/eventlog"
	"github.com/aristanetworks/jtable/users"
)

// fakeConn adapts a net.Conn half of a net.Pipe to transport.Conn with a
// caller-assigned fake fd, standing in for a real socket's raw fd.
type fakeConn struct {
	net.Conn
	fd int
}

func (c *fakeConn) Fd() int { return c.fd }

// memSink records every audited event in memory for test assertions.
type memSink struct {
	mu     sync.Mutex
	events []eventlog.Event
}

func (s *memSink) Write(e eventlog.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *memSink) Close() error { return nil }

func (s *memSink) kinds() []eventlog.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]eventlog.EventKind, len(s.events))
	for i, e := range s.events {
		out[i] = e.Kind
	}
	return out
}

func TestServeDispatchesSetuserAndSay(t *testing.T) {
	serverSide, clientSide := net.Pipe()
	defer clientSide.Close()

	registry := users.New()
	sink := &memSink{}
	srv := NewServer(nil, registry, sink, "")

	done := make(chan struct{})
	go func() {
		srv.serve(context.Background(), &fakeConn{Conn: serverSide, fd: 7})
		close(done)
	}()

	w := bufio.NewWriter(clientSide)
	mustWriteLine(t, w, ".setuser alice")
	mustWriteLine(t, w, "hello there")
	mustWriteLine(t, w, "exit")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after exit")
	}

	if name, ok := registry.Name(7); ok {
		t.Errorf("registry still has fd 7 registered as %q after serve returned", name)
	}

	got := sink.kinds()
	want := []eventlog.EventKind{eventlog.EventJoin, eventlog.EventSetName, eventlog.EventSay, eventlog.EventDisconnect}
	if len(got) != len(want) {
		t.Fatalf("audited events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("audited events = %v, want %v", got, want)
		}
	}
}

func TestServeSayBeforeSetuserIsDropped(t *testing.T) {
	serverSide, clientSide := net.Pipe()
	defer clientSide.Close()

	registry := users.New()
	sink := &memSink{}
	srv := NewServer(nil, registry, sink, "")

	done := make(chan struct{})
	go func() {
		srv.serve(context.Background(), &fakeConn{Conn: serverSide, fd: 9})
		close(done)
	}()

	w := bufio.NewWriter(clientSide)
	mustWriteLine(t, w, "hello before setting a name")
	mustWriteLine(t, w, "exit")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after exit")
	}

	for _, k := range sink.kinds() {
		if k == eventlog.EventSay {
			t.Fatal("say before .setuser should be dropped, but was audited")
		}
	}
}

func mustWriteLine(t *testing.T, w *bufio.Writer, line string) {
	t.Helper()
	if _, err := w.WriteString(line + "\n"); err != nil {
		t.Fatalf("write %q: %v", line, err)
	}
	if err := w.Flush(); err != nil && !errors.Is(err, net.ErrClosed) {
		t.Fatalf("flush %q: %v", line, err)
	}
}
