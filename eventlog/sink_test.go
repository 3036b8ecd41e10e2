// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package eventlog

import (
	"errors"
	"testing"
)

type recordingSink struct {
	events  []Event
	writeOn error
	closeOn error
	closed  bool
}

func (s *recordingSink) Write(e Event) error {
	if s.writeOn != nil {
		return s.writeOn
	}
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeOn
}

func TestMultiSinkFansOutToEverySink(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := NewMultiSink(a, b)

	e := Event{Kind: EventJoin, Fd: 7}
	if err := m.Write(e); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(a.events) != 1 || a.events[0] != e {
		t.Fatalf("sink a did not receive the event: %+v", a.events)
	}
	if len(b.events) != 1 || b.events[0] != e {
		t.Fatalf("sink b did not receive the event: %+v", b.events)
	}
}

func TestMultiSinkOneFailingSinkDoesNotBlockOthers(t *testing.T) {
	failing := &recordingSink{writeOn: errors.New("boom")}
	ok := &recordingSink{}
	m := NewMultiSink(failing, ok)

	err := m.Write(Event{Kind: EventSay})
	if err == nil {
		t.Fatal("Write: want error from failing sink, got nil")
	}
	if len(ok.events) != 1 {
		t.Fatalf("healthy sink did not receive the event despite the other failing")
	}
}

func TestMultiSinkCloseClosesEverySinkAndReturnsFirstError(t *testing.T) {
	a := &recordingSink{closeOn: errors.New("a failed")}
	b := &recordingSink{}
	m := NewMultiSink(a, b)

	if err := m.Close(); err == nil || err.Error() != "a failed" {
		t.Fatalf("Close() = %v, want \"a failed\"", err)
	}
	if !a.closed || !b.closed {
		t.Fatalf("not every sink was closed: a=%v b=%v", a.closed, b.closed)
	}
}

func TestMultiSinkEmpty(t *testing.T) {
	m := NewMultiSink()
	if err := m.Write(Event{Kind: EventJoin}); err != nil {
		t.Fatalf("Write on empty multiSink: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close on empty multiSink: %v", err)
	}
}
