// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package eventlog audits chat session events (connects, renames, says,
// disconnects) to one or more external sinks.
package eventlog

import "time"

// EventKind identifies what happened in a session.
type EventKind string

const (
	EventJoin       EventKind = "join"
	EventSetName    EventKind = "setname"
	EventSay        EventKind = "say"
	EventDisconnect EventKind = "disconnect"
)

// Event is one audited session occurrence.
type Event struct {
	Kind EventKind
	Fd   int
	Name string
	Text string
	At   time.Time
}

// Sink is an audit destination for Events. The Splunk sink retries each
// write with exponential backoff, at most 3 retries; the Kafka sink hands
// each event to an async producer and does not retry it.
type Sink interface {
	Write(Event) error
	Close() error
}

// multiSink fans an Event out to every Sink, continuing past individual
// failures so one broken sink cannot silence the others; it returns the
// first error encountered, if any.
type multiSink struct {
	sinks []Sink
}

// NewMultiSink combines sinks into a single Sink that writes to all of
// them.
func NewMultiSink(sinks ...Sink) Sink {
	return &multiSink{sinks: sinks}
}

func (m *multiSink) Write(e Event) error {
	var first error
	for _, s := range m.sinks {
		if err := s.Write(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m *multiSink) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
