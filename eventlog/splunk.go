// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package eventlog

import (
	hec "github.com/aristanetworks/splunk-hec-go"
	"github.com/cenkalti/backoff/v4"
)

// splunkSink publishes Events to Splunk's HTTP Event Collector, as an
// alternate audit destination to Kafka.
type splunkSink struct {
	client hec.HEC
	source string
}

// NewSplunkSink returns a Sink that posts Events to the HEC endpoint at
// url, authenticating with token.
func NewSplunkSink(url, token, source string) Sink {
	client := hec.NewClient(url, token)
	return &splunkSink{client: client, source: source}
}

func (s *splunkSink) Write(e Event) error {
	sourceType := string(e.Kind)
	ev := &hec.Event{
		Source:     &s.source,
		SourceType: &sourceType,
		Event:      e,
	}
	ev.SetTime(e.At)
	write := func() error {
		return s.client.WriteEvent(ev)
	}
	return backoff.Retry(write, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
}

func (s *splunkSink) Close() error {
	return nil
}
