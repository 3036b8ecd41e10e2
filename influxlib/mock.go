// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package influxlib

import (
	"errors"
	"strings"
	"time"

	influxdb "github.com/influxdata/influxdb1-client/v2"
)

// fakeClient is an in-memory influxdb.Client standing in for a live server
// in tests: it records every written point as line-protocol text instead
// of sending it anywhere.
type fakeClient struct {
	failAll bool
	lines   []string
}

func (c *fakeClient) Ping(timeout time.Duration) (time.Duration, string, error) {
	return 0, "", nil
}

func (c *fakeClient) Write(bp influxdb.BatchPoints) error {
	if c.failAll {
		return errors.New("influxlib: fake client configured to fail")
	}
	for _, p := range bp.Points() {
		c.lines = append(c.lines, p.String())
	}
	return nil
}

func (c *fakeClient) Query(q influxdb.Query) (*influxdb.Response, error) {
	return &influxdb.Response{}, nil
}

func (c *fakeClient) QueryAsChunk(q influxdb.Query) (*influxdb.ChunkedResponse, error) {
	return nil, errors.New("influxlib: fake client does not support chunked queries")
}

func (c *fakeClient) Close() error { return nil }

// NewMockConnection returns an InfluxDBConnection backed by an in-memory
// fake client, for tests that exercise WritePoint/RecordBatchPoints
// without a live InfluxDB server.
func NewMockConnection() (*InfluxDBConnection, error) {
	return &InfluxDBConnection{
		Client: &fakeClient{},
		Config: &InfluxConfig{Database: "test"},
	}, nil
}

// GetTestBuffer returns every line-protocol point written to conn's fake
// client so far, newline-joined.
func GetTestBuffer(conn *InfluxDBConnection) (string, error) {
	fc, ok := conn.Client.(*fakeClient)
	if !ok {
		return "", errors.New("influxlib: connection is not backed by a fake client")
	}
	return strings.Join(fc.lines, "\n"), nil
}
