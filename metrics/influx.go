// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package metrics periodically exports registry/table occupancy stats to
// InfluxDB, using the same connect/write/close shape as influxlib.
package metrics

import (
	"time"

	"github.com/aristanetworks/jtable/influxlib"
	"github.com/aristanetworks/jtable/jtable"
	"github.com/aristanetworks/jtable/logger"
)

// StatsSource is anything that can report its table's current shape;
// users.Registry implements it.
type StatsSource interface {
	Stats() jtable.Stats
}

// Exporter periodically writes a StatsSource's jtable.Stats to InfluxDB.
type Exporter struct {
	conn        *influxlib.InfluxDBConnection
	measurement string
	source      StatsSource
	interval    time.Duration
	log         logger.Logger
	done        chan struct{}
}

// NewExporter connects to InfluxDB per config and returns an Exporter
// that has not yet started sampling source.
func NewExporter(config *influxlib.InfluxConfig, measurement string,
	source StatsSource, interval time.Duration, log logger.Logger) (*Exporter, error) {
	conn, err := influxlib.Connect(config)
	if err != nil {
		return nil, err
	}
	return &Exporter{
		conn:        conn,
		measurement: measurement,
		source:      source,
		interval:    interval,
		log:         log,
		done:        make(chan struct{}),
	}, nil
}

// Run samples and writes stats every interval until Close is called. It
// blocks and should be run in its own goroutine.
func (e *Exporter) Run() {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.sample()
		case <-e.done:
			return
		}
	}
}

func (e *Exporter) sample() {
	s := e.source.Stats()
	fields := map[string]interface{}{
		"len":           s.Len,
		"cap":           s.Cap,
		"load_factor":   s.LoadFactor,
		"longest_chain": s.LongestChain,
	}
	if err := e.conn.WritePoint(e.measurement, nil, fields); err != nil {
		e.log.Errorf("metrics: influx write failed: %v", err)
	}
}

// Close stops sampling and releases the InfluxDB connection.
func (e *Exporter) Close() {
	close(e.done)
	e.conn.Close()
}
