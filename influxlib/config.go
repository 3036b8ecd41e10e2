// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package influxlib

// Protocol selects the wire protocol InfluxDBConnection uses to reach the
// InfluxDB server.
type Protocol int

const (
	// HTTP connects over InfluxDB's HTTP write API.
	HTTP Protocol = iota
	// UDP connects over InfluxDB's UDP write API, trading delivery
	// guarantees for lower per-point overhead; metrics.Exporter uses this
	// for its high-frequency stats samples when configured to.
	UDP
)

// InfluxConfig is the connection configuration Connect and NewExporter
// consume.
type InfluxConfig struct {
	Hostname        string
	Port            int
	Database        string
	RetentionPolicy string
	Protocol        Protocol
}
