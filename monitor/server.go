// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monitor provides the embedded HTTP server chatd exposes for
// operational visibility: expvar, pprof, dynamic log-level control, and
// Prometheus-formatted table stats, all on one listener.
package monitor

import (
	_ "expvar" // Go documentation recommended usage
	"fmt"
	"net/http"
	_ "net/http/pprof" // Go documentation recommended usage

	"github.com/aristanetworks/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aristanetworks/jtable/jtable"
)

// StatsSource is anything that can report a jtable.Table's current shape.
// users.Registry implements it; metrics.Exporter samples the same
// interface for its periodic InfluxDB export.
type StatsSource interface {
	Stats() jtable.Stats
}

// Server is the debug/monitoring HTTP server.
type Server interface {
	Run()
}

// server holds the listen address and the dynamic log-level handler.
type server struct {
	// Server name e.g. host[:port]
	serverName string
	ls         *logsetSrv
}

// NewMonitorServer creates a new monitor Server listening on serverName. If
// source is non-nil, its table stats are exported as Prometheus gauges
// under /metrics.
func NewMonitorServer(serverName string, source StatsSource) Server {
	if source != nil {
		registerStats(source)
	}
	return &server{
		serverName: serverName,
		ls:         newLogsetSrv(),
	}
}

func debugHandler(w http.ResponseWriter, r *http.Request) {
	indexTmpl := `<html>
	<head>
	<title>/debug</title>
	</head>
	<body>
	<p>/debug</p>
	<div><a href="/debug/vars">vars</a></div>
	<div><a href="/debug/vars/pretty">vars (pretty)</a></div>
	<div><a href="/debug/pprof">pprof</a></div>
	<div><a href="/metrics">metrics</a></div>
	</body>
	</html>
	`
	fmt.Fprint(w, indexTmpl)
}

// prettyVarsHandler serves the same data as /debug/vars, indented for a
// human reading it directly instead of a metrics scraper.
func prettyVarsHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, VarsToString())
}

// registerStats wires source's Stats() into the default Prometheus
// registry as GaugeFuncs, sampled fresh on every /metrics scrape.
func registerStats(source StatsSource) {
	gauge := func(name, help string, get func(jtable.Stats) float64) {
		prometheus.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "chatd",
				Subsystem: "jtable",
				Name:      name,
				Help:      help,
			},
			func() float64 { return get(source.Stats()) },
		))
	}
	gauge("len", "number of keys currently stored in the registry table",
		func(s jtable.Stats) float64 { return float64(s.Len) })
	gauge("cap", "size of the registry table's backing bucket array",
		func(s jtable.Stats) float64 { return float64(s.Cap) })
	gauge("load_factor", "registry table len/cap",
		func(s jtable.Stats) float64 { return s.LoadFactor })
	gauge("longest_chain", "length of the registry table's longest collision chain",
		func(s jtable.Stats) float64 { return float64(s.LongestChain) })
}

// Run sets up the HTTP server and any handlers and blocks.
func (s *server) Run() {
	http.HandleFunc("/debug", debugHandler)
	http.HandleFunc("/debug/vars/pretty", prettyVarsHandler)
	http.Handle("/debug/loglevel", s.ls)
	http.Handle("/metrics", promhttp.Handler())

	// monitoring server
	err := http.ListenAndServe(s.serverName, nil)
	if err != nil {
		glog.Errorf("monitor: could not start monitor server: %s", err)
	}
}
