// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Command chatd is the line-oriented chat/echo server: it wires config,
// transport, the jtable-backed connection registry, session auditing, and
// monitoring together.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aristanetworks/glog"

	"github.com/aristanetworks/jtable/chat"
	"github.com/aristanetworks/jtable/config"
	"github.com/aristanetworks/jtable/eventlog"
	"github.com/aristanetworks/jtable/kafka"
	"github.com/aristanetworks/jtable/metrics"
	"github.com/aristanetworks/jtable/monitor"
	"github.com/aristanetworks/jtable/transport"
	"github.com/aristanetworks/jtable/users"

	gloglib "github.com/aristanetworks/jtable/glog"
	influx "github.com/aristanetworks/jtable/influxlib"
)

var configPath = flag.String("config", "", "path to the YAML config file (optional)")

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			glog.Fatalf("chatd: loading config %s: %v", *configPath, err)
		}
		cfg = loaded
	}

	registry := users.New()

	sink := buildSink(cfg)
	defer sink.Close()

	ln, err := listen(cfg)
	if err != nil {
		glog.Fatalf("chatd: %v", err)
	}
	glog.Infof("chatd: listening on %s (kcp=%v)", cfg.Listen, cfg.KCP)

	if cfg.MonitorAddr != "" {
		go monitor.NewMonitorServer(cfg.MonitorAddr, registry).Run()
	}

	var exporter *metrics.Exporter
	if cfg.Influx.Enabled {
		exporter, err = metrics.NewExporter(&influx.InfluxConfig{
			Protocol: influx.HTTP,
			Hostname: cfg.Influx.Hostname,
			Port:     cfg.Influx.Port,
			Database: cfg.Influx.Database,
		}, "chatd_registry", registry, 30*time.Second, &gloglib.Glog{})
		if err != nil {
			glog.Errorf("chatd: influx exporter disabled: %v", err)
		} else {
			go exporter.Run()
			defer exporter.Close()
		}
	}

	if *configPath != "" {
		watcher, err := config.Watch(*configPath, &gloglib.Glog{}, func(c config.Config) {
			glog.Infof("chatd: config reloaded from %s", *configPath)
		})
		if err != nil {
			glog.Errorf("chatd: config hot-reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	srv := chat.NewServer(ln, registry, sink, cfg.Motd)
	if cfg.RedisAddr != "" {
		persister := users.NewNamePersister(cfg.RedisAddr, 7*24*time.Hour)
		defer persister.Close()
		srv.SetPersister(persister)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		glog.Fatalf("chatd: server exited: %v", err)
	}
}

func listen(cfg config.Config) (transport.Listener, error) {
	if cfg.KCP {
		return transport.ListenKCP(cfg.Listen, cfg.MaxConns)
	}
	return transport.ListenTCP(cfg.Listen, cfg.MaxConns)
}

// kafkaFlagSet reports whether -kafka was given explicitly, as opposed to
// resting at its default.
func kafkaFlagSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "kafka" {
			set = true
		}
	})
	return set
}

func buildSink(cfg config.Config) eventlog.Sink {
	var sinks []eventlog.Sink
	if cfg.Kafka.Enabled {
		addresses := cfg.Kafka.Addresses
		if kafkaFlagSet() || len(addresses) == 0 {
			// -kafka on the command line overrides the config file, the same
			// precedence the rest of the brokers in this stack give it; it
			// also supplies the default brokers when the config names none.
			addresses = strings.Split(*kafka.Addresses, ",")
		}
		s, err := eventlog.NewKafkaSink(addresses, cfg.Kafka.Topic)
		if err != nil {
			glog.Errorf("chatd: kafka event sink disabled: %v", err)
		} else {
			sinks = append(sinks, s)
		}
	}
	if cfg.Splunk.Enabled {
		sinks = append(sinks, eventlog.NewSplunkSink(cfg.Splunk.URL, cfg.Splunk.Token, cfg.Splunk.Source))
	}
	return eventlog.NewMultiSink(sinks...)
}
