// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Listen == "" {
		t.Fatal("Default().Listen is empty")
	}
	if cfg.MaxConns <= 0 {
		t.Fatalf("Default().MaxConns = %d, want > 0", cfg.MaxConns)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chatd.yaml")
	const doc = `
listen: ":9000"
motd: "hi there"
kafka:
  enabled: true
  addresses: ["broker1:9092", "broker2:9092"]
  topic: "chat-events"
splunk:
  enabled: true
  url: "https://splunk.example:8088"
  token: "tok"
influx:
  enabled: true
  hostname: "influx.example"
  port: 8086
  database: "chatd"
redis_addr: "redis.example:6379"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("Listen = %q, want :9000", cfg.Listen)
	}
	if cfg.Motd != "hi there" {
		t.Errorf("Motd = %q, want \"hi there\"", cfg.Motd)
	}
	if !cfg.Kafka.Enabled || len(cfg.Kafka.Addresses) != 2 || cfg.Kafka.Topic != "chat-events" {
		t.Errorf("Kafka = %+v, not as configured", cfg.Kafka)
	}
	if !cfg.Splunk.Enabled || cfg.Splunk.URL == "" || cfg.Splunk.Token != "tok" {
		t.Errorf("Splunk = %+v, not as configured", cfg.Splunk)
	}
	if !cfg.Influx.Enabled || cfg.Influx.Port != 8086 || cfg.Influx.Database != "chatd" {
		t.Errorf("Influx = %+v, not as configured", cfg.Influx)
	}
	if cfg.RedisAddr != "redis.example:6379" {
		t.Errorf("RedisAddr = %q, not as configured", cfg.RedisAddr)
	}
	// MonitorAddr was not set in doc, so Default()'s value should survive.
	if cfg.MonitorAddr != Default().MonitorAddr {
		t.Errorf("MonitorAddr = %q, want default %q", cfg.MonitorAddr, Default().MonitorAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load of a missing file: want error, got nil")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("listen: [this is not valid: yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of invalid YAML: want error, got nil")
	}
}
