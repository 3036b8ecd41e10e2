// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package config parses and hot-reloads chatd's YAML configuration.
package config

import (
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config is chatd's full runtime configuration.
type Config struct {
	Listen      string       `yaml:"listen"`
	KCP         bool         `yaml:"kcp"`
	MaxConns    int          `yaml:"max_conns"`
	Motd        string       `yaml:"motd"`
	MonitorAddr string       `yaml:"monitor_addr"`
	Kafka       KafkaConfig  `yaml:"kafka"`
	Splunk      SplunkConfig `yaml:"splunk"`
	Influx      InfluxConfig `yaml:"influx"`
	RedisAddr   string       `yaml:"redis_addr"`
}

// KafkaConfig configures the Kafka event-log sink.
type KafkaConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Addresses []string `yaml:"addresses"`
	Topic     string   `yaml:"topic"`
}

// SplunkConfig configures the Splunk HEC event-log sink.
type SplunkConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Source  string `yaml:"source"`
}

// InfluxConfig configures periodic table-stats export.
type InfluxConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
}

// Default returns the configuration chatd starts with before any file or
// flag overrides it.
func Default() Config {
	return Config{
		Listen:      ":4000",
		MaxConns:    1024,
		Motd:        "welcome",
		MonitorAddr: ":6060",
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
