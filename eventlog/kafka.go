// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package eventlog

import (
	"encoding/json"
	"sync"

	"github.com/Shopify/sarama"
	"github.com/aristanetworks/glog"
	"github.com/aristanetworks/jtable/kafka"
	"github.com/cenkalti/backoff/v4"
)

// kafkaSink publishes Events to a Kafka topic through a sarama async
// producer: background goroutines drain the producer's Successes/Errors
// channels while callers hand messages to Input().
type kafkaSink struct {
	producer sarama.AsyncProducer
	topic    string
	wg       sync.WaitGroup
	done     chan struct{}
}

// NewKafkaSink connects to the Kafka brokers at addresses and returns a
// Sink that publishes to topic. Connecting is retried with exponential
// backoff, since brokers may still be starting up when chatd does.
func NewKafkaSink(addresses []string, topic string) (Sink, error) {
	var client sarama.Client
	connect := func() error {
		var err error
		client, err = kafka.NewClient(addresses)
		return err
	}
	if err := backoff.Retry(connect, backoff.NewExponentialBackOff()); err != nil {
		return nil, err
	}

	producer, err := sarama.NewAsyncProducerFromClient(client)
	if err != nil {
		client.Close()
		return nil, err
	}

	s := &kafkaSink{producer: producer, topic: topic, done: make(chan struct{})}
	s.wg.Add(2)
	go s.drainSuccesses()
	go s.drainErrors()
	return s, nil
}

func (s *kafkaSink) Write(e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(e.Kind),
		Value: sarama.ByteEncoder(payload),
	}
	select {
	case s.producer.Input() <- msg:
		return nil
	case <-s.done:
		return nil
	}
}

func (s *kafkaSink) drainSuccesses() {
	defer s.wg.Done()
	for msg := range s.producer.Successes() {
		glog.V(9).Infof("eventlog: published to kafka: %v", msg)
	}
}

func (s *kafkaSink) drainErrors() {
	defer s.wg.Done()
	for err := range s.producer.Errors() {
		glog.Errorf("eventlog: kafka publish failed: %v", err)
	}
}

func (s *kafkaSink) Close() error {
	close(s.done)
	err := s.producer.Close()
	s.wg.Wait()
	return err
}
