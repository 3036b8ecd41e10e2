// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package users

import (
	"fmt"
	"time"

	redis "gopkg.in/redis.v4"
)

// NamePersister survives a display name across a client's disconnect and
// reconnect, keyed by a caller-supplied stable identity (not the fd, which
// is only valid for the lifetime of one connection). This is side-table
// persistence for the registry, not persistence of jtable's own storage
// format, which remains a non-goal of the core table.
type NamePersister struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNamePersister returns a NamePersister backed by the Redis server at
// addr. Entries expire after ttl if not refreshed.
func NewNamePersister(addr string, ttl time.Duration) *NamePersister {
	return &NamePersister{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func namesKey(identity string) string {
	return fmt.Sprintf("jtable-chat:name:%s", identity)
}

// Save persists name under identity, refreshing its TTL.
func (p *NamePersister) Save(identity, name string) error {
	return p.client.Set(namesKey(identity), name, p.ttl).Err()
}

// Load returns the previously-saved name for identity, if any.
func (p *NamePersister) Load(identity string) (string, bool, error) {
	v, err := p.client.Get(namesKey(identity)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Close releases the Redis connection pool.
func (p *NamePersister) Close() error {
	return p.client.Close()
}
