// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package transport

import (
	"context"
	"net"

	"github.com/aristanetworks/jtable/sync/semaphore"
)

// tcpListener adapts a connection-limited net.Listener to transport.
// Listener. Concurrency is capped with a weighted semaphore rather than
// golang.org/x/net/netutil.LimitListener: accepted connections here must
// support SyscallConn so NewConn can extract the raw fd used as the
// jtable registry key, and netutil's wrapper conn does not promote that
// method.
type tcpListener struct {
	net.Listener
	sem     *semaphore.Weighted
	reactor *Reactor
}

// ListenTCP listens on addr and caps concurrent connections at maxConns,
// so a single misbehaving client population cannot exhaust file
// descriptors. The returned Listener also satisfies Pollable: chat.Server
// drives reads for it through a single epoll loop instead of one
// goroutine per connection.
func ListenTCP(addr string, maxConns int) (Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	r, err := NewReactor()
	if err != nil {
		l.Close()
		return nil, err
	}
	return &tcpListener{
		Listener: l,
		sem:      semaphore.NewWeighted(int64(maxConns)),
		reactor:  r,
	}, nil
}

// Reactor returns the listener's epoll reactor, satisfying Pollable.
func (l *tcpListener) Reactor() *Reactor {
	return l.reactor
}

func (l *tcpListener) Close() error {
	l.reactor.Close()
	return l.Listener.Close()
}

func (l *tcpListener) Accept() (Conn, error) {
	if err := l.sem.Acquire(context.Background(), 1); err != nil {
		return nil, err
	}
	nc, err := l.Listener.Accept()
	if err != nil {
		l.sem.Release(1)
		return nil, err
	}
	c, err := NewConn(nc)
	if err != nil {
		nc.Close()
		l.sem.Release(1)
		return nil, err
	}
	return &releasingConn{Conn: c, sem: l.sem}, nil
}

// releasingConn returns its connection slot to the listener's semaphore
// on Close, so a departed client frees capacity for a new one.
type releasingConn struct {
	Conn
	sem *semaphore.Weighted
}

func (c *releasingConn) Close() error {
	err := c.Conn.Close()
	c.sem.Release(1)
	return err
}
