// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package transport

import (
	"net"
	"sync"

	kcp "github.com/xtaci/kcp-go"
)

// kcpListener adapts a KCP listener to transport.Listener. KCP sessions
// are not backed by a raw file descriptor the way TCP connections are, so
// kcpConn synthesizes a stable small integer counter for use as the
// jtable registry key instead.
type kcpListener struct {
	ln      *kcp.Listener
	limited net.Listener

	mu   sync.Mutex
	next int
}

// ListenKCP starts a KCP (reliable UDP) listener on addr, as an alternate
// transport for the same line protocol the TCP/epoll listener serves.
// Concurrent sessions are capped at maxConns via netutil.LimitListener:
// KCP sessions have no OS file descriptor to extract, so the method-
// promotion gap that rules netutil out for the TCP path (see
// listener_tcp.go) does not apply here.
func ListenKCP(addr string, maxConns int) (Listener, error) {
	ln, err := kcp.ListenWithOptions(addr, nil, 0, 0)
	if err != nil {
		return nil, err
	}
	return &kcpListener{ln: ln, limited: limitListener(ln, maxConns)}, nil
}

func (l *kcpListener) Accept() (Conn, error) {
	nc, err := l.limited.Accept()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.next++
	fd := l.next
	l.mu.Unlock()
	return &kcpConn{Conn: nc, fd: fd}, nil
}

func (l *kcpListener) Close() error   { return l.ln.Close() }
func (l *kcpListener) Addr() net.Addr { return l.ln.Addr() }

// kcpConn is a Conn over a KCP session. fd here is a locally-assigned
// sequence number, not an OS file descriptor, but it serves the same role
// as a small, registry-local integer key.
type kcpConn struct {
	net.Conn
	fd int
}

func (c *kcpConn) Fd() int { return c.fd }
