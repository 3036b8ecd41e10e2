// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package transport provides the line server's listener abstractions: a
// connection-limited TCP listener driven by an epoll reactor, and an
// alternate KCP (reliable UDP) listener for the same line protocol.
package transport

import (
	"net"
)

// Conn is one accepted connection. Fd is used directly as the jtable key
// in users.Registry: it is a small, often-reused integer, which is
// exactly the regime the identity-hash table is built for.
type Conn interface {
	net.Conn
	Fd() int
}

// Listener accepts Conns. It is satisfied by both the epoll-backed TCP
// listener and the KCP listener, so chat.Server can accept from either;
// see Pollable for how it then reads from each.
type Listener interface {
	Accept() (Conn, error)
	Close() error
	Addr() net.Addr
}

// Pollable is implemented by listeners whose accepted Conns are backed by
// a real OS file descriptor that can be registered with a Reactor.
// chat.Server type-asserts its Listener against this interface to decide
// between driving reads through a single epoll loop (TCP) or falling
// back to a blocking read per connection (KCP, whose sessions have no fd
// epoll can watch).
type Pollable interface {
	Reactor() *Reactor
}
