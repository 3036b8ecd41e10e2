// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package transport

import (
	"net"

	"golang.org/x/net/netutil"
)

// limitListener caps concurrent accepted connections on ln at maxConns:
// Accept blocks once that many connections are outstanding, instead of
// accepting unboundedly. It is
// used for listeners, like the KCP one, whose accepted net.Conn values
// never need their raw OS file descriptor extracted; netutil's wrapper
// conn does not promote net.Conn's underlying syscall.Conn, so it cannot
// be used upstream of NewConn. See listener_tcp.go for the TCP path,
// which needs the real fd and so limits connections with a semaphore
// instead.
func limitListener(ln net.Listener, maxConns int) net.Listener {
	return netutil.LimitListener(ln, maxConns)
}
