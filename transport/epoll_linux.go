// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package transport

import (
	"fmt"
	"net"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// epollMaxEvents bounds one Wait batch; epollTimeoutMillis keeps Wait
// from blocking forever so the pump can observe shutdown.
const (
	epollMaxEvents     = 100
	epollTimeoutMillis = 10000
)

// tcpConn is a Conn backed by a raw file descriptor, registered with a
// Reactor for read-readiness notifications.
type tcpConn struct {
	net.Conn
	fd int
}

func (c *tcpConn) Fd() int { return c.fd }

// NewConn extracts the raw file descriptor from an accepted net.Conn and
// wraps it as a transport.Conn. fd is used directly as the jtable key in
// users.Registry.
func NewConn(nc net.Conn) (Conn, error) {
	sc, ok := nc.(syscall.Conn)
	if !ok {
		return nil, fmt.Errorf("transport: connection type %T has no raw fd", nc)
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return nil, err
	}
	var fd int
	if err := raw.Control(func(fdPtr uintptr) {
		fd = int(fdPtr)
	}); err != nil {
		return nil, err
	}
	return &tcpConn{Conn: nc, fd: fd}, nil
}

// Reactor multiplexes read-readiness across many connections through one
// epoll instance, instead of spawning a goroutine per connection.
type Reactor struct {
	epfd int

	mu   sync.Mutex
	byFd map[int]Conn
}

// NewReactor creates an epoll instance.
func NewReactor() (*Reactor, error) {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		return nil, fmt.Errorf("transport: epoll_create1: %w", err)
	}
	return &Reactor{epfd: epfd, byFd: make(map[int]Conn)}, nil
}

// Add registers c for read-readiness events.
func (r *Reactor) Add(c Conn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fd := c.Fd()
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("transport: epoll_ctl add fd %d: %w", fd, err)
	}
	r.byFd[fd] = c
	return nil
}

// Remove deregisters c. It is a no-op if c was never added or was
// already removed.
func (r *Reactor) Remove(c Conn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fd := c.Fd()
	if _, ok := r.byFd[fd]; !ok {
		return nil
	}
	delete(r.byFd, fd)
	if err := unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		return fmt.Errorf("transport: epoll_ctl del fd %d: %w", fd, err)
	}
	return nil
}

// Wait blocks until at least one registered connection is readable, or
// epollTimeoutMillis elapses, and returns the ready connections.
func (r *Reactor) Wait() ([]Conn, error) {
	var events [epollMaxEvents]unix.EpollEvent
	n, err := unix.EpollWait(r.epfd, events[:], epollTimeoutMillis)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, fmt.Errorf("transport: epoll_wait: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	ready := make([]Conn, 0, n)
	for i := 0; i < n; i++ {
		fd := int(events[i].Fd)
		if c, ok := r.byFd[fd]; ok {
			ready = append(ready, c)
		}
	}
	return ready, nil
}

// Close releases the epoll file descriptor.
func (r *Reactor) Close() error {
	return unix.Close(r.epfd)
}
