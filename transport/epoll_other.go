// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

//go:build !linux

package transport

import "errors"

var errNoEpoll = errors.New("transport: epoll reactor requires linux")

// Reactor is only functional on Linux, where epoll drives the line
// server's event loop. On other platforms ListenTCP fails up front; the
// KCP listener, which never needs a reactor, is the portable transport.
type Reactor struct{}

// NewReactor always fails off Linux.
func NewReactor() (*Reactor, error) { return nil, errNoEpoll }

// Add always fails off Linux.
func (r *Reactor) Add(c Conn) error { return errNoEpoll }

// Remove always fails off Linux.
func (r *Reactor) Remove(c Conn) error { return errNoEpoll }

// Wait always fails off Linux.
func (r *Reactor) Wait() ([]Conn, error) { return nil, errNoEpoll }

// Close is a no-op off Linux.
func (r *Reactor) Close() error { return nil }
