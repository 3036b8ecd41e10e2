// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package chat

import (
	"bytes"
	"context"

	"github.com/aristanetworks/glog"

	"github.com/aristanetworks/jtable/transport"
)

// pollConn is the per-connection state the epoll path keeps outside the
// kernel: the accepted connection, its persistence identity, and any
// bytes read but not yet forming a complete line.
type pollConn struct {
	conn     transport.Conn
	identity string
	buf      []byte
}

// initPoll prepares the Server to drive reads through r instead of one
// blocking goroutine per connection. Called once from Run before the
// accept loop starts, when ln is transport.Pollable.
func (s *Server) initPoll(r *transport.Reactor) {
	s.reactor = r
	s.conns = make(map[int]*pollConn)
}

// admit registers a newly-accepted connection with the epoll reactor
// instead of spawning a goroutine for it, the event-driven counterpart to
// serve's per-connection goroutine.
func (s *Server) admit(c transport.Conn) {
	fd := c.Fd()
	identity := c.RemoteAddr().String()
	s.onJoin(fd, identity)

	s.mu.Lock()
	s.conns[fd] = &pollConn{conn: c, identity: identity}
	s.mu.Unlock()

	if s.motd != "" {
		if _, err := c.Write([]byte(s.motd + "\n")); err != nil {
			s.drop(fd)
			return
		}
	}

	if err := s.reactor.Add(c); err != nil {
		glog.Errorf("chat: epoll_ctl add fd=%d failed: %v", fd, err)
		s.drop(fd)
	}
}

// pump runs the single-threaded epoll loop until ctx is cancelled or the
// reactor errs: wait for readiness, then read and dispatch lines for
// every ready connection before blocking again.
func (s *Server) pump(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		ready, err := s.reactor.Wait()
		if err != nil {
			return err
		}
		for _, c := range ready {
			s.readReady(c)
		}
	}
}

// readReady drains whatever is currently available on c, extracts
// complete newline-terminated lines from the accumulated buffer, and
// dispatches each in turn. A read error or EOF, an "exit" line, or a
// buffer that has grown past maxLineBytes without a newline all drop the
// connection.
func (s *Server) readReady(c transport.Conn) {
	fd := c.Fd()
	s.mu.Lock()
	pc, ok := s.conns[fd]
	s.mu.Unlock()
	if !ok {
		return
	}

	var buf [4096]byte
	n, readErr := c.Read(buf[:])
	if n > 0 {
		pc.buf = append(pc.buf, buf[:n]...)
		for {
			i := bytes.IndexByte(pc.buf, '\n')
			if i < 0 {
				break
			}
			line := string(bytes.TrimRight(pc.buf[:i], "\r"))
			pc.buf = pc.buf[i+1:]
			if exitLine(line) {
				s.drop(fd)
				return
			}
			s.dispatch(fd, pc.identity, line)
		}
		if len(pc.buf) > maxLineBytes {
			glog.V(2).Infof("chat: fd=%d line exceeded %d bytes without a newline", fd, maxLineBytes)
			s.drop(fd)
			return
		}
	}
	if readErr != nil {
		s.drop(fd)
	}
}

// drop deregisters fd from the reactor and registry, audits the
// disconnect, and closes the connection. It is a no-op if fd was already
// dropped (readReady and Reactor.Wait can both observe the same closed
// connection in one batch).
func (s *Server) drop(fd int) {
	s.mu.Lock()
	pc, ok := s.conns[fd]
	if ok {
		delete(s.conns, fd)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	if err := s.reactor.Remove(pc.conn); err != nil {
		glog.V(3).Infof("chat: epoll_ctl del fd=%d failed: %v", fd, err)
	}
	s.onDisconnect(fd)
	pc.conn.Close()
}
