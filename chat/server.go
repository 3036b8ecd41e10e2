// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package chat

import (
	"bufio"
	"context"
	"sync"
	"time"

	"github.com/aristanetworks/glog"
	"golang.org/x/sync/errgroup"

	"github.com/aristanetworks/jtable/eventlog"
	"github.com/aristanetworks/jtable/transport"
	"github.com/aristanetworks/jtable/users"
)

// maxLineBytes bounds a single line read from a client, so one connection
// sending an unterminated stream cannot grow bufio.Scanner's buffer
// without limit.
const maxLineBytes = 64 * 1024

// Server is the line-oriented chat/echo server: it accepts connections on
// a transport.Listener, reads newline-terminated messages, dispatches
// .setuser/say through command.go, and audits session events to sink.
type Server struct {
	ln        transport.Listener
	registry  *users.Registry
	sink      eventlog.Sink
	motd      string
	persister *users.NamePersister

	// epoll-path state; unused unless ln is transport.Pollable. See
	// epoll.go.
	mu      sync.Mutex
	reactor *transport.Reactor
	conns   map[int]*pollConn
}

// NewServer returns a Server that accepts connections from ln, tracks
// display names in registry, and audits session events to sink. sink may
// be eventlog.NewMultiSink() with no sinks, which drops every event.
func NewServer(ln transport.Listener, registry *users.Registry, sink eventlog.Sink, motd string) *Server {
	return &Server{ln: ln, registry: registry, sink: sink, motd: motd}
}

// SetPersister enables survival of a client's display name across
// reconnects: on join the name last saved under the connection's remote
// address is restored, and every .setuser is saved under that same key.
// This is best-effort identity (the remote address, not an authenticated
// principal) and is off by default.
func (s *Server) SetPersister(p *users.NamePersister) {
	s.persister = p
}

// Run accepts connections until ctx is cancelled or the listener errs. If
// ln satisfies transport.Pollable (the TCP listener), reads for every
// accepted connection are driven by a single epoll loop over ln's
// Reactor; otherwise (the KCP listener, whose sessions have no fd epoll
// can watch) each connection gets its own goroutine under the same
// errgroup. It returns the listener's Accept error, or nil once ctx is
// done. If the epoll loop fails, the errgroup cancels ctx and Run returns
// nil; the epoll loop's error is not returned.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return s.ln.Close()
	})

	poller, pollable := s.ln.(transport.Pollable)
	if pollable {
		s.initPoll(poller.Reactor())
		g.Go(func() error { return s.pump(ctx) })
	}

	for {
		c, err := s.ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			return err
		}
		if pollable {
			s.admit(c)
			continue
		}
		g.Go(func() error {
			s.serve(ctx, c)
			return nil
		})
	}
}

// onJoin registers fd, restores its persisted name if any, and audits the
// join. It is shared by the blocking per-connection path and the epoll
// path so both admit connections identically.
func (s *Server) onJoin(fd int, identity string) {
	s.registry.Join(fd)
	s.audit(eventlog.EventJoin, fd, "", "")
	if s.persister != nil {
		if name, ok, err := s.persister.Load(identity); err != nil {
			glog.V(3).Infof("chat: name persister load for %s failed: %v", identity, err)
		} else if ok {
			s.registry.SetName(fd, name)
		}
	}
}

// onDisconnect audits and deregisters fd. Shared for the same reason as
// onJoin.
func (s *Server) onDisconnect(fd int) {
	name, _ := s.registry.Name(fd)
	s.audit(eventlog.EventDisconnect, fd, name, "")
	s.registry.Leave(fd)
}

// serve handles one connection for its entire lifetime: registers it,
// writes the MOTD, reads and dispatches lines, and deregisters it on exit.
// It is used for listeners (like KCP) that cannot be driven by the epoll
// loop in epoll.go.
func (s *Server) serve(ctx context.Context, c transport.Conn) {
	fd := c.Fd()
	defer c.Close()

	identity := c.RemoteAddr().String()
	s.onJoin(fd, identity)
	defer s.onDisconnect(fd)

	if s.motd != "" {
		if _, err := c.Write([]byte(s.motd + "\n")); err != nil {
			return
		}
	}

	scanner := bufio.NewScanner(c)
	scanner.Buffer(make([]byte, 4096), maxLineBytes)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := scanner.Text()
		if exitLine(line) {
			return
		}
		s.dispatch(fd, identity, line)
	}
	if err := scanner.Err(); err != nil {
		glog.V(2).Infof("chat: connection fd=%d read error: %v", fd, err)
	}
}

// dispatch classifies line and applies its effect: a .setuser rename, or
// free-text say.
func (s *Server) dispatch(fd int, identity, line string) {
	k, rest := selectCommand(line)
	switch k {
	case kindSetuser:
		name := commandSetuser(rest)
		s.registry.SetName(fd, name)
		s.audit(eventlog.EventSetName, fd, name, "")
		if s.persister != nil && name != "" {
			if err := s.persister.Save(identity, name); err != nil {
				glog.V(3).Infof("chat: name persister save for %s failed: %v", identity, err)
			}
		}
	case kindSay:
		name, ok := s.registry.Name(fd)
		if !ok || !commandSay(name) {
			return
		}
		s.audit(eventlog.EventSay, fd, name, line)
	}
}

func (s *Server) audit(kind eventlog.EventKind, fd int, name, text string) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Write(eventlog.Event{Kind: kind, Fd: fd, Name: name, Text: text, At: time.Now()}); err != nil {
		glog.V(3).Infof("chat: audit write failed: %v", err)
	}
}
