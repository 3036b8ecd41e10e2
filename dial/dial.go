// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package dial is chatcli's address resolution and connection logic: it
// resolves a host/service pair to every candidate address,
// getaddrinfo-style, lets the user pick one interactively, and dials it
// with retry.
package dial

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Candidate is one address a user can choose to connect to.
type Candidate struct {
	Network string
	Addr    string
}

func (c Candidate) String() string { return c.Addr }

// Resolve looks up every address behind host and service, like an
// unrestricted-family getaddrinfo: service may be a numeric port or a
// service name resolvable by the platform's service database.
func Resolve(ctx context.Context, host, service string) ([]Candidate, error) {
	port, err := net.DefaultResolver.LookupPort(ctx, "tcp", service)
	if err != nil {
		return nil, fmt.Errorf("dial: resolve service %q: %w", service, err)
	}
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("dial: resolve host %q: %w", host, err)
	}
	candidates := make([]Candidate, len(ips))
	for i, ip := range ips {
		candidates[i] = Candidate{
			Network: "tcp",
			Addr:    net.JoinHostPort(ip.String(), strconv.Itoa(port)),
		}
	}
	return candidates, nil
}

// SelectInteractive prints each candidate with its index and prompts r for
// a selection, re-prompting on anything out of range. A blank line selects
// index 0.
func SelectInteractive(w io.Writer, r *bufio.Reader, candidates []Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, errors.New("dial: no candidates to select from")
	}
	for i, c := range candidates {
		fmt.Fprintf(w, "[%d] %s\n", i, c)
	}
	for {
		fmt.Fprint(w, "\nSelect (default = 0): ")
		line, err := r.ReadString('\n')
		if err != nil {
			if line == "" {
				return 0, err
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(w)
			return 0, nil
		}
		sel, err := strconv.Atoi(line)
		if err != nil || sel < 0 || sel >= len(candidates) {
			continue
		}
		fmt.Fprintln(w)
		return sel, nil
	}
}

// Dial connects to c, retrying with exponential backoff for up to
// maxElapsed: the target chatd process may still be coming up, and a
// single immediate failure shouldn't send the user back to the selector.
func Dial(ctx context.Context, c Candidate, maxElapsed time.Duration) (net.Conn, error) {
	var conn net.Conn
	var d net.Dialer
	connect := func() error {
		nc, err := d.DialContext(ctx, c.Network, c.Addr)
		if err != nil {
			return err
		}
		conn = nc
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed
	if err := backoff.Retry(connect, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("dial: connect to %s: %w", c, err)
	}
	return conn, nil
}
