// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Command chatcli is the interactive client: it resolves a host/service
// pair to every candidate address, lets the user pick one, connects with
// retry, and pipes stdin/stdout through the same newline-terminated line
// protocol chatd serves.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/aristanetworks/glog"

	"github.com/aristanetworks/jtable/dial"
)

var (
	host       = flag.String("host", "localhost", "chatd host to connect to")
	service    = flag.String("service", "4000", "chatd port or service name")
	maxElapsed = flag.Duration("dial-timeout", 30*time.Second, "how long to retry connecting before giving up")
)

func main() {
	flag.Parse()

	ctx := context.Background()
	candidates, err := dial.Resolve(ctx, *host, *service)
	if err != nil {
		glog.Fatalf("chatcli: %v", err)
	}

	stdin := bufio.NewReader(os.Stdin)
	sel, err := dial.SelectInteractive(os.Stdout, stdin, candidates)
	if err != nil {
		glog.Fatalf("chatcli: selecting address: %v", err)
	}

	conn, err := dial.Dial(ctx, candidates[sel], *maxElapsed)
	if err != nil {
		glog.Fatalf("chatcli: %v", err)
	}
	defer conn.Close()

	fmt.Printf("connected to %s\n", candidates[sel])
	run(conn, stdin, os.Stdout)
}

// run pipes lines typed on in to conn and echoes every line conn sends
// back to out, until either side closes or the user types "exit".
func run(conn net.Conn, in *bufio.Reader, out io.Writer) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			fmt.Fprintln(out, scanner.Text())
		}
	}()

	for {
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		if _, err := io.WriteString(conn, line); err != nil {
			glog.Errorf("chatcli: write failed: %v", err)
			return
		}
		trimmed := line[:len(line)-1]
		if trimmed == "exit" {
			return
		}
		select {
		case <-done:
			return
		default:
		}
	}
}
