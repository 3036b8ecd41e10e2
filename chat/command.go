// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package chat

import "strings"

const setuserPrefix = ".setuser"

// kind identifies which command a line parses as.
type kind int

const (
	kindSay kind = iota
	kindSetuser
)

// selectCommand classifies line: it is a .setuser command if it starts
// with the literal ".setuser" prefix (a plain byte comparison, no
// word-boundary check after the prefix), otherwise it is say text
// verbatim.
func selectCommand(line string) (kind, string) {
	if strings.HasPrefix(line, setuserPrefix) {
		return kindSetuser, line[len(setuserPrefix):]
	}
	return kindSay, line
}

// isASCIIWhitespace matches space and tab only, not the full
// unicode.IsSpace set.
func isASCIIWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// skipWhitespace trims only leading ASCII spaces/tabs.
func skipWhitespace(s string) string {
	i := 0
	for i < len(s) && isASCIIWhitespace(s[i]) {
		i++
	}
	return s[i:]
}

// commandSetuser extracts the new display name from a ".setuser" line's
// remainder. It replaces any existing name unconditionally, including
// with an empty string if the remainder is blank after whitespace is
// skipped; there is no validation that a name was actually given.
func commandSetuser(args string) string {
	return skipWhitespace(args)
}

// commandSay reports whether a say line should be delivered to the audit
// sink. Say lines are dropped until the client has set a name. Say lines
// are not relayed to other connections.
func commandSay(name string) bool {
	return name != ""
}

// exitLine reports whether line is the sentinel a client sends to
// request its own disconnection, distinct from the connection simply
// closing.
func exitLine(line string) bool {
	return line == "exit"
}
