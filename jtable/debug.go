// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package jtable

import "fmt"

// dump renders every bucket on its own line, for use in test failure
// messages: index, a one-letter state tag with key and value, then the
// prev <-> next and => chainStart offsets.
func (t *Table) dump() string {
	out := ""
	for i, b := range t.buckets {
		switch b.ctrl {
		case ctrlEmpty:
			out += fmt.Sprintf("%d e[]\n", i)
		case ctrlSnug:
			out += fmt.Sprintf("%d s[%d: %d] %d <-> %d => %d\n",
				i, b.key, b.val, b.prev, b.next, b.chainStart)
		case ctrlDisplacedHead:
			out += fmt.Sprintf("%d h[%d: %d] %d <-> %d => %d\n",
				i, b.key, b.val, b.prev, b.next, b.chainStart)
		case ctrlDisplaced:
			out += fmt.Sprintf("%d d[%d: %d] %d <-> %d => %d\n",
				i, b.key, b.val, b.prev, b.next, b.chainStart)
		}
	}
	return out
}
