// go-slcan
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-slcan.
//
// go-slcan is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-slcan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-slcan; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package slcan

import "fmt"

// CommandBuffer is an incremental command framer. It accepts a byte stream
// in arbitrary chunks and yields decoded commands in arrival order while
// using a fixed buffer sized for one maximum-length command.
//
// The receive cycle is: copy newly received bytes into Tail, then call
// Advance with the byte count and a visitor. The zero value is an empty
// buffer ready for use.
//
// A CommandBuffer must not be shared between goroutines, and it must not be
// touched from inside an Advance visitor.
type CommandBuffer struct {
	// Invariant: buf[:used] holds no unconsumed terminator byte once an
	// Advance call returns.
	buf  [MaxCommandLength]byte
	used int
}

// Tail returns the unused portion of the buffer. The caller copies newly
// received bytes into it and then calls Advance to mark them consumed.
//
// Tail is never empty: Advance guarantees forward progress even when the
// stream contains no terminator at all.
func (b *CommandBuffer) Tail() []byte {
	return b.buf[b.used:]
}

// Buffered returns the number of bytes currently held, all belonging to a
// not-yet-terminated command.
func (b *CommandBuffer) Buffered() int {
	return b.used
}

// Advance marks n bytes of the tail as received and calls visit once per
// complete command now in the buffer, in arrival order. Decode failures are
// passed to the visitor as (nil, err) and do not stop the scan; a visitor
// returning false does.
//
// Advancing past the buffer's capacity is a caller bug and panics; copy at
// most len(Tail()) bytes per cycle.
//
// When the buffer is completely full without containing a terminator, no
// command can ever complete (the buffer holds the longest legal command),
// so the entire content is discarded and the visitor sees a single
// ErrMalformed result.
//
// On every return path, including an early false from the visitor, the
// consumed bytes are compacted out of the buffer so the next Tail/Advance
// cycle starts clean.
func (b *CommandBuffer) Advance(n int, visit func(cmd Command, err error) bool) {
	if n < 0 || b.used+n > MaxCommandLength {
		panic("slcan: Advance beyond buffer capacity")
	}
	b.used += n

	pos := 0
	defer func() {
		copy(b.buf[:], b.buf[pos:b.used])
		b.used -= pos
	}()

	for {
		end := b.findTerminator(pos)
		if end < 0 {
			if pos == 0 && b.used == MaxCommandLength {
				// No terminator fits anywhere in the pending data;
				// drop it all so the stream can resynchronize.
				pos = b.used
				visit(nil, fmt.Errorf("%d buffered bytes without terminator: %w", MaxCommandLength, ErrMalformed))
			}
			return
		}

		cmd, err := DecodeCommand(b.buf[pos : end+1])
		pos = end + 1
		if !visit(cmd, err) {
			return
		}
	}
}

// findTerminator returns the index of the first terminator at or after
// start, or -1.
func (b *CommandBuffer) findTerminator(start int) int {
	for i := start; i < b.used; i++ {
		if b.buf[i] == Terminator {
			return i
		}
	}
	return -1
}
