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

/*
Package slcan implements the SLCAN (Serial Line CAN) ASCII protocol.

SLCAN tunnels CAN bus frames and device control commands over a plain
byte-oriented serial link. Commands travel from the host to the device as
short CR-terminated ASCII strings ("S4\r", "O\r", "t1002AABB\r"); the device
answers each command with a response and, while the channel is open, emits
unprompted notifications for frames received from the bus.

This package provides the full device-side codec plus a small dispatch layer:

  - Decoding of host commands, including an incremental framer
    (CommandBuffer) that turns arbitrarily chunked serial input into
    discrete commands without allocating.
  - Bit-exact encoding of responses and notifications into fixed-capacity
    buffers.
  - A Bridge that drains a Transport through the framer and executes
    decoded commands against a Bus controller.

Basic usage, bridging a serial port to a CAN controller:

	import (
	    slcan "github.com/ZaparooProject/go-slcan"
	    "github.com/ZaparooProject/go-slcan/transport/serialport"
	)

	transport, err := serialport.New("/dev/ttyUSB0")
	if err != nil {
	    log.Fatal(err)
	}
	defer transport.Close()

	bridge, err := slcan.New(transport, slcan.NewLoopback(),
	    slcan.WithVersion(0x10, 0x10),
	)
	if err != nil {
	    log.Fatal(err)
	}

	if err := bridge.Run(ctx); err != nil {
	    log.Fatal(err)
	}

The codec types can also be used on their own. Feeding received bytes
through a CommandBuffer:

	var buf slcan.CommandBuffer

	n := copy(buf.Tail(), received)
	buf.Advance(n, func(cmd slcan.Command, err error) bool {
	    if err != nil {
	        // Malformed or truncated command; later commands still decode.
	        return true
	    }
	    handle(cmd)
	    return true
	})

Memory model:

All codec buffers (CommandBuffer, ResponseBuffer, NotificationBuffer) are
fixed-size value types sized for the largest legal message, so the codec
performs no hidden allocation and never retains caller memory beyond a call.
The package is fully synchronous; nothing blocks except Transport reads.

Error handling:

Every codec failure matches exactly one of two sentinels via errors.Is:
ErrMalformed for input that violates the SLCAN grammar, and ErrTruncated
when input ends mid-field or an output buffer runs out of capacity. Both are
ordinary recoverable values; a failed command never corrupts the ones that
follow it in the stream.
*/
package slcan
