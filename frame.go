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

// MaxFrameLength is the payload capacity of a classical CAN frame.
const MaxFrameLength = 8

// CanFrame is the payload of a classical CAN data frame: up to 8 bytes.
//
// A CanFrame is built by appending bytes with Push and is never shrunk;
// decode and encode cycles construct a fresh one each time. The zero value
// is an empty payload.
type CanFrame struct {
	data [MaxFrameLength]byte
	len  uint8
}

// NewCanFrame creates a CanFrame holding a copy of data.
// Payloads longer than 8 bytes are rejected.
func NewCanFrame(data []byte) (CanFrame, error) {
	var f CanFrame
	if len(data) > MaxFrameLength {
		return f, fmt.Errorf("payload of %d bytes exceeds frame capacity: %w", len(data), ErrTruncated)
	}
	f.len = uint8(copy(f.data[:], data))
	return f, nil
}

// Len returns the number of payload bytes.
func (f *CanFrame) Len() int {
	return int(f.len)
}

// Data returns the payload bytes. The returned slice aliases the frame's
// backing array and is valid until the next Push.
func (f *CanFrame) Data() []byte {
	return f.data[:f.len]
}

// Push appends one byte to the payload. It fails once the frame holds 8
// bytes; the existing payload is never truncated or overwritten.
func (f *CanFrame) Push(b byte) error {
	if f.len == MaxFrameLength {
		return fmt.Errorf("frame already holds %d bytes: %w", MaxFrameLength, ErrTruncated)
	}
	f.data[f.len] = b
	f.len++
	return nil
}

func (f CanFrame) String() string {
	return fmt.Sprintf("% X", f.data[:f.len])
}
