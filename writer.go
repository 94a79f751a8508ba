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

// byteWriter fills a caller-owned slice front to back. Running out of
// capacity is ErrTruncated. Hex output is fixed width, zero padded,
// uppercase, most significant nibble first.
type byteWriter struct {
	buf []byte
	n   int
}

func (w *byteWriter) bytes() []byte {
	return w.buf[:w.n]
}

func (w *byteWriter) writeByte(b byte) error {
	if w.n == len(w.buf) {
		return ErrTruncated
	}
	w.buf[w.n] = b
	w.n++
	return nil
}

func (w *byteWriter) writeHex(value uint32, digits int) error {
	shift := uint(digits * 4)
	for i := 0; i < digits; i++ {
		shift -= 4
		if err := w.writeByte(hexDigit(byte(value >> shift & 0xF))); err != nil {
			return err
		}
	}
	return nil
}

func (w *byteWriter) writeFrame(frame CanFrame) error {
	if err := w.writeHex(uint32(frame.Len()), 1); err != nil {
		return err
	}
	for _, b := range frame.Data() {
		if err := w.writeHex(uint32(b), 2); err != nil {
			return err
		}
	}
	return nil
}

func hexDigit(nibble byte) byte {
	if nibble < 10 {
		return '0' + nibble
	}
	return 'A' + nibble - 10
}
