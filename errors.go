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

import "errors"

// The codec distinguishes exactly two failure kinds. Every error returned by
// decoding or encoding wraps one of these sentinels.
var (
	// ErrMalformed indicates input that does not conform to the SLCAN
	// grammar: an unknown opcode, a bad hex digit, an out-of-range
	// identifier, a length/payload mismatch, a wrong terminator, or
	// trailing bytes after the terminator.
	ErrMalformed = errors.New("slcan: malformed input")

	// ErrTruncated indicates that input ended before a required field
	// could be read, or that an output buffer ran out of capacity while
	// encoding.
	ErrTruncated = errors.New("slcan: truncated input")
)

// IsMalformed reports whether err was caused by input violating the SLCAN
// grammar.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsTruncated reports whether err was caused by input ending mid-command or
// by an output buffer with insufficient capacity.
func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncated)
}
