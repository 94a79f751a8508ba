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

// SerialNumber is the 4-byte serial number of an SLCAN device. Each byte
// must be an ASCII alphanumeric character; it is sent raw on the wire, not
// hex encoded.
type SerialNumber struct {
	raw [4]byte
}

// NewSerialNumber creates a SerialNumber from 4 raw bytes.
func NewSerialNumber(raw [4]byte) (SerialNumber, error) {
	for i, b := range raw {
		if !isAlphanumeric(b) {
			return SerialNumber{}, fmt.Errorf("serial number byte %d (0x%02X) is not alphanumeric: %w", i, b, ErrMalformed)
		}
	}
	return SerialNumber{raw: raw}, nil
}

// Bytes returns the 4 serial number bytes.
func (s SerialNumber) Bytes() [4]byte {
	return s.raw
}

func (s SerialNumber) String() string {
	return string(s.raw[:])
}

func isAlphanumeric(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	default:
		return false
	}
}
