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

// Bitrate is one of the nine standard CAN bus speeds selectable over the
// wire with the 'S' command.
type Bitrate uint8

const (
	// Bitrate10K is 10 kbit/s (wire code '0').
	Bitrate10K Bitrate = iota
	// Bitrate20K is 20 kbit/s (wire code '1').
	Bitrate20K
	// Bitrate50K is 50 kbit/s (wire code '2').
	Bitrate50K
	// Bitrate100K is 100 kbit/s (wire code '3').
	Bitrate100K
	// Bitrate125K is 125 kbit/s (wire code '4').
	Bitrate125K
	// Bitrate250K is 250 kbit/s (wire code '5').
	Bitrate250K
	// Bitrate500K is 500 kbit/s (wire code '6').
	Bitrate500K
	// Bitrate800K is 800 kbit/s (wire code '7').
	Bitrate800K
	// Bitrate1M is 1 Mbit/s (wire code '8').
	Bitrate1M
)

// BitrateFromCode maps a wire code ('0'..'8') to its Bitrate.
func BitrateFromCode(code byte) (Bitrate, error) {
	if code < '0' || code > '8' {
		return 0, fmt.Errorf("bitrate code %q: %w", code, ErrMalformed)
	}
	return Bitrate(code - '0'), nil
}

// Code returns the single-character wire code for the bitrate.
func (b Bitrate) Code() byte {
	return '0' + byte(b)
}

// Kbps returns the bus speed in kilobits per second.
func (b Bitrate) Kbps() uint16 {
	switch b {
	case Bitrate10K:
		return 10
	case Bitrate20K:
		return 20
	case Bitrate50K:
		return 50
	case Bitrate100K:
		return 100
	case Bitrate125K:
		return 125
	case Bitrate250K:
		return 250
	case Bitrate500K:
		return 500
	case Bitrate800K:
		return 800
	case Bitrate1M:
		return 1000
	default:
		return 0
	}
}

func (b Bitrate) String() string {
	if b > Bitrate1M {
		return fmt.Sprintf("Bitrate(%d)", uint8(b))
	}
	return fmt.Sprintf("%dkbit", b.Kbps())
}
