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

import "strings"

// Status is the set of fault and condition flags an SLCAN device reports in
// answer to the 'F' command. Bit 4 is reserved and always zero.
type Status uint8

const (
	// StatusRxFIFOFull indicates the receive FIFO is full.
	StatusRxFIFOFull Status = 1 << 0
	// StatusTxFIFOFull indicates the transmit FIFO is full.
	StatusTxFIFOFull Status = 1 << 1
	// StatusErrorWarning indicates the controller reached the error
	// warning limit.
	StatusErrorWarning Status = 1 << 2
	// StatusDataOverrun indicates a data overrun occurred.
	StatusDataOverrun Status = 1 << 3
	// StatusErrorPassive indicates the controller is error passive.
	StatusErrorPassive Status = 1 << 5
	// StatusArbitrationLost indicates arbitration was lost.
	StatusArbitrationLost Status = 1 << 6
	// StatusBusError indicates a bus error occurred.
	StatusBusError Status = 1 << 7
)

// Has reports whether all flags in mask are set.
func (s Status) Has(mask Status) bool {
	return s&mask == mask
}

func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	names := []struct {
		name string
		flag Status
	}{
		{"rx-fifo-full", StatusRxFIFOFull},
		{"tx-fifo-full", StatusTxFIFOFull},
		{"error-warning", StatusErrorWarning},
		{"data-overrun", StatusDataOverrun},
		{"error-passive", StatusErrorPassive},
		{"arbitration-lost", StatusArbitrationLost},
		{"bus-error", StatusBusError},
	}
	var parts []string
	for _, n := range names {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
