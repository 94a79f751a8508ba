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

// Option is a functional option for configuring a Bridge.
type Option func(*Bridge) error

// WithVersion sets the hardware and software version bytes reported in
// answer to the 'V' command.
func WithVersion(hardware, software byte) Option {
	return func(b *Bridge) error {
		b.hardware = hardware
		b.software = software
		return nil
	}
}

// WithSerialNumber sets the serial number reported in answer to the 'N'
// command. The default is "0000".
func WithSerialNumber(serial SerialNumber) Option {
	return func(b *Bridge) error {
		b.serial = serial
		return nil
	}
}

// WithTimestamps sets the initial timestamp mode. The host can change it at
// any time with the 'Z' command.
func WithTimestamps(enabled bool) Option {
	return func(b *Bridge) error {
		b.timestamps = enabled
		return nil
	}
}

// WithClock sets the timestamp source for timestamped notifications. The
// clock must return values in 0..=MaxTimestamp; the default wraps every
// minute of wall time.
func WithClock(clock func() uint16) Option {
	return func(b *Bridge) error {
		if clock == nil {
			return errors.New("slcan: nil clock")
		}
		b.clock = clock
		return nil
	}
}

// WithCommandHook registers a callback invoked with every successfully
// decoded command before it is executed. Intended for logging and
// diagnostics.
func WithCommandHook(hook func(Command)) Option {
	return func(b *Bridge) error {
		b.onCommand = hook
		return nil
	}
}
