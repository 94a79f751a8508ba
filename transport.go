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

import (
	"io"
	"time"
)

// Transport is the byte-oriented link a Bridge serves the SLCAN protocol
// over. In practice this is a serial port; see the transport/serialport
// package.
type Transport interface {
	io.Reader
	io.Writer

	// Close closes the transport connection.
	Close() error

	// SetReadTimeout bounds how long a single Read may block. A Read
	// that times out returns 0 bytes and no error.
	SetReadTimeout(timeout time.Duration) error

	// Type returns the transport type.
	Type() TransportType
}

// TransportType represents the type of transport.
type TransportType string

const (
	// TransportSerial represents a serial port transport.
	TransportSerial TransportType = "serial"
	// TransportMock represents a mock transport for testing.
	TransportMock TransportType = "mock"
)
