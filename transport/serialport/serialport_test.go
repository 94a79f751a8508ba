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

package serialport

import (
	"errors"
	"testing"

	slcan "github.com/ZaparooProject/go-slcan"
)

// TestTransportProperties verifies transport state without real hardware.
func TestTransportProperties(t *testing.T) {
	t.Parallel()

	testPortName := "/dev/ttyUSB0"
	transport := &Transport{
		portName: testPortName,
		baudRate: DefaultBaudRate,
	}

	if transport.PortName() != testPortName {
		t.Errorf("Expected port name %s, got %s", testPortName, transport.PortName())
	}

	if transport.Type() != slcan.TransportSerial {
		t.Errorf("Expected transport type %v, got %v", slcan.TransportSerial, transport.Type())
	}

	// An unopened transport reports as disconnected.
	if transport.IsConnected() {
		t.Error("Expected IsConnected() to return false for unopened transport")
	}
}

func TestWithBaudRate(t *testing.T) {
	t.Parallel()

	transport := &Transport{baudRate: DefaultBaudRate}
	WithBaudRate(921600)(transport)

	if transport.baudRate != 921600 {
		t.Errorf("Expected baud rate 921600, got %d", transport.baudRate)
	}
}

func TestPortError(t *testing.T) {
	t.Parallel()

	cause := errors.New("device busy")
	err := &PortError{Op: "open", Port: "/dev/ttyACM0", Err: cause}

	want := "serialport: open /dev/ttyACM0: device busy"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, cause) {
		t.Error("expected PortError to unwrap to its cause")
	}
}
