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

// Package serialport provides a serial port Transport for SLCAN bridges.
package serialport

import (
	"fmt"
	"time"

	slcan "github.com/ZaparooProject/go-slcan"
	"go.bug.st/serial"
)

// DefaultBaudRate is used when no baud rate option is given. SLCAN
// adapters commonly run at 115200.
const DefaultBaudRate = 115200

// defaultReadTimeout keeps reads from blocking forever so a Bridge.Run
// loop stays responsive to cancellation.
const defaultReadTimeout = 100 * time.Millisecond

// PortError wraps a serial port failure with the operation and port that
// caused it.
type PortError struct {
	Err  error
	Op   string
	Port string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("serialport: %s %s: %v", e.Op, e.Port, e.Err)
}

func (e *PortError) Unwrap() error {
	return e.Err
}

// Transport is a serial port implementation of slcan.Transport.
type Transport struct {
	port     serial.Port
	portName string
	baudRate int
}

// Option configures a Transport before the port is opened.
type Option func(*Transport)

// WithBaudRate overrides the default baud rate.
func WithBaudRate(baudRate int) Option {
	return func(t *Transport) {
		t.baudRate = baudRate
	}
}

// New opens the serial port at path with 8N1 framing and returns a
// connected transport. Stale driver buffers are discarded so the framer
// starts from a clean stream.
func New(path string, opts ...Option) (*Transport, error) {
	transport := &Transport{
		portName: path,
		baudRate: DefaultBaudRate,
	}
	for _, opt := range opts {
		opt(transport)
	}

	mode := &serial.Mode{
		BaudRate: transport.baudRate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, &PortError{Op: "open", Port: path, Err: err}
	}

	if err := port.SetReadTimeout(defaultReadTimeout); err != nil {
		_ = port.Close()
		return nil, &PortError{Op: "set timeout", Port: path, Err: err}
	}
	if err := port.ResetInputBuffer(); err != nil {
		_ = port.Close()
		return nil, &PortError{Op: "reset input", Port: path, Err: err}
	}
	if err := port.ResetOutputBuffer(); err != nil {
		_ = port.Close()
		return nil, &PortError{Op: "reset output", Port: path, Err: err}
	}

	transport.port = port
	return transport, nil
}

// Read reads available bytes. A timeout with no data returns 0 bytes and
// no error.
func (t *Transport) Read(p []byte) (int, error) {
	n, err := t.port.Read(p)
	if err != nil {
		return n, &PortError{Op: "read", Port: t.portName, Err: err}
	}
	return n, nil
}

// Write writes p to the port.
func (t *Transport) Write(p []byte) (int, error) {
	n, err := t.port.Write(p)
	if err != nil {
		return n, &PortError{Op: "write", Port: t.portName, Err: err}
	}
	return n, nil
}

// Close closes the port.
func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	if err := t.port.Close(); err != nil {
		return &PortError{Op: "close", Port: t.portName, Err: err}
	}
	t.port = nil
	return nil
}

// SetReadTimeout bounds how long a single Read may block.
func (t *Transport) SetReadTimeout(timeout time.Duration) error {
	if err := t.port.SetReadTimeout(timeout); err != nil {
		return &PortError{Op: "set timeout", Port: t.portName, Err: err}
	}
	return nil
}

// IsConnected reports whether the port is open.
func (t *Transport) IsConnected() bool {
	return t.port != nil
}

// PortName returns the path the transport was opened with.
func (t *Transport) PortName() string {
	return t.portName
}

// Type returns slcan.TransportSerial.
func (*Transport) Type() slcan.TransportType {
	return slcan.TransportSerial
}
