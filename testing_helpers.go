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
	"bytes"
	"time"
)

// MockTransport is an in-memory Transport for testing. Queue host bytes
// with QueueRead; everything the bridge writes accumulates and is read
// back with Written.
type MockTransport struct {
	readBuf  bytes.Buffer
	writeBuf bytes.Buffer
	readErr  error
	writeErr error
	closed   bool
}

// NewMockTransport creates an empty mock transport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// QueueRead appends data to the bytes future Reads will return.
func (m *MockTransport) QueueRead(data []byte) {
	m.readBuf.Write(data)
}

// Written returns everything written to the transport so far.
func (m *MockTransport) Written() []byte {
	return m.writeBuf.Bytes()
}

// ResetWritten discards the accumulated written bytes.
func (m *MockTransport) ResetWritten() {
	m.writeBuf.Reset()
}

// SetReadError makes the next Read fail with err.
func (m *MockTransport) SetReadError(err error) {
	m.readErr = err
}

// SetWriteError makes the next Write fail with err.
func (m *MockTransport) SetWriteError(err error) {
	m.writeErr = err
}

// Read returns queued bytes. With nothing queued it returns 0 bytes and no
// error, mimicking a serial read timeout.
func (m *MockTransport) Read(p []byte) (int, error) {
	if m.readErr != nil {
		err := m.readErr
		m.readErr = nil
		return 0, err
	}
	if m.readBuf.Len() == 0 {
		return 0, nil
	}
	return m.readBuf.Read(p)
}

// Write records p.
func (m *MockTransport) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		err := m.writeErr
		m.writeErr = nil
		return 0, err
	}
	return m.writeBuf.Write(p)
}

// Close marks the transport closed.
func (m *MockTransport) Close() error {
	m.closed = true
	return nil
}

// IsClosed reports whether Close was called.
func (m *MockTransport) IsClosed() bool {
	return m.closed
}

// SetReadTimeout is a no-op for the mock.
func (*MockTransport) SetReadTimeout(_ time.Duration) error {
	return nil
}

// Type returns TransportMock.
func (*MockTransport) Type() TransportType {
	return TransportMock
}
