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

// MaxResponseLength is the longest encoded response including its
// terminator ("Vhhss\r").
const MaxResponseLength = 6

// ResponseBuffer holds any encoded Response.
type ResponseBuffer struct {
	buf [MaxResponseLength]byte
}

// Response is the device's answer to a Command. It is one of ErrorResponse,
// Ack, TxAck, ExtTxAck, StatusResponse, VersionResponse or SerialResponse.
type Response interface {
	isResponse()
}

// ErrorResponse signals a failed command. On the wire it is a lone BEL
// byte, deliberately not terminator-suffixed.
type ErrorResponse struct{}

// Ack is the generic acknowledgement of a command: a lone terminator.
type Ack struct{}

// TxAck acknowledges a standard frame enqueued for transmission ("z").
type TxAck struct{}

// ExtTxAck acknowledges an extended frame enqueued for transmission ("Z").
type ExtTxAck struct{}

// StatusResponse answers ReadStatus.
type StatusResponse struct {
	Status Status
}

// VersionResponse answers ReadVersion.
type VersionResponse struct {
	Hardware byte
	Software byte
}

// SerialResponse answers ReadSerial.
type SerialResponse struct {
	Serial SerialNumber
}

func (ErrorResponse) isResponse()   {}
func (Ack) isResponse()             {}
func (TxAck) isResponse()           {}
func (ExtTxAck) isResponse()        {}
func (StatusResponse) isResponse()  {}
func (VersionResponse) isResponse() {}
func (SerialResponse) isResponse()  {}

// EncodeResponse renders resp into buf and returns the written sub-slice.
// Every current Response variant fits in a ResponseBuffer; ErrTruncated is
// only possible for a variant exceeding MaxResponseLength.
func EncodeResponse(resp Response, buf *ResponseBuffer) ([]byte, error) {
	w := byteWriter{buf: buf.buf[:]}

	var err error
	switch resp := resp.(type) {
	case ErrorResponse:
		err = w.writeByte(ErrorByte)
	case Ack:
		err = w.writeByte(Terminator)
	case TxAck:
		err = writeTerminated(&w, 'z')
	case ExtTxAck:
		err = writeTerminated(&w, 'Z')
	case StatusResponse:
		if err = w.writeByte('F'); err == nil {
			if err = w.writeHex(uint32(resp.Status), 2); err == nil {
				err = w.writeByte(Terminator)
			}
		}
	case VersionResponse:
		if err = w.writeByte('V'); err == nil {
			if err = w.writeHex(uint32(resp.Hardware), 2); err == nil {
				if err = w.writeHex(uint32(resp.Software), 2); err == nil {
					err = w.writeByte(Terminator)
				}
			}
		}
	case SerialResponse:
		err = w.writeByte('N')
		raw := resp.Serial.Bytes()
		for i := 0; err == nil && i < len(raw); i++ {
			err = w.writeByte(raw[i])
		}
		if err == nil {
			err = w.writeByte(Terminator)
		}
	default:
		return nil, fmt.Errorf("unsupported response %T: %w", resp, ErrMalformed)
	}
	if err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

func writeTerminated(w *byteWriter, b byte) error {
	if err := w.writeByte(b); err != nil {
		return err
	}
	return w.writeByte(Terminator)
}
