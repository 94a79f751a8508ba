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

// Wire control bytes.
const (
	// Terminator ends every command and every data response (CR).
	Terminator = 0x0D
	// ErrorByte is the out-of-band error response (BEL). It is the one
	// wire byte not followed by a terminator.
	ErrorByte = 0x07
)

// MaxCommandLength is the longest encoded command including its terminator:
// opcode + 8 identifier digits + length digit + 16 payload digits + CR
// ("Tiiiiiiiildddddddddddddddd\r").
const MaxCommandLength = 1 + 8 + 1 + 16 + 1

// Command is a request sent from the host to the SLCAN device. It is one of
// SetupWithBitrate, Open, Close, TransmitStandard, TransmitExtended,
// TransmitStandardRTR, TransmitExtendedRTR, ReadStatus, ReadVersion,
// ReadSerial or SetRxTimestamp.
type Command interface {
	isCommand()
}

// SetupWithBitrate configures the bus speed ('S'). Only accepted while the
// channel is closed.
type SetupWithBitrate struct {
	Bitrate Bitrate
}

// Open opens the CAN channel ('O').
type Open struct{}

// Close closes the CAN channel ('C').
type Close struct{}

// TransmitStandard transmits a standard data frame ('t').
type TransmitStandard struct {
	ID    Identifier
	Frame CanFrame
}

// TransmitExtended transmits an extended data frame ('T').
type TransmitExtended struct {
	ID    ExtendedIdentifier
	Frame CanFrame
}

// TransmitStandardRTR transmits a standard remote request frame ('r').
type TransmitStandardRTR struct {
	ID Identifier
	// Length is the number of bytes requested, 0 to 8.
	Length uint8
}

// TransmitExtendedRTR transmits an extended remote request frame ('R').
type TransmitExtendedRTR struct {
	ID ExtendedIdentifier
	// Length is the number of bytes requested, 0 to 8.
	Length uint8
}

// ReadStatus requests the device status flags ('F').
type ReadStatus struct{}

// ReadVersion requests the hardware and software version ('V').
type ReadVersion struct{}

// ReadSerial requests the device serial number ('N').
type ReadSerial struct{}

// SetRxTimestamp enables or disables timestamped notifications ('Z').
type SetRxTimestamp struct {
	Enabled bool
}

func (SetupWithBitrate) isCommand()    {}
func (Open) isCommand()                {}
func (Close) isCommand()               {}
func (TransmitStandard) isCommand()    {}
func (TransmitExtended) isCommand()    {}
func (TransmitStandardRTR) isCommand() {}
func (TransmitExtendedRTR) isCommand() {}
func (ReadStatus) isCommand()          {}
func (ReadVersion) isCommand()         {}
func (ReadSerial) isCommand()          {}
func (SetRxTimestamp) isCommand()      {}

// DecodeCommand decodes exactly one command from input. The input must end
// with the terminating CR byte: a missing terminator fails with
// ErrTruncated, any byte after it fails with ErrMalformed.
func DecodeCommand(input []byte) (Command, error) {
	r := byteReader{buf: input}

	op, err := r.readByte()
	if err != nil {
		return nil, err
	}

	var cmd Command
	switch op {
	case 'S':
		code, err := r.readByte()
		if err != nil {
			return nil, err
		}
		bitrate, err := BitrateFromCode(code)
		if err != nil {
			return nil, err
		}
		cmd = SetupWithBitrate{Bitrate: bitrate}
	case 'O':
		cmd = Open{}
	case 'C':
		cmd = Close{}
	case 't':
		id, err := r.readIdentifier()
		if err != nil {
			return nil, err
		}
		frame, err := r.readLengthAndFrame()
		if err != nil {
			return nil, err
		}
		cmd = TransmitStandard{ID: id, Frame: frame}
	case 'T':
		id, err := r.readExtendedIdentifier()
		if err != nil {
			return nil, err
		}
		frame, err := r.readLengthAndFrame()
		if err != nil {
			return nil, err
		}
		cmd = TransmitExtended{ID: id, Frame: frame}
	case 'r':
		id, err := r.readIdentifier()
		if err != nil {
			return nil, err
		}
		length, err := r.readFrameLength()
		if err != nil {
			return nil, err
		}
		cmd = TransmitStandardRTR{ID: id, Length: length}
	case 'R':
		id, err := r.readExtendedIdentifier()
		if err != nil {
			return nil, err
		}
		length, err := r.readFrameLength()
		if err != nil {
			return nil, err
		}
		cmd = TransmitExtendedRTR{ID: id, Length: length}
	case 'F':
		cmd = ReadStatus{}
	case 'V':
		cmd = ReadVersion{}
	case 'N':
		cmd = ReadSerial{}
	case 'Z':
		flag, err := r.readByte()
		if err != nil {
			return nil, err
		}
		switch flag {
		case '0':
			cmd = SetRxTimestamp{Enabled: false}
		case '1':
			cmd = SetRxTimestamp{Enabled: true}
		default:
			return nil, fmt.Errorf("timestamp flag %q: %w", flag, ErrMalformed)
		}
	default:
		return nil, fmt.Errorf("unknown opcode %q: %w", op, ErrMalformed)
	}

	term, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if term != Terminator {
		return nil, fmt.Errorf("terminator byte 0x%02X: %w", term, ErrMalformed)
	}
	if r.rest() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after terminator: %w", r.rest(), ErrMalformed)
	}
	return cmd, nil
}

// byteReader consumes a command byte slice front to back. Running out of
// bytes is ErrTruncated; content violations are ErrMalformed.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) rest() int {
	return len(r.buf) - r.pos
}

func (r *byteReader) readByte() (byte, error) {
	if r.pos == len(r.buf) {
		return 0, ErrTruncated
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) readHex(digits int) (uint32, error) {
	var val uint32
	for i := 0; i < digits; i++ {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		nibble, err := unhex(b)
		if err != nil {
			return 0, err
		}
		val = val<<4 | uint32(nibble)
	}
	return val, nil
}

func (r *byteReader) readIdentifier() (Identifier, error) {
	raw, err := r.readHex(3)
	if err != nil {
		return Identifier{}, err
	}
	return NewIdentifier(uint16(raw))
}

func (r *byteReader) readExtendedIdentifier() (ExtendedIdentifier, error) {
	raw, err := r.readHex(8)
	if err != nil {
		return ExtendedIdentifier{}, err
	}
	return NewExtendedIdentifier(raw)
}

// readFrameLength reads the single length digit and enforces the 0..8 range.
func (r *byteReader) readFrameLength() (uint8, error) {
	raw, err := r.readHex(1)
	if err != nil {
		return 0, err
	}
	if raw > MaxFrameLength {
		return 0, fmt.Errorf("declared frame length %d: %w", raw, ErrMalformed)
	}
	return uint8(raw), nil
}

func (r *byteReader) readLengthAndFrame() (CanFrame, error) {
	var frame CanFrame
	length, err := r.readFrameLength()
	if err != nil {
		return frame, err
	}
	for i := uint8(0); i < length; i++ {
		b, err := r.readHex(2)
		if err != nil {
			return frame, err
		}
		// Cannot overflow, length is capped at 8.
		_ = frame.Push(byte(b))
	}
	return frame, nil
}

func unhex(b byte) (byte, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("hex digit %q: %w", b, ErrMalformed)
	}
}
