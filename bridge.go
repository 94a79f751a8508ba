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
	"context"
	"errors"
	"fmt"
	"time"
)

// Bridge serves the SLCAN protocol on a Transport, executing decoded
// commands against a Bus and reporting bus receptions as notifications.
//
// A Bridge is the device side of the protocol: the peer on the other end
// of the transport is an SLCAN host (for example a socketcand or candump
// talking through a USB serial adapter).
//
// A Bridge is not safe for concurrent use.
type Bridge struct {
	transport Transport
	bus       Bus
	clock     func() uint16
	onCommand func(Command)

	cmdBuf   CommandBuffer
	respBuf  ResponseBuffer
	notifBuf NotificationBuffer

	hardware   byte
	software   byte
	serial     SerialNumber
	timestamps bool
}

// New creates a Bridge serving bus over transport.
func New(transport Transport, bus Bus, opts ...Option) (*Bridge, error) {
	if transport == nil {
		return nil, errors.New("slcan: transport not provided")
	}
	if bus == nil {
		return nil, errors.New("slcan: bus not provided")
	}

	serial, _ := NewSerialNumber([4]byte{'0', '0', '0', '0'})
	bridge := &Bridge{
		transport: transport,
		bus:       bus,
		serial:    serial,
		clock:     wallClock,
	}
	for _, opt := range opts {
		if err := opt(bridge); err != nil {
			return nil, err
		}
	}
	return bridge, nil
}

// wallClock is the default timestamp source: milliseconds into the current
// minute, which keeps the value within 0..=MaxTimestamp.
func wallClock() uint16 {
	now := time.Now()
	return uint16(now.Second()*1000 + now.Nanosecond()/int(time.Millisecond))
}

// Poll performs one receive cycle: it reads available transport bytes into
// the framer, answers every complete command, and forwards frames the bus
// received in the meantime. A Read that times out with no data still
// forwards pending bus frames.
//
// Command failures (malformed input, bus errors) are answered on the wire
// and never returned; Poll only fails on transport errors.
func (b *Bridge) Poll() error {
	n, err := b.transport.Read(b.cmdBuf.Tail())
	if err != nil {
		return fmt.Errorf("transport read failed: %w", err)
	}

	var writeErr error
	b.cmdBuf.Advance(n, func(cmd Command, err error) bool {
		writeErr = b.answer(cmd, err)
		return writeErr == nil
	})
	if writeErr != nil {
		return writeErr
	}

	return b.forwardReceived()
}

// Run polls until ctx is cancelled or the transport fails. The transport's
// read timeout bounds how quickly cancellation is observed.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := b.Poll(); err != nil {
			return err
		}
	}
}

// answer executes one framer result and writes the response.
func (b *Bridge) answer(cmd Command, decodeErr error) error {
	var resp Response
	if decodeErr != nil {
		resp = ErrorResponse{}
	} else {
		if b.onCommand != nil {
			b.onCommand(cmd)
		}
		resp = b.execute(cmd)
	}

	encoded, err := EncodeResponse(resp, &b.respBuf)
	if err != nil {
		return fmt.Errorf("response encoding failed: %w", err)
	}
	if _, err := b.transport.Write(encoded); err != nil {
		return fmt.Errorf("transport write failed: %w", err)
	}
	return nil
}

// execute runs one command against the bus and picks the wire response.
// Every failure maps to the BEL error response.
func (b *Bridge) execute(cmd Command) Response {
	switch cmd := cmd.(type) {
	case SetupWithBitrate:
		return ackOr(b.bus.SetBitrate(cmd.Bitrate))
	case Open:
		return ackOr(b.bus.Open())
	case Close:
		return ackOr(b.bus.Close())
	case TransmitStandard:
		if err := b.bus.Transmit(dataFrame(uint32(cmd.ID.Raw()), false, cmd.Frame)); err != nil {
			return ErrorResponse{}
		}
		return TxAck{}
	case TransmitExtended:
		if err := b.bus.Transmit(dataFrame(cmd.ID.Raw(), true, cmd.Frame)); err != nil {
			return ErrorResponse{}
		}
		return ExtTxAck{}
	case TransmitStandardRTR:
		if err := b.bus.Transmit(rtrFrame(uint32(cmd.ID.Raw()), false, cmd.Length)); err != nil {
			return ErrorResponse{}
		}
		return TxAck{}
	case TransmitExtendedRTR:
		if err := b.bus.Transmit(rtrFrame(cmd.ID.Raw(), true, cmd.Length)); err != nil {
			return ErrorResponse{}
		}
		return ExtTxAck{}
	case ReadStatus:
		status, err := b.bus.Status()
		if err != nil {
			return ErrorResponse{}
		}
		return StatusResponse{Status: status}
	case ReadVersion:
		return VersionResponse{Hardware: b.hardware, Software: b.software}
	case ReadSerial:
		return SerialResponse{Serial: b.serial}
	case SetRxTimestamp:
		b.timestamps = cmd.Enabled
		return Ack{}
	default:
		return ErrorResponse{}
	}
}

// forwardReceived drains the bus receive queue into notifications.
func (b *Bridge) forwardReceived() error {
	for {
		frame, ok := b.bus.Receive()
		if !ok {
			return nil
		}
		notif, err := notificationFor(frame)
		if err != nil {
			// The bus handed us an invalid frame; drop it rather
			// than emit broken wire bytes.
			continue
		}
		if err := b.Notify(notif); err != nil {
			return err
		}
	}
}

// Notify encodes and writes one notification. When the host has enabled
// timestamps with 'Z', a plain notification is stamped with the bridge
// clock first.
func (b *Bridge) Notify(notif Notification) error {
	if b.timestamps {
		if _, stamped := notif.(TimestampedNotification); !stamped {
			notif = TimestampedNotification{Notification: notif, Timestamp: b.clock()}
		}
	}

	encoded, err := EncodeNotification(notif, &b.notifBuf)
	if err != nil {
		return fmt.Errorf("notification encoding failed: %w", err)
	}
	if _, err := b.transport.Write(encoded); err != nil {
		return fmt.Errorf("transport write failed: %w", err)
	}
	return nil
}

func ackOr(err error) Response {
	if err != nil {
		return ErrorResponse{}
	}
	return Ack{}
}

func dataFrame(id uint32, extended bool, payload CanFrame) Frame {
	frame := Frame{ID: id, Extended: extended, Length: uint8(payload.Len())}
	copy(frame.Data[:], payload.Data())
	return frame
}

func rtrFrame(id uint32, extended bool, length uint8) Frame {
	return Frame{ID: id, Extended: extended, RTR: true, Length: length}
}

// notificationFor maps a bus frame to its wire notification.
func notificationFor(frame Frame) (Notification, error) {
	if frame.Length > MaxFrameLength {
		return nil, fmt.Errorf("bus frame length %d: %w", frame.Length, ErrMalformed)
	}

	if frame.Extended {
		id, err := NewExtendedIdentifier(frame.ID)
		if err != nil {
			return nil, err
		}
		if frame.RTR {
			return RxExtendedRTR{ID: id, Length: frame.Length}, nil
		}
		payload, err := NewCanFrame(frame.Data[:frame.Length])
		if err != nil {
			return nil, err
		}
		return RxExtended{ID: id, Frame: payload}, nil
	}

	if frame.ID > MaxIdentifier {
		return nil, fmt.Errorf("standard bus frame id 0x%X: %w", frame.ID, ErrMalformed)
	}
	id, err := NewIdentifier(uint16(frame.ID))
	if err != nil {
		return nil, err
	}
	if frame.RTR {
		return RxStandardRTR{ID: id, Length: frame.Length}, nil
	}
	payload, err := NewCanFrame(frame.Data[:frame.Length])
	if err != nil {
		return nil, err
	}
	return RxStandard{ID: id, Frame: payload}, nil
}
