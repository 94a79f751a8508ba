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

// MaxNotificationLength is the longest encoded notification: opcode +
// 8 identifier digits + length digit + 16 payload digits + 4 timestamp
// digits, with room for a trailing terminator
// ("Tiiiiiiiilddddddddddddddddssss\r").
const MaxNotificationLength = 1 + 8 + 1 + 16 + 4 + 1

// MaxTimestamp is the largest valid notification timestamp: one
// millisecond short of a minute.
const MaxTimestamp = 0xEA5F

// NotificationBuffer holds any encoded Notification, timestamped or not.
type NotificationBuffer struct {
	buf [MaxNotificationLength]byte
}

// Notification is an unprompted message from the device reporting a frame
// received from the bus. It is one of RxStandard, RxExtended,
// RxStandardRTR, RxExtendedRTR or TimestampedNotification.
//
// Notifications mirror the transmit command grammar but carry no
// terminator byte on the wire.
type Notification interface {
	isNotification()
}

// RxStandard reports a received standard data frame ('t').
type RxStandard struct {
	ID    Identifier
	Frame CanFrame
}

// RxExtended reports a received extended data frame ('T').
type RxExtended struct {
	ID    ExtendedIdentifier
	Frame CanFrame
}

// RxStandardRTR reports a received standard remote request frame ('r').
type RxStandardRTR struct {
	ID Identifier
	// Length is the number of bytes requested, 0 to 8.
	Length uint8
}

// RxExtendedRTR reports a received extended remote request frame ('R').
type RxExtendedRTR struct {
	ID ExtendedIdentifier
	// Length is the number of bytes requested, 0 to 8.
	Length uint8
}

// TimestampedNotification wraps a plain notification with a 16-bit receive
// timestamp, appended as 4 hex digits. Timestamps are off by default and
// enabled by the host with the 'Z' command.
//
// The caller is responsible for keeping Timestamp within 0..=MaxTimestamp;
// the encoder only enforces the fixed 4-digit width.
type TimestampedNotification struct {
	Notification Notification
	Timestamp    uint16
}

func (RxStandard) isNotification()              {}
func (RxExtended) isNotification()              {}
func (RxStandardRTR) isNotification()           {}
func (RxExtendedRTR) isNotification()           {}
func (TimestampedNotification) isNotification() {}

// EncodeNotification renders notif into buf and returns the written
// sub-slice.
func EncodeNotification(notif Notification, buf *NotificationBuffer) ([]byte, error) {
	w := byteWriter{buf: buf.buf[:]}
	if err := encodeNotification(notif, &w); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

func encodeNotification(notif Notification, w *byteWriter) error {
	switch notif := notif.(type) {
	case RxStandard:
		if err := w.writeByte('t'); err != nil {
			return err
		}
		if err := w.writeHex(uint32(notif.ID.Raw()), 3); err != nil {
			return err
		}
		return w.writeFrame(notif.Frame)
	case RxExtended:
		if err := w.writeByte('T'); err != nil {
			return err
		}
		if err := w.writeHex(notif.ID.Raw(), 8); err != nil {
			return err
		}
		return w.writeFrame(notif.Frame)
	case RxStandardRTR:
		if err := w.writeByte('r'); err != nil {
			return err
		}
		if err := w.writeHex(uint32(notif.ID.Raw()), 3); err != nil {
			return err
		}
		return w.writeHex(uint32(notif.Length), 1)
	case RxExtendedRTR:
		if err := w.writeByte('R'); err != nil {
			return err
		}
		if err := w.writeHex(notif.ID.Raw(), 8); err != nil {
			return err
		}
		return w.writeHex(uint32(notif.Length), 1)
	case TimestampedNotification:
		if _, nested := notif.Notification.(TimestampedNotification); nested {
			return fmt.Errorf("nested timestamped notification: %w", ErrMalformed)
		}
		if err := encodeNotification(notif.Notification, w); err != nil {
			return err
		}
		return w.writeHex(uint32(notif.Timestamp), 4)
	default:
		return fmt.Errorf("unsupported notification %T: %w", notif, ErrMalformed)
	}
}
