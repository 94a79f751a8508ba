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

// Bus state errors.
var (
	ErrChannelClosed = errors.New("slcan: channel is closed")
	ErrChannelOpen   = errors.New("slcan: channel is open")
	ErrBitrateNotSet = errors.New("slcan: bitrate not configured")
)

// Frame is a bus-side CAN frame exchanged with a Bus controller.
//
// For data frames Length is the payload length and Data[:Length] the
// payload; for RTR frames Length is the requested length and Data is
// unused.
type Frame struct {
	ID       uint32
	Extended bool
	RTR      bool
	Length   uint8
	Data     [8]byte
}

// Bus is the CAN controller a Bridge fronts. Implementations hold the
// channel state (open/closed, configured bitrate); the codec layer never
// tracks it.
//
// All methods are synchronous and must not be called concurrently.
type Bus interface {
	// SetBitrate configures the bus speed. Only legal while closed.
	SetBitrate(bitrate Bitrate) error

	// Open opens the channel. Requires a configured bitrate.
	Open() error

	// Close closes the channel.
	Close() error

	// Transmit enqueues a frame for transmission. Only legal while open.
	Transmit(frame Frame) error

	// Receive returns the next frame received from the bus, if any.
	// It never blocks.
	Receive() (Frame, bool)

	// Status returns the current device status flags.
	Status() (Status, error)
}

// loopbackQueueSize bounds the frames a Loopback holds before signalling a
// data overrun.
const loopbackQueueSize = 16

// Loopback is an in-memory Bus that echoes every transmitted frame back as
// a received frame. It is used by tests and by slcand when no hardware
// controller is attached.
type Loopback struct {
	queue      []Frame
	status     Status
	bitrate    Bitrate
	configured bool
	open       bool
}

// NewLoopback creates a closed, unconfigured loopback bus.
func NewLoopback() *Loopback {
	return &Loopback{queue: make([]Frame, 0, loopbackQueueSize)}
}

// SetBitrate records the bus speed. It fails while the channel is open.
func (l *Loopback) SetBitrate(bitrate Bitrate) error {
	if l.open {
		return ErrChannelOpen
	}
	l.bitrate = bitrate
	l.configured = true
	return nil
}

// Bitrate returns the configured bus speed.
func (l *Loopback) Bitrate() (Bitrate, bool) {
	return l.bitrate, l.configured
}

// Open opens the channel. A bitrate must have been configured first.
func (l *Loopback) Open() error {
	if l.open {
		return ErrChannelOpen
	}
	if !l.configured {
		return ErrBitrateNotSet
	}
	l.open = true
	return nil
}

// Close closes the channel and drops any queued frames.
func (l *Loopback) Close() error {
	if !l.open {
		return ErrChannelClosed
	}
	l.open = false
	l.queue = l.queue[:0]
	return nil
}

// IsOpen reports whether the channel is open.
func (l *Loopback) IsOpen() bool {
	return l.open
}

// Transmit loops frame back into the receive queue. When the queue is full
// the frame is dropped and the data overrun flag is raised.
func (l *Loopback) Transmit(frame Frame) error {
	if !l.open {
		return ErrChannelClosed
	}
	if len(l.queue) == loopbackQueueSize {
		l.status |= StatusDataOverrun
		return nil
	}
	l.queue = append(l.queue, frame)
	return nil
}

// Receive pops the oldest looped-back frame.
func (l *Loopback) Receive() (Frame, bool) {
	if len(l.queue) == 0 {
		return Frame{}, false
	}
	frame := l.queue[0]
	l.queue = l.queue[1:]
	return frame, true
}

// Status returns the sticky status flags.
func (l *Loopback) Status() (Status, error) {
	return l.status, nil
}
