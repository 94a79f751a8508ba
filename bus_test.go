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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopback_Lifecycle(t *testing.T) {
	t.Parallel()

	bus := NewLoopback()
	assert.False(t, bus.IsOpen())

	// Opening without a configured bitrate is rejected.
	require.ErrorIs(t, bus.Open(), ErrBitrateNotSet)

	require.NoError(t, bus.SetBitrate(Bitrate500K))
	bitrate, ok := bus.Bitrate()
	require.True(t, ok)
	assert.Equal(t, Bitrate500K, bitrate)

	require.NoError(t, bus.Open())
	assert.True(t, bus.IsOpen())

	// Reconfiguring or reopening an open channel is rejected.
	require.ErrorIs(t, bus.SetBitrate(Bitrate125K), ErrChannelOpen)
	require.ErrorIs(t, bus.Open(), ErrChannelOpen)

	require.NoError(t, bus.Close())
	assert.False(t, bus.IsOpen())
	require.ErrorIs(t, bus.Close(), ErrChannelClosed)
}

func TestLoopback_Echo(t *testing.T) {
	t.Parallel()

	bus := NewLoopback()
	require.NoError(t, bus.SetBitrate(Bitrate250K))
	require.NoError(t, bus.Open())

	sent := Frame{ID: 0x123, Length: 2, Data: [8]byte{0xAA, 0xBB}}
	require.NoError(t, bus.Transmit(sent))

	got, ok := bus.Receive()
	require.True(t, ok)
	assert.Equal(t, sent, got)

	_, ok = bus.Receive()
	assert.False(t, ok)
}

func TestLoopback_TransmitWhileClosed(t *testing.T) {
	t.Parallel()

	bus := NewLoopback()
	err := bus.Transmit(Frame{ID: 1})
	require.ErrorIs(t, err, ErrChannelClosed)
}

func TestLoopback_OverrunSetsStatusFlag(t *testing.T) {
	t.Parallel()

	bus := NewLoopback()
	require.NoError(t, bus.SetBitrate(Bitrate1M))
	require.NoError(t, bus.Open())

	for i := 0; i < loopbackQueueSize; i++ {
		require.NoError(t, bus.Transmit(Frame{ID: uint32(i)}))
	}

	status, err := bus.Status()
	require.NoError(t, err)
	assert.False(t, status.Has(StatusDataOverrun))

	// One frame past capacity is dropped and flagged.
	require.NoError(t, bus.Transmit(Frame{ID: 0x99}))
	status, err = bus.Status()
	require.NoError(t, err)
	assert.True(t, status.Has(StatusDataOverrun))

	count := 0
	for {
		if _, ok := bus.Receive(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, loopbackQueueSize, count)
}

func TestLoopback_CloseDropsQueuedFrames(t *testing.T) {
	t.Parallel()

	bus := NewLoopback()
	require.NoError(t, bus.SetBitrate(Bitrate1M))
	require.NoError(t, bus.Open())
	require.NoError(t, bus.Transmit(Frame{ID: 7}))
	require.NoError(t, bus.Close())

	require.NoError(t, bus.Open())
	_, ok := bus.Receive()
	assert.False(t, ok)
}
