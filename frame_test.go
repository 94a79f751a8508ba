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

func TestCanFrame_Push(t *testing.T) {
	t.Parallel()

	var frame CanFrame
	assert.Equal(t, 0, frame.Len())
	assert.Empty(t, frame.Data())

	for i := 0; i < MaxFrameLength; i++ {
		require.NoError(t, frame.Push(byte(i)))
	}
	assert.Equal(t, MaxFrameLength, frame.Len())
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7}, frame.Data())

	// A full frame rejects further bytes without disturbing the payload.
	err := frame.Push(0xFF)
	require.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7}, frame.Data())
}

func TestNewCanFrame(t *testing.T) {
	t.Parallel()

	frame, err := NewCanFrame([]byte{0xDE, 0xAD})
	require.NoError(t, err)
	assert.Equal(t, 2, frame.Len())
	assert.Equal(t, []byte{0xDE, 0xAD}, frame.Data())

	_, err = NewCanFrame(make([]byte, 9))
	require.ErrorIs(t, err, ErrTruncated)
}
