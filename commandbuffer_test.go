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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drainResult struct {
	cmd Command
	err error
}

// feedChunks pushes each chunk through buf's Tail/Advance cycle and
// collects every visitor result.
func feedChunks(t *testing.T, buf *CommandBuffer, chunks ...string) []drainResult {
	t.Helper()

	var results []drainResult
	for _, chunk := range chunks {
		tail := buf.Tail()
		require.GreaterOrEqual(t, len(tail), len(chunk), "chunk does not fit in tail")
		n := copy(tail, chunk)
		buf.Advance(n, func(cmd Command, err error) bool {
			results = append(results, drainResult{cmd: cmd, err: err})
			return true
		})
	}
	return results
}

func TestCommandBuffer_SingleChunk(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	results := feedChunks(t, &buf, "T1111111184142434445464748\r")

	require.Len(t, results, 1)
	require.NoError(t, results[0].err)
	assert.Equal(t, TransmitExtended{
		ID:    mustExtendedIdentifier(t, 0x11111111),
		Frame: mustFrame(t, []byte("ABCDEFGH")),
	}, results[0].cmd)
	assert.Equal(t, 0, buf.Buffered())
}

func TestCommandBuffer_ChunkInvariance(t *testing.T) {
	t.Parallel()

	// Splitting a command at any point must not change the decode result.
	const input = "T1111111184142434445464748\r"
	want := TransmitExtended{
		ID:    mustExtendedIdentifier(t, 0x11111111),
		Frame: mustFrame(t, []byte("ABCDEFGH")),
	}

	for split := 1; split < len(input); split++ {
		var buf CommandBuffer
		results := feedChunks(t, &buf, input[:split], input[split:])

		require.Len(t, results, 1, "split at %d", split)
		require.NoError(t, results[0].err, "split at %d", split)
		assert.Equal(t, want, results[0].cmd, "split at %d", split)
	}
}

func TestCommandBuffer_TerminatorInOwnChunk(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	results := feedChunks(t, &buf,
		"T11111111841424344454", "64748", "\r", "S0\r")

	require.Len(t, results, 2)
	require.NoError(t, results[0].err)
	assert.Equal(t, TransmitExtended{
		ID:    mustExtendedIdentifier(t, 0x11111111),
		Frame: mustFrame(t, []byte("ABCDEFGH")),
	}, results[0].cmd)
	require.NoError(t, results[1].err)
	assert.Equal(t, SetupWithBitrate{Bitrate: Bitrate10K}, results[1].cmd)
}

func TestCommandBuffer_IncompleteCommandWaits(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	results := feedChunks(t, &buf, "S0\rS0")

	require.Len(t, results, 1)
	require.NoError(t, results[0].err)
	assert.Equal(t, SetupWithBitrate{Bitrate: Bitrate10K}, results[0].cmd)

	// The unterminated "S0" stays buffered for the next cycle.
	assert.Equal(t, 2, buf.Buffered())

	results = feedChunks(t, &buf, "\r")
	require.Len(t, results, 1)
	require.NoError(t, results[0].err)
	assert.Equal(t, SetupWithBitrate{Bitrate: Bitrate10K}, results[0].cmd)
	assert.Equal(t, 0, buf.Buffered())
}

func TestCommandBuffer_BareTerminator(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	results := feedChunks(t, &buf, "\rS0\r")

	require.Len(t, results, 2)
	require.ErrorIs(t, results[0].err, ErrMalformed)
	require.NoError(t, results[1].err)
	assert.Equal(t, SetupWithBitrate{Bitrate: Bitrate10K}, results[1].cmd)
}

func TestCommandBuffer_Resynchronization(t *testing.T) {
	t.Parallel()

	// A malformed command must not take the following valid one with it.
	var buf CommandBuffer
	results := feedChunks(t, &buf, "INVALID\rS0", "\r")

	require.Len(t, results, 2)
	require.ErrorIs(t, results[0].err, ErrMalformed)
	require.NoError(t, results[1].err)
	assert.Equal(t, SetupWithBitrate{Bitrate: Bitrate10K}, results[1].cmd)
}

func TestCommandBuffer_FullBufferWithoutTerminator(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	junk := strings.Repeat("A", MaxCommandLength)
	results := feedChunks(t, &buf, junk)

	// Unrecoverable: no command can be longer than the buffer, so the
	// whole content is dropped in a single malformed result.
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].err, ErrMalformed)
	assert.Equal(t, 0, buf.Buffered())

	// The stream is resynchronized afterwards.
	results = feedChunks(t, &buf, "O\r")
	require.Len(t, results, 1)
	require.NoError(t, results[0].err)
	assert.Equal(t, Open{}, results[0].cmd)
}

func TestCommandBuffer_NearlyFullWithoutTerminatorWaits(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	results := feedChunks(t, &buf, strings.Repeat("A", MaxCommandLength-1))

	assert.Empty(t, results)
	assert.Equal(t, MaxCommandLength-1, buf.Buffered())
	assert.Len(t, buf.Tail(), 1)
}

func TestCommandBuffer_EarlyVisitorStopStillCompacts(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	n := copy(buf.Tail(), "S0\rO\r")

	var seen []Command
	buf.Advance(n, func(cmd Command, err error) bool {
		require.NoError(t, err)
		seen = append(seen, cmd)
		return false
	})

	// Only the first command was visited; the second survives the
	// compaction untouched.
	require.Len(t, seen, 1)
	assert.Equal(t, SetupWithBitrate{Bitrate: Bitrate10K}, seen[0])
	assert.Equal(t, 2, buf.Buffered())

	results := feedChunks(t, &buf, "")
	require.Len(t, results, 1)
	require.NoError(t, results[0].err)
	assert.Equal(t, Open{}, results[0].cmd)
}

func TestCommandBuffer_DecodeErrorDoesNotStopDrain(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	results := feedChunks(t, &buf, "S9\rO\rt8000\rC\r")

	require.Len(t, results, 4)
	require.ErrorIs(t, results[0].err, ErrMalformed)
	assert.Equal(t, Open{}, results[1].cmd)
	require.ErrorIs(t, results[2].err, ErrMalformed)
	assert.Equal(t, Close{}, results[3].cmd)
}

func TestCommandBuffer_AdvancePastCapacityPanics(t *testing.T) {
	t.Parallel()

	var buf CommandBuffer
	assert.Panics(t, func() {
		buf.Advance(MaxCommandLength+1, func(Command, error) bool { return true })
	})
	assert.Panics(t, func() {
		buf.Advance(-1, func(Command, error) bool { return true })
	})
}
