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

func mustSerialNumber(t *testing.T, s string) SerialNumber {
	t.Helper()
	var raw [4]byte
	copy(raw[:], s)
	serial, err := NewSerialNumber(raw)
	require.NoError(t, err)
	return serial
}

func TestEncodeResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		resp Response
		name string
		want string
	}{
		{name: "Error_Is_Lone_BEL", resp: ErrorResponse{}, want: "\x07"},
		{name: "Ack_Is_Lone_Terminator", resp: Ack{}, want: "\r"},
		{name: "TxAck", resp: TxAck{}, want: "z\r"},
		{name: "ExtTxAck", resp: ExtTxAck{}, want: "Z\r"},
		{name: "Status_Single_Flag", resp: StatusResponse{Status: StatusRxFIFOFull}, want: "F01\r"},
		{name: "Status_All_Flags", resp: StatusResponse{Status: 0xEF}, want: "FEF\r"},
		{name: "Version", resp: VersionResponse{Hardware: 1, Software: 2}, want: "V0102\r"},
		{name: "Version_Uppercase_Hex", resp: VersionResponse{Hardware: 0xAB, Software: 0xCD}, want: "VABCD\r"},
		{name: "Serial_Raw_ASCII", resp: SerialResponse{Serial: mustSerialNumber(t, "TEST")}, want: "NTEST\r"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf ResponseBuffer
			got, err := EncodeResponse(tt.resp, &buf)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), got)
			assert.LessOrEqual(t, len(got), MaxResponseLength)
		})
	}
}
