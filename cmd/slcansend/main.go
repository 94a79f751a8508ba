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

// slcansend is a one-shot SLCAN host: it opens the channel on an SLCAN
// device, transmits a single CAN frame and closes the channel again.
//
//	slcansend -device /dev/ttyUSB0 -id 123 -data DEADBEEF
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	slcan "github.com/ZaparooProject/go-slcan"
	"github.com/ZaparooProject/go-slcan/transport/serialport"
)

type config struct {
	device   *string
	baudRate *int
	bitrate  *uint
	id       *string
	data     *string
	rtrLen   *int
	extended *bool
	rtr      *bool
}

func parseFlags() *config {
	cfg := &config{
		device:   flag.String("device", "", "Serial device path (e.g. /dev/ttyUSB0 or COM3)"),
		baudRate: flag.Int("baud", serialport.DefaultBaudRate, "Serial baud rate"),
		bitrate:  flag.Uint("bitrate", 6, "CAN bitrate code 0-8 (6 = 500 kbit/s)"),
		id:       flag.String("id", "", "Frame identifier, hex"),
		data:     flag.String("data", "", "Frame payload, hex, up to 8 bytes"),
		rtrLen:   flag.Int("len", 0, "Requested length for RTR frames, 0-8"),
		extended: flag.Bool("ext", false, "Use a 29-bit extended identifier"),
		rtr:      flag.Bool("rtr", false, "Send a remote request frame"),
	}
	flag.Parse()
	return cfg
}

// buildTransmit renders the transmit command for the configured frame,
// matching the grammar the device decodes.
func buildTransmit(cfg *config) (string, error) {
	id, err := strconv.ParseUint(*cfg.id, 16, 32)
	if err != nil {
		return "", fmt.Errorf("invalid identifier %q: %w", *cfg.id, err)
	}

	if *cfg.rtr {
		if *cfg.rtrLen < 0 || *cfg.rtrLen > slcan.MaxFrameLength {
			return "", fmt.Errorf("requested length %d out of range 0-8", *cfg.rtrLen)
		}
		if *cfg.extended {
			return fmt.Sprintf("R%08X%d\r", id, *cfg.rtrLen), nil
		}
		return fmt.Sprintf("r%03X%d\r", id, *cfg.rtrLen), nil
	}

	data, err := hex.DecodeString(*cfg.data)
	if err != nil {
		return "", fmt.Errorf("invalid payload %q: %w", *cfg.data, err)
	}
	if len(data) > slcan.MaxFrameLength {
		return "", fmt.Errorf("payload of %d bytes exceeds 8", len(data))
	}

	if *cfg.extended {
		return fmt.Sprintf("T%08X%d%X\r", id, len(data), data), nil
	}
	return fmt.Sprintf("t%03X%d%X\r", id, len(data), data), nil
}

// sendCommand writes one command and waits for the single-shape response:
// anything starting with BEL is an error, everything else is an ack.
func sendCommand(transport *serialport.Transport, command string) error {
	if _, err := transport.Write([]byte(command)); err != nil {
		return err
	}

	reply := make([]byte, slcan.MaxResponseLength)
	for {
		n, err := transport.Read(reply)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}
		if reply[0] == slcan.ErrorByte {
			return fmt.Errorf("device rejected %q", command)
		}
		return nil
	}
}

func run() error {
	cfg := parseFlags()

	if *cfg.device == "" {
		return errors.New("no serial device given, use -device")
	}
	if *cfg.id == "" {
		return errors.New("no frame identifier given, use -id")
	}
	if *cfg.bitrate > 8 {
		return fmt.Errorf("bitrate code %d out of range 0-8", *cfg.bitrate)
	}

	transmit, err := buildTransmit(cfg)
	if err != nil {
		return err
	}

	transport, err := serialport.New(*cfg.device, serialport.WithBaudRate(*cfg.baudRate))
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	defer transport.Close()

	sequence := []string{
		fmt.Sprintf("S%d\r", *cfg.bitrate),
		"O\r",
		transmit,
		"C\r",
	}
	for _, command := range sequence {
		if err := sendCommand(transport, command); err != nil {
			return err
		}
	}

	fmt.Printf("Sent %q\n", transmit)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
