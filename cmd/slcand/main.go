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

// slcand serves the SLCAN protocol on a serial port, bridging it to a
// loopback CAN bus. It is useful for exercising SLCAN host software
// (candump, cansend, python-can) without CAN hardware: every frame the
// host transmits comes straight back as a reception.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	slcan "github.com/ZaparooProject/go-slcan"
	"github.com/ZaparooProject/go-slcan/transport/serialport"
	"github.com/sirupsen/logrus"
)

type config struct {
	device   *string
	baudRate *int
	serial   *string
	hardware *uint
	software *uint
	debug    *bool
}

func parseFlags() *config {
	cfg := &config{
		device:   flag.String("device", "", "Serial device path (e.g. /dev/ttyUSB0 or COM3)"),
		baudRate: flag.Int("baud", serialport.DefaultBaudRate, "Serial baud rate"),
		serial:   flag.String("serial", "L00P", "4-character alphanumeric serial number to report"),
		hardware: flag.Uint("hw", 0x10, "Hardware version byte to report"),
		software: flag.Uint("sw", 0x10, "Software version byte to report"),
		debug:    flag.Bool("debug", false, "Enable debug output"),
	}
	flag.Parse()
	return cfg
}

func newBridge(cfg *config, log *logrus.Logger) (*slcan.Bridge, *serialport.Transport, error) {
	serial, err := parseSerialNumber(*cfg.serial)
	if err != nil {
		return nil, nil, err
	}

	transport, err := serialport.New(*cfg.device, serialport.WithBaudRate(*cfg.baudRate))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	bus := slcan.NewLoopback()
	bridge, err := slcan.New(transport, bus,
		slcan.WithVersion(byte(*cfg.hardware), byte(*cfg.software)),
		slcan.WithSerialNumber(serial),
		slcan.WithCommandHook(func(cmd slcan.Command) {
			log.WithField("command", fmt.Sprintf("%#v", cmd)).Debug("command received")
		}),
	)
	if err != nil {
		_ = transport.Close()
		return nil, nil, fmt.Errorf("failed to create bridge: %w", err)
	}
	return bridge, transport, nil
}

func parseSerialNumber(s string) (slcan.SerialNumber, error) {
	if len(s) != 4 {
		return slcan.SerialNumber{}, fmt.Errorf("serial number %q must be exactly 4 characters", s)
	}
	var raw [4]byte
	copy(raw[:], s)
	return slcan.NewSerialNumber(raw)
}

func run() error {
	cfg := parseFlags()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *cfg.debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if *cfg.device == "" {
		return errors.New("no serial device given, use -device")
	}

	bridge, transport, err := newBridge(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := transport.Close(); err != nil {
			log.WithError(err).Warn("failed to close serial port")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"device": *cfg.device,
		"baud":   *cfg.baudRate,
	}).Info("serving SLCAN")

	if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("shutting down")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
