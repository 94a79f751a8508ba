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

// Identifier range limits.
const (
	MaxIdentifier         = 0x7FF      // largest 11-bit identifier
	MaxExtendedIdentifier = 0x1FFFFFFF // largest 29-bit identifier
)

// Identifier is a standard 11-bit CAN arbitration identifier.
//
// The zero value is identifier 0x000. Values are immutable once constructed;
// NewIdentifier is the only way to obtain a non-zero one.
type Identifier struct {
	raw uint16
}

// NewIdentifier creates an Identifier from a raw value.
// Values above 0x7FF are rejected.
func NewIdentifier(raw uint16) (Identifier, error) {
	if raw > MaxIdentifier {
		return Identifier{}, fmt.Errorf("identifier 0x%X exceeds 11 bits: %w", raw, ErrMalformed)
	}
	return Identifier{raw: raw}, nil
}

// Raw returns the identifier value.
func (i Identifier) Raw() uint16 {
	return i.raw
}

func (i Identifier) String() string {
	return fmt.Sprintf("0x%03X", i.raw)
}

// ExtendedIdentifier is an extended 29-bit CAN arbitration identifier.
type ExtendedIdentifier struct {
	raw uint32
}

// NewExtendedIdentifier creates an ExtendedIdentifier from a raw value.
// Values above 0x1FFFFFFF are rejected.
func NewExtendedIdentifier(raw uint32) (ExtendedIdentifier, error) {
	if raw > MaxExtendedIdentifier {
		return ExtendedIdentifier{}, fmt.Errorf("identifier 0x%X exceeds 29 bits: %w", raw, ErrMalformed)
	}
	return ExtendedIdentifier{raw: raw}, nil
}

// Raw returns the identifier value.
func (i ExtendedIdentifier) Raw() uint32 {
	return i.raw
}

func (i ExtendedIdentifier) String() string {
	return fmt.Sprintf("0x%08X", i.raw)
}
