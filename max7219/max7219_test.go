// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import (
	"errors"
	"fmt"
	"testing"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/spi/spitest"
)

func verifyOperations(found, expected []conntest.IO) error {
	if len(found) != len(expected) {
		return fmt.Errorf("invalid length. found length: %d expected length: %d", len(found), len(expected))
	}
	for outer := range len(expected) {
		if len(found[outer].W) != len(expected[outer].W) {
			return fmt.Errorf("found[%d] has %d bytes, expected %d", outer, len(found[outer].W), len(expected[outer].W))
		}
		for inner := range len(found[outer].W) {
			if expected[outer].W[inner] != found[outer].W[inner] {
				return fmt.Errorf("data not as expected. found[%d][%d]=0x%x expected 0x%x",
					outer,
					inner,
					found[outer].W[inner],
					expected[outer].W[inner])
			}
		}
	}
	return nil
}

func newDev(t *testing.T, record *spitest.Record) *Dev {
	t.Helper()
	dev, err := NewSPI(record)
	if err != nil {
		t.Fatal(err)
	}
	if err = dev.Init(8, 1, int(DecodeNone)); err != nil {
		t.Fatal(err)
	}
	record.Ops = make([]conntest.IO, 0)
	return dev
}

func TestInit(t *testing.T) {
	record := &spitest.Record{}

	dev, err := NewSPI(record)
	if err != nil {
		t.Fatal(err)
	}
	if err = dev.Init(8, 1, 0); err != nil {
		t.Fatal(err)
	}
	expected := []conntest.IO{
		{W: []uint8{0xc, 0x0}}, // Shutdown - Enter Shutdown Mode
		{W: []uint8{0x9, 0x0}}, // Decode Mode
		{W: []uint8{0xb, 0x7}}, // Scan Limit
		{W: []uint8{0xf, 0x0}}, // Disable self-test
		{W: []uint8{0xa, 0x8}}, // Intensity
		{W: []uint8{0xc, 0x1}}, // Shutdown - Resume Normal Mode
		{W: []uint8{0x1, 0x0}}, // Clear digits 1-8
		{W: []uint8{0x2, 0x0}},
		{W: []uint8{0x3, 0x0}},
		{W: []uint8{0x4, 0x0}},
		{W: []uint8{0x5, 0x0}},
		{W: []uint8{0x6, 0x0}},
		{W: []uint8{0x7, 0x0}},
		{W: []uint8{0x8, 0x0}}}

	if err = verifyOperations(record.Ops, expected); err != nil {
		t.Error(err)
	}
	if dev.Columns() != 8 || dev.Rows() != 1 {
		t.Errorf("unexpected geometry %dx%d", dev.Columns(), dev.Rows())
	}
}

func TestInitDecodeB(t *testing.T) {
	record := &spitest.Record{}
	dev, err := NewSPI(record)
	if err != nil {
		t.Fatal(err)
	}
	if err = dev.Init(4, 1, int(DecodeB)); err != nil {
		t.Fatal(err)
	}
	expected := []conntest.IO{
		{W: []uint8{0xc, 0x0}},
		{W: []uint8{0x9, 0xff}},
		{W: []uint8{0xb, 0x3}},
		{W: []uint8{0xf, 0x0}},
		{W: []uint8{0xa, 0x8}},
		{W: []uint8{0xc, 0x1}},
		{W: []uint8{0x1, 0xf}}, // Code B blank
		{W: []uint8{0x2, 0xf}},
		{W: []uint8{0x3, 0xf}},
		{W: []uint8{0x4, 0xf}}}
	if err = verifyOperations(record.Ops, expected); err != nil {
		t.Error(err)
	}
}

func TestInitInvalid(t *testing.T) {
	record := &spitest.Record{}
	dev, err := NewSPI(record)
	if err != nil {
		t.Fatal(err)
	}
	for _, geometry := range [][3]int{{0, 1, 0}, {9, 1, 0}, {8, 2, 0}, {8, 1, 0x100}} {
		err = dev.Init(geometry[0], geometry[1], geometry[2])
		if !errors.Is(err, segment.ErrInvalidConfiguration) {
			t.Errorf("Init(%v) returned %v", geometry, err)
		}
	}
	if len(record.Ops) != 0 {
		t.Errorf("invalid Init wrote %d operations", len(record.Ops))
	}
}

func TestSetChar(t *testing.T) {
	record := &spitest.Record{}
	dev := newDev(t, record)

	if err := dev.SetChar(0x7e, 0, 0); err != nil {
		t.Error(err)
	}
	if err := dev.SetChar(0xb0, 7, 0); err != nil {
		t.Error(err)
	}
	if err := dev.SetChar(0x30, 8, 0); err == nil {
		t.Error("expected error writing past the last digit")
	}
	expected := []conntest.IO{
		{W: []uint8{0x1, 0x7e}},
		{W: []uint8{0x8, 0xb0}}}
	if err := verifyOperations(record.Ops, expected); err != nil {
		t.Error(err)
	}
}

func TestCommands(t *testing.T) {
	record := &spitest.Record{}
	dev := newDev(t, record)

	if err := dev.SetBrightness(0x0b); err != nil {
		t.Error(err)
	}
	if err := dev.SetBrightness(16); !errors.Is(err, segment.ErrInvalidConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if err := dev.SetDisplayTest(true); err != nil {
		t.Error(err)
	}
	if err := dev.SetDisplayTest(false); err != nil {
		t.Error(err)
	}
	if err := dev.SetShutdown(true); err != nil {
		t.Error(err)
	}
	if err := dev.SetShutdown(false); err != nil {
		t.Error(err)
	}
	expected := []conntest.IO{
		{W: []uint8{0xa, 0xb}},
		{W: []uint8{0xf, 0x1}},
		{W: []uint8{0xf, 0x0}},
		{W: []uint8{0xc, 0x0}},
		{W: []uint8{0xc, 0x1}}}
	if err := verifyOperations(record.Ops, expected); err != nil {
		t.Error(err)
	}
}

func TestDisplayWrite(t *testing.T) {
	record := &spitest.Record{}
	dev := newDev(t, record)

	d, err := segment.New(dev, segment.SevenSegmentMAX7219, segment.MAX7219Opts())
	if err != nil {
		t.Fatal(err)
	}
	if err = d.Show("12"); err != nil {
		t.Fatal(err)
	}
	// Digit 0 is the rightmost one, so the first glyph lands on digit 7.
	expected := []conntest.IO{
		{W: []uint8{0x8, 0x30}},
		{W: []uint8{0x7, 0x6d}}}
	if err = verifyOperations(record.Ops, expected); err != nil {
		t.Error(err)
	}

	record.Ops = make([]conntest.IO, 0)
	if err = d.Show("3.1415926"); err != nil {
		t.Fatal(err)
	}
	if len(record.Ops) != 8 {
		t.Errorf("expected 8 digit writes, got %d", len(record.Ops))
	}
	if w := record.Ops[0].W; w[0] != 0x8 || w[1] != 0xf9 {
		t.Errorf("expected 3. on digit 8, got %#v", w)
	}
}

func TestHalt(t *testing.T) {
	record := &spitest.Record{}
	dev := newDev(t, record)
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	if len(record.Ops) != 9 {
		t.Fatalf("expected 9 operations, got %d", len(record.Ops))
	}
	if w := record.Ops[8].W; w[0] != 0xc || w[1] != 0 {
		t.Errorf("expected shutdown, got %#v", w)
	}
}
