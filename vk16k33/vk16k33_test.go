// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vk16k33

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func verifyOperations(found []i2ctest.IO, expected [][]byte) error {
	if len(found) != len(expected) {
		return fmt.Errorf("invalid length. found length: %d expected length: %d", len(found), len(expected))
	}
	for ix := range len(expected) {
		if !bytes.Equal(found[ix].W, expected[ix]) {
			return fmt.Errorf("found[%d]=%#v expected %#v", ix, found[ix].W, expected[ix])
		}
	}
	return nil
}

func newDev(t *testing.T, opts *Opts) (*Dev, *i2ctest.Record) {
	t.Helper()
	bus := &i2ctest.Record{}
	dev, err := NewI2C(bus, opts)
	if err != nil {
		t.Fatal(err)
	}
	if err = dev.Init(4, 1, 0); err != nil {
		t.Fatal(err)
	}
	return dev, bus
}

func TestInit(t *testing.T) {
	_, bus := newDev(t, nil)
	if err := verifyOperations(bus.Ops, [][]byte{{0x21}, {0x81}}); err != nil {
		t.Error(err)
	}
	if bus.Ops[0].Addr != DefaultAddress {
		t.Errorf("expected address %#x, got %#x", DefaultAddress, bus.Ops[0].Addr)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := NewI2C(&i2ctest.Record{}, &Opts{Addr: 0x20}); !errors.Is(err, segment.ErrInvalidConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
	dev, err := NewI2C(&i2ctest.Record{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = dev.Init(9, 1, 0); !errors.Is(err, segment.ErrInvalidConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestSetChar(t *testing.T) {
	dev, bus := newDev(t, nil)
	bus.Ops = nil
	if err := dev.SetChar(0x4406, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetChar(0x4406, 4, 0); err == nil {
		t.Error("expected error for column 4")
	}

	ht, htBus := newDev(t, &Opts{Addr: 0x71, ByteOrder: binary.LittleEndian})
	htBus.Ops = nil
	if err := ht.SetChar(0x4406, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := verifyOperations(bus.Ops, [][]byte{{0x02, 0x44, 0x06}}); err != nil {
		t.Error(err)
	}
	if err := verifyOperations(htBus.Ops, [][]byte{{0x02, 0x06, 0x44}}); err != nil {
		t.Error(err)
	}
	if htBus.Ops[0].Addr != 0x71 {
		t.Errorf("unexpected address %#x", htBus.Ops[0].Addr)
	}
}

func TestSetAll(t *testing.T) {
	dev, bus := newDev(t, nil)
	bus.Ops = nil
	if err := dev.SetAll([]uint16{0x0001, 0x0203, 0x0405, 0x0607}); err != nil {
		t.Fatal(err)
	}
	expected := [][]byte{{0x00, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}}
	if err := verifyOperations(bus.Ops, expected); err != nil {
		t.Error(err)
	}
}

func TestCommands(t *testing.T) {
	dev, bus := newDev(t, nil)
	bus.Ops = nil
	if err := dev.SetBrightness(15); err != nil {
		t.Error(err)
	}
	if err := dev.SetBrightness(16); !errors.Is(err, segment.ErrInvalidConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if err := dev.SetBlink(Blink1Hz); err != nil {
		t.Error(err)
	}
	if err := dev.SetBlink(Blink(4)); err == nil {
		t.Error("expected error for invalid blink rate")
	}
	if dev.BlinkRate() != Blink1Hz {
		t.Errorf("expected blink rate %d, got %d", Blink1Hz, dev.BlinkRate())
	}
	if err := dev.SetShutdown(true); err != nil {
		t.Error(err)
	}
	if err := dev.SetDisplayTest(true); !errors.Is(err, display.ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
	if err := verifyOperations(bus.Ops, [][]byte{{0xef}, {0x85}, {0x20}}); err != nil {
		t.Error(err)
	}
}

func TestDisplay(t *testing.T) {
	dev, bus := newDev(t, nil)
	bus.Ops = nil
	fam := segment.FourteenSegmentVK16K33(segment.English)
	d, err := segment.New(dev, fam, segment.VK16K33Opts())
	if err != nil {
		t.Fatal(err)
	}
	if err = d.ShowAt("1.A", 2, 0); err != nil {
		t.Fatal(err)
	}
	// "A" and "a" share a glyph.
	if err = d.ShowAt("a", 0, 0); err != nil {
		t.Fatal(err)
	}
	expected := [][]byte{
		{0x04, 0x44, 0x06},
		{0x06, 0x00, 0xf7},
		{0x00, 0x00, 0xf7},
	}
	if err = verifyOperations(bus.Ops, expected); err != nil {
		t.Error(err)
	}
}
