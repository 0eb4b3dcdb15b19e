// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package vk16k33 drives 14-segment alphanumeric displays connected to a
// VK16K33 or Holtek HT16K33 LED controller over I²C.
//
// Each position of the display uses two bytes of the controller RAM, starting
// at address 2*column. The VK16K33 stores the segment word big endian, the
// HT16K33 little endian.
//
// Use segment.FourteenSegmentVK16K33 and segment.VK16K33Opts with it.
//
// # Datasheet
//
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
package vk16k33

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

// Blink is the blink rate of the whole display.
type Blink byte

const (
	BlinkOff    Blink = 0
	Blink2Hz    Blink = 1
	Blink1Hz    Blink = 2
	BlinkHalfHz Blink = 3
)

const (
	cmdSystemSetup  byte = 0x20
	cmdDisplaySetup byte = 0x80
	cmdBrightness   byte = 0xe0

	oscillatorOn byte = 0x01
	displayOn    byte = 0x01

	// DefaultAddress is the address with all address pads open.
	DefaultAddress uint16 = 0x70
	// MaxColumns is the number of 16 bit rows of display RAM.
	MaxColumns = 8
	// MaxBrightness is the highest dimming level.
	MaxBrightness = 15

	packageName = "vk16k33"
)

var (
	ErrNotImplemented = fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)

	lg = logger.NewPackageLogger(packageName, logger.InfoLevel)
)

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// Opts is the device configuration. A nil *Opts selects the default address
// and VK16K33 byte order.
type Opts struct {
	// Addr is the I²C address, 0x70 to 0x77.
	Addr uint16
	// ByteOrder of the segment words in display RAM. Set it to
	// binary.LittleEndian for HT16K33 modules.
	ByteOrder binary.ByteOrder

	_ struct{}
}

// Dev is a VK16K33/HT16K33 controller.
type Dev struct {
	mu      sync.Mutex
	d       *i2c.Dev
	order   binary.ByteOrder
	columns int
	rows    int
	blink   Blink
}

// NewI2C returns a controller on bus b. Init must be called before the display
// is used.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0 {
		o.Addr = DefaultAddress
	}
	if o.Addr < 0x70 || o.Addr > 0x77 {
		return nil, wrap(segment.ConfigError("address", fmt.Sprintf("%#x", o.Addr)))
	}
	if o.ByteOrder == nil {
		o.ByteOrder = binary.BigEndian
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: o.Addr}, order: o.ByteOrder}, nil
}

func (dev *Dev) write(w ...byte) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	return wrap(dev.d.Tx(w, nil))
}

// Init starts the oscillator and turns the display on without blinking.
// mode is unused.
func (dev *Dev) Init(columns, rows, mode int) error {
	if columns <= 0 || columns > MaxColumns {
		return wrap(segment.ConfigError("columns", columns))
	}
	if rows != 1 {
		return wrap(segment.ConfigError("rows", rows))
	}
	dev.columns = columns
	dev.rows = rows
	if err := dev.SetShutdown(false); err != nil {
		return err
	}
	lg.Debugf("initialized %d columns at %#x", columns, dev.d.Addr)
	return dev.SetBlink(BlinkOff)
}

// SetChar writes the segment word of one position.
func (dev *Dev) SetChar(code uint16, column, row int) error {
	if column < 0 || column >= dev.columns || row != 0 {
		return wrap(fmt.Errorf("column %d outside of [0, %d)", column, dev.columns))
	}
	w := []byte{byte(2 * column), 0, 0}
	dev.order.PutUint16(w[1:], code)
	return dev.write(w...)
}

// SetAll writes every position with one transaction starting at address 0.
func (dev *Dev) SetAll(codes []uint16) error {
	if dev.columns == 0 || len(codes) != dev.columns {
		return wrap(fmt.Errorf("expected %d codes, got %d", dev.columns, len(codes)))
	}
	w := make([]byte, 1+2*len(codes))
	for ix, code := range codes {
		dev.order.PutUint16(w[1+2*ix:], code)
	}
	return dev.write(w...)
}

// SetBrightness sets the dimming level, 0 to 15.
func (dev *Dev) SetBrightness(level int) error {
	if level < 0 || level > MaxBrightness {
		return wrap(segment.ConfigError("brightness", level))
	}
	return dev.write(cmdBrightness | byte(level))
}

// SetBlink sets the blink rate of the display and turns it on.
func (dev *Dev) SetBlink(b Blink) error {
	if b > BlinkHalfHz {
		return wrap(segment.ConfigError("blink", b))
	}
	if err := dev.write(cmdDisplaySetup | byte(b)<<1 | displayOn); err != nil {
		return err
	}
	dev.blink = b
	return nil
}

// BlinkRate returns the blink rate last set.
func (dev *Dev) BlinkRate() Blink {
	return dev.blink
}

// SetShutdown stops the oscillator when off is true. Display RAM is kept.
func (dev *Dev) SetShutdown(off bool) error {
	if off {
		return dev.write(cmdSystemSetup)
	}
	return dev.write(cmdSystemSetup | oscillatorOn)
}

// SetDisplayTest is not available for this device.
func (dev *Dev) SetDisplayTest(on bool) error {
	return ErrNotImplemented
}

// Columns returns the number of positions set by Init.
func (dev *Dev) Columns() int {
	return dev.columns
}

// Rows returns 1 once Init was called.
func (dev *Dev) Rows() int {
	return dev.rows
}

// Halt puts the controller in standby.
func (dev *Dev) Halt() error {
	return dev.SetShutdown(true)
}

func (dev *Dev) String() string {
	return fmt.Sprintf("VK16K33{addr: %#x, columns: %d}", dev.d.Addr, dev.columns)
}

var _ segment.Controller = &Dev{}
