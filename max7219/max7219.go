// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// The max7219 package drives numeric 7-segment displays connected to a Maxim
// MAX7219/MAX7221. It implements segment.Controller, so text is normally
// written through a segment.Display using segment.SevenSegmentMAX7219.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219

import (
	"fmt"
	"strings"
	"sync"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DecodeMode is the mode for handling data. Refer to the datasheet for
// more information.
type DecodeMode byte

const (
	_REGISTER_NOOP         byte = 0x0
	_REGISTER_DIGIT0       byte = 0x1
	_REGISTER_DECODE_MODE  byte = 0x9
	_REGISTER_INTENSITY    byte = 0xa
	_REGISTER_SCAN_LIMIT   byte = 0xb
	_REGISTER_SHUTDOWN     byte = 0xc
	_REGISTER_DISPLAY_TEST byte = 0xf

	// DecodeB makes the chip decode digit registers as Code B font values.
	// Raw codes produced by package segment need DecodeNone.
	DecodeB DecodeMode = 0xff
	// DecodeNone is RAW mode, or not decoded. For each byte, bits that are
	// one turn the matching segment on.
	DecodeNone DecodeMode = 0

	// MaxDigits is the number of digit registers of the chip.
	MaxDigits = 8
	// MaxIntensity is the brightest intensity setting.
	MaxIntensity = 15

	packageName = "max7219"
)

var lg = logger.NewPackageLogger(packageName, logger.InfoLevel)

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// Dev is a Maxim MAX7219/MAX7221 device.
type Dev struct {
	mu   sync.Mutex
	conn spi.Conn
	// decode mode for all data registers
	decode DecodeMode
	// The number of digits in this display. Zero until Init is called.
	digits int
	rows   int
	// intensity is sent by Init and updated by SetBrightness.
	intensity byte
}

// NewSPI creates a new Max7219 using the specified spi.Port. Init must be
// called before the display is used.
func NewSPI(p spi.Port) (*Dev, error) {
	// It works in Mode0, Mode2 and Mode3.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, wrap(err)
	}
	return &Dev{conn: c, intensity: 0x08}, nil
}

// sendCommand writes to a data register or command register.
// Data registers are 1-8, and command registers are > 8.
func (d *Dev) sendCommand(register, data byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.conn.Tx([]byte{register, data}, nil))
}

// Init puts the display in its default mode: display test off, digits
// 0..columns-1 scanned, middle intensity, and all digits blank. mode is the
// DecodeMode, 0 for the raw segment codes package segment produces.
func (d *Dev) Init(columns, rows, mode int) error {
	if columns <= 0 || columns > MaxDigits {
		return wrap(segment.ConfigError("columns", columns))
	}
	if rows != 1 {
		return wrap(segment.ConfigError("rows", rows))
	}
	if mode < 0 || mode > 0xff {
		return wrap(segment.ConfigError("mode", mode))
	}
	d.digits = columns
	d.rows = rows
	var initCommands = [][]byte{
		{_REGISTER_SHUTDOWN, 0x00},
		{_REGISTER_DECODE_MODE, byte(mode)},
		{_REGISTER_SCAN_LIMIT, byte(columns - 1)},
		{_REGISTER_DISPLAY_TEST, 0x0},
		{_REGISTER_INTENSITY, d.intensity},
		{_REGISTER_SHUTDOWN, 0x01}}

	for _, cmd := range initCommands {
		if err := d.sendCommand(cmd[0], cmd[1]); err != nil {
			return err
		}
	}
	d.decode = DecodeMode(mode)
	lg.Debugf("initialized %d digits, decode mode 0x%02x", columns, mode)
	return d.Clear()
}

// Clear blanks every scanned digit.
func (d *Dev) Clear() error {
	blank := uint16(0)
	if d.decode == DecodeB {
		// Code B blank character.
		blank = 0x0f
	}
	codes := make([]uint16, d.digits)
	for ix := range codes {
		codes[ix] = blank
	}
	return d.SetAll(codes)
}

// SetDecode tells the Max7219 whether values should be decoded for a 7 segment
// display, or if they should be interpreted literally. Each bit of mode
// selects the decoding of one digit.
func (d *Dev) SetDecode(mode DecodeMode) error {
	if err := d.sendCommand(_REGISTER_DECODE_MODE, byte(mode)); err != nil {
		return err
	}
	d.decode = mode
	return nil
}

// SetChar writes code to digit register column+1. Digit 0 is usually the
// rightmost digit of a module.
func (d *Dev) SetChar(code uint16, column, row int) error {
	if column < 0 || column >= d.digits || row != 0 {
		return wrap(fmt.Errorf("invalid position %d,%d for %d digits", column, row, d.digits))
	}
	return d.sendCommand(_REGISTER_DIGIT0+byte(column), byte(code))
}

// SetAll writes every digit register, codes[0] to digit 0.
func (d *Dev) SetAll(codes []uint16) error {
	if d.digits == 0 || len(codes) != d.digits {
		return wrap(fmt.Errorf("expected %d codes, got %d", d.digits, len(codes)))
	}
	for ix, code := range codes {
		if err := d.sendCommand(_REGISTER_DIGIT0+byte(ix), byte(code)); err != nil {
			return err
		}
	}
	return nil
}

// SetBrightness controls the intensity of the display. The allowed range is
// from 0-15. Keep in mind that the brighter display, the more current drawn.
func (d *Dev) SetBrightness(level int) error {
	if level < 0 || level > MaxIntensity {
		return wrap(segment.ConfigError("brightness", level))
	}
	if err := d.sendCommand(_REGISTER_INTENSITY, byte(level)); err != nil {
		return err
	}
	d.intensity = byte(level)
	return nil
}

// SetShutdown puts the chip in shutdown mode, blanking the display while
// keeping the digit registers.
func (d *Dev) SetShutdown(off bool) error {
	if off {
		return d.sendCommand(_REGISTER_SHUTDOWN, 0)
	}
	return d.sendCommand(_REGISTER_SHUTDOWN, 1)
}

// SetDisplayTest turns on the 7219 display test mode which sets all segments
// on at maximum intensity. Be aware of the current draw, and limit how long
// you leave this on.
func (d *Dev) SetDisplayTest(on bool) error {
	if on {
		return d.sendCommand(_REGISTER_DISPLAY_TEST, 1)
	}
	return d.sendCommand(_REGISTER_DISPLAY_TEST, 0)
}

// Columns returns the number of digits set by Init.
func (d *Dev) Columns() int {
	return d.digits
}

// Rows returns 1 once Init was called.
func (d *Dev) Rows() int {
	return d.rows
}

// Halt blanks the display and shuts it down.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.SetShutdown(true)
}

func (d *Dev) String() string {
	return fmt.Sprintf("MAX7219{digits: %d}", d.digits)
}

var _ segment.Controller = &Dev{}
