// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tm1652 drives digital tube modules built around the Titan Micro
// TM1652 LED driver. The chip has a single wire UART input, 19200 baud, 8
// data bits, odd parity and one stop bit.
//
// The chip has no addressing, every write updates all the digits. Use
// segment.SevenSegmentTM1652 and segment.TM1652Opts with it.
//
// # Datasheet
//
// https://www.titanmec.com/uploads/files/TM1652.pdf
package tm1652

import (
	"fmt"
	"io"
	"math/bits"
	"strings"
	"sync"
	"time"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/display"
)

const (
	cmdPowerOn       byte = 0x01
	cmdSetDigits     byte = 0x08
	cmdSetBrightness byte = 0x18
	brightnessOnBit  byte = 0x10

	// MaxBrightness is the highest supported brightness level.
	MaxBrightness = 7
	// DefaultDelay is the pause after each command the chip needs to
	// process it.
	DefaultDelay = 4 * time.Millisecond

	packageName = "tm1652"
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

// Opts is the device configuration. A nil *Opts selects the defaults.
type Opts struct {
	// Delay after each write, DefaultDelay when zero.
	Delay time.Duration

	_ struct{}
}

// Dev is a TM1652 connected to a serial port.
type Dev struct {
	mu         sync.Mutex
	w          io.Writer
	delay      time.Duration
	columns    int
	rows       int
	brightness int
}

// New returns a TM1652 writing to w, usually a serial port opened with the
// chip's line settings. Init must be called before the display is used.
func New(w io.Writer, opts *Opts) *Dev {
	dev := &Dev{w: w, delay: DefaultDelay, brightness: 3}
	if opts != nil && opts.Delay > 0 {
		dev.delay = opts.Delay
	}
	return dev
}

// reverse4 reverses the order of the 4 low bits of v. The chip expects the
// brightness field LSB first.
func reverse4(v int) byte {
	return bits.Reverse8(byte(v)) >> 4
}

func (dev *Dev) send(w ...byte) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if _, err := dev.w.Write(w); err != nil {
		return wrap(err)
	}
	time.Sleep(dev.delay)
	return nil
}

// Init resets the chip, then turns it on at brightness 3. mode is unused.
func (dev *Dev) Init(columns, rows, mode int) error {
	if columns <= 0 {
		return wrap(segment.ConfigError("columns", columns))
	}
	if rows != 1 {
		return wrap(segment.ConfigError("rows", rows))
	}
	dev.columns = columns
	dev.rows = rows
	if err := dev.send(cmdPowerOn); err != nil {
		return err
	}
	if err := dev.SetShutdown(true); err != nil {
		return err
	}
	if err := dev.SetBrightness(MaxBrightness / 2); err != nil {
		return err
	}
	lg.Debugf("initialized %d digits", columns)
	return dev.SetShutdown(false)
}

// SetAll writes all the digits, codes[0] to the first grid.
func (dev *Dev) SetAll(codes []uint16) error {
	if dev.columns == 0 || len(codes) != dev.columns {
		return wrap(fmt.Errorf("expected %d codes, got %d", dev.columns, len(codes)))
	}
	w := make([]byte, 1, 1+len(codes))
	w[0] = cmdSetDigits
	for _, code := range codes {
		w = append(w, byte(code))
	}
	return dev.send(w...)
}

// SetChar is not available, the chip is always written as a whole.
func (dev *Dev) SetChar(code uint16, column, row int) error {
	return ErrNotImplemented
}

// Brightness returns the last brightness level set.
func (dev *Dev) Brightness() int {
	return dev.brightness
}

// SetBrightness turns the display on at level, 0 to 7.
func (dev *Dev) SetBrightness(level int) error {
	if level < 0 || level > MaxBrightness {
		return wrap(segment.ConfigError("brightness", level))
	}
	if err := dev.send(cmdSetBrightness, brightnessOnBit|reverse4(level)); err != nil {
		return err
	}
	dev.brightness = level
	return nil
}

// SetShutdown turns the display off when off is true, and back on at the
// last brightness level otherwise.
func (dev *Dev) SetShutdown(off bool) error {
	v := reverse4(dev.brightness)
	if !off {
		v |= brightnessOnBit
	}
	return dev.send(cmdSetBrightness, v)
}

// SetDisplayTest is not available for this device.
func (dev *Dev) SetDisplayTest(on bool) error {
	return ErrNotImplemented
}

// Columns returns the number of digits set by Init.
func (dev *Dev) Columns() int {
	return dev.columns
}

// Rows returns 1 once Init was called.
func (dev *Dev) Rows() int {
	return dev.rows
}

// Halt turns the display off.
func (dev *Dev) Halt() error {
	return dev.SetShutdown(true)
}

func (dev *Dev) String() string {
	return fmt.Sprintf("TM1652{digits: %d}", dev.columns)
}

var _ segment.Controller = &Dev{}
