// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// The 74HC595 is a serial shift register. It converts a serial stream to a
// parallel output. Chained 74HC595 are a cheap way to drive a multi digit
// 7-segment display over SPI, one register per digit, with the chip select
// line wired to the storage register clock so the whole frame is latched at
// once.
//
// The chain has no addressing, so the display is always written as a
// complete frame. Use segment.SevenSegmentShiftRegister and
// segment.ShiftRegisterOpts with it.
//
// # Datasheet
//
// https://www.nexperia.com/product/74HC595D
//
// There's a nice tutorial on the device here:
//
// https://docs.arduino.cc/tutorials/communication/guide-to-shift-out/
package nxp74hc595

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/d2r2/go-logger"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi"
)

const (
	devName     = "74HC595"
	packageName = "nxp74hc595"
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

// Dev represents a chain of 74hc595 devices, one per display position.
type Dev struct {
	mu      sync.Mutex
	conn    spi.Conn
	columns int
	rows    int
	// value is the last frame shifted out. nil forces the next write to
	// happen, even if it's all zeros.
	value []byte
}

// New accepts an spi.Conn and returns a new 74HC595 chain. Init must be
// called before the display is used.
func New(conn spi.Conn) (*Dev, error) {
	return &Dev{conn: conn}, nil
}

// Init sets the number of registers in the chain. The chain is a single
// row, and mode is unused.
func (dev *Dev) Init(columns, rows, mode int) error {
	if columns <= 0 {
		return wrap(segment.ConfigError("columns", columns))
	}
	if rows != 1 {
		return wrap(segment.ConfigError("rows", rows))
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	dev.columns = columns
	dev.rows = rows
	dev.value = nil
	lg.Debugf("chain of %d registers", columns)
	return nil
}

// write does the low-level write to the device.
func (dev *Dev) write(w []byte) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.conn == nil {
		return wrap(fmt.Errorf("device halted"))
	}
	if slices.Equal(dev.value, w) {
		return nil
	}
	if err := dev.conn.Tx(w, nil); err != nil {
		return wrap(err)
	}
	dev.value = w
	return nil
}

// SetAll shifts out one byte per register in a single transaction.
// codes[0] is shifted first, so it ends in the last register of the chain.
func (dev *Dev) SetAll(codes []uint16) error {
	if dev.columns == 0 || len(codes) != dev.columns {
		return wrap(fmt.Errorf("expected %d codes, got %d", dev.columns, len(codes)))
	}
	w := make([]byte, len(codes))
	for ix, code := range codes {
		w[ix] = byte(code)
	}
	return dev.write(w)
}

// SetChar is not available, registers can't be addressed.
func (dev *Dev) SetChar(code uint16, column, row int) error {
	return ErrNotImplemented
}

// SetBrightness is not available for this device.
func (dev *Dev) SetBrightness(level int) error {
	return ErrNotImplemented
}

// SetShutdown is not available for this device. Output enable is usually
// tied to ground.
func (dev *Dev) SetShutdown(off bool) error {
	return ErrNotImplemented
}

// SetDisplayTest is not available for this device.
func (dev *Dev) SetDisplayTest(on bool) error {
	return ErrNotImplemented
}

// Columns returns the number of registers in the chain.
func (dev *Dev) Columns() int {
	return dev.columns
}

// Rows returns 1 once Init was called.
func (dev *Dev) Rows() int {
	return dev.rows
}

// Halt disables the device
func (dev *Dev) Halt() (err error) {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	dev.conn = nil
	return
}

func (dev *Dev) String() string {
	return fmt.Sprintf("%s[%d]", devName, dev.columns)
}

var _ segment.Controller = &Dev{}
