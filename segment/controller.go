// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

// Controller is the set of operations a segment display chip driver
// provides. Drivers return an error wrapping display.ErrNotImplemented for
// operations the chip does not have.
type Controller interface {
	// Init brings the hardware up. It must be called before any other
	// method. mode is chip specific, 0 selects the default behavior.
	Init(columns, rows, mode int) error
	// SetChar writes the raw code of one position. Only controllers that
	// support partial update implement it.
	SetChar(code uint16, column, row int) error
	// SetAll writes the raw codes of every position in one transaction.
	// len(codes) must equal Columns().
	SetAll(codes []uint16) error
	// SetBrightness sets the brightness of the whole display. The valid
	// range is chip specific.
	SetBrightness(level int) error
	// SetShutdown turns the display off when off is true, and back on
	// otherwise.
	SetShutdown(off bool) error
	// SetDisplayTest lights every segment while on is true.
	SetDisplayTest(on bool) error
	// Columns returns the number of positions per row set by Init.
	Columns() int
	// Rows returns the number of rows set by Init.
	Rows() int
}
