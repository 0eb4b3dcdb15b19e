// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segterm implements a segment display emulator that outputs to the
// terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your super nice LED modules to come by
// mail. It implements segment.Controller and draws each position with the
// bit order of the segment.Family it is given, so the codes it receives are
// exactly the ones a real chip of that family would get.
package segterm

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	// W receives the output. Defaults to a colorable stdout.
	W io.Writer
	// Family decodes the raw codes. Defaults to segment.SevenSegmentMAX7219.
	Family segment.Family
	// InverseLogic is set when a cleared bit lights the segment.
	InverseLogic bool
	Palette      *ansi256.Palette
	// On, Off and Background are the colors of lit segments, unlit segments
	// and the space around them.
	On         color.Color
	Off        color.Color
	Background color.Color
	// ReverseColumns draws column 0 on the right, like a MAX7219 module
	// whose digit 0 is the rightmost one. Without it the emulator shows
	// such a display mirrored.
	ReverseColumns bool

	_ struct{}
}

const packageName = "segterm"

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// Cell layouts of one position. Each byte names the segment drawn in that
// cell, a space is background.
var (
	sevenSegmentArt = []string{
		" aaa  ",
		"f   b ",
		" ggg  ",
		"e   c ",
		" ddd p",
	}
	fourteenSegmentArt = []string{
		" aaaaa  ",
		"fh i jb ",
		"f hij b ",
		" 11 22  ",
		"e mlk c ",
		"em l kc ",
		" ddddd p",
	}
)

// Dev is a segment display emulator that outputs to the console.
type Dev struct {
	w        io.Writer
	fam      segment.Family
	inverse  bool
	reverse  bool
	palette  *ansi256.Palette
	art      []string
	on       color.Color
	off      color.Color
	bg       color.Color
	level    int
	shutdown bool
	test     bool

	columns int
	rows    int
	codes   [][]uint16
	painted bool
	buf     bytes.Buffer
}

// New returns a Dev that displays at the console. Init must be called before
// the display is used.
func New(opts *Opts) *Dev {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	d := &Dev{
		w:       o.W,
		fam:     o.Family,
		inverse: o.InverseLogic,
		reverse: o.ReverseColumns,
		palette: o.Palette,
		on:      o.On,
		off:     o.Off,
		bg:      o.Background,
		level:   15,
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
	}
	if d.fam == nil {
		d.fam = segment.SevenSegmentMAX7219
	}
	if d.palette == nil {
		d.palette = ansi256.Default
	}
	if d.on == nil {
		d.on = color.NRGBA{R: 255, A: 255}
	}
	if d.off == nil {
		d.off = color.NRGBA{R: 48, A: 255}
	}
	if d.bg == nil {
		d.bg = color.NRGBA{A: 255}
	}
	d.art = sevenSegmentArt
	if d.fam.Width() > 8 {
		d.art = fourteenSegmentArt
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("SegTerm{%s, %dx%d}", d.fam.Name(), d.columns, d.rows)
}

// Init allocates the positions and paints them blank. mode is unused.
func (d *Dev) Init(columns, rows, mode int) error {
	if columns <= 0 {
		return wrap(segment.ConfigError("columns", columns))
	}
	if rows <= 0 {
		return wrap(segment.ConfigError("rows", rows))
	}
	blank, err := segment.SegmentsToRaw("", d.fam, d.inverse)
	if err != nil {
		return wrap(err)
	}
	d.columns = columns
	d.rows = rows
	d.codes = make([][]uint16, rows)
	for row := range d.codes {
		d.codes[row] = make([]uint16, columns)
		for ix := range d.codes[row] {
			d.codes[row][ix] = blank
		}
	}
	d.painted = false
	return d.refresh()
}

// SetChar changes one position and repaints the display.
func (d *Dev) SetChar(code uint16, column, row int) error {
	if row < 0 || row >= d.rows || column < 0 || column >= d.columns {
		return wrap(fmt.Errorf("position %d,%d outside of %dx%d", column, row, d.columns, d.rows))
	}
	d.codes[row][column] = code
	return d.refresh()
}

// SetAll replaces the first row and repaints the display.
func (d *Dev) SetAll(codes []uint16) error {
	if d.rows == 0 || len(codes) != d.columns {
		return wrap(fmt.Errorf("expected %d codes, got %d", d.columns, len(codes)))
	}
	copy(d.codes[0], codes)
	return d.refresh()
}

// SetBrightness dims lit segments, 0 to 15.
func (d *Dev) SetBrightness(level int) error {
	if level < 0 || level > 15 {
		return wrap(segment.ConfigError("brightness", level))
	}
	d.level = level
	return d.refresh()
}

// SetShutdown paints every segment unlit while off is true.
func (d *Dev) SetShutdown(off bool) error {
	d.shutdown = off
	return d.refresh()
}

// SetDisplayTest paints every segment lit while on is true.
func (d *Dev) SetDisplayTest(on bool) error {
	d.test = on
	return d.refresh()
}

// Columns returns the number of positions per row.
func (d *Dev) Columns() int {
	return d.columns
}

// Rows returns the number of rows.
func (d *Dev) Rows() int {
	return d.rows
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so it is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	if err != nil {
		return err
	}
	return nil
}

// lit reports whether segment seg of code is lit.
func (d *Dev) lit(code uint16, seg byte) bool {
	if d.test {
		return true
	}
	if d.shutdown {
		return false
	}
	bit, ok := d.fam.Bit(seg)
	if !ok {
		return false
	}
	return ((code>>bit)&1 == 1) != d.inverse
}

// dimmed returns the on color scaled by the brightness level.
func (d *Dev) dimmed() color.Color {
	if d.test {
		return d.on
	}
	c := color.NRGBAModel.Convert(d.on).(color.NRGBA)
	scale := func(v uint8) uint8 {
		return uint8(int(v) * (d.level + 1) / 16)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	if d.painted {
		// Move back to the top left corner of the previous paint.
		fmt.Fprintf(&d.buf, "\r\033[%dA", d.rows*len(d.art))
	}
	on := d.palette.Block(d.dimmed())
	off := d.palette.Block(d.off)
	bg := d.palette.Block(d.bg)
	for _, codes := range d.codes {
		for _, line := range d.art {
			_, _ = d.buf.WriteString("\r\033[0m")
			for col := range codes {
				code := codes[col]
				if d.reverse {
					code = codes[len(codes)-1-col]
				}
				for ix := 0; ix < len(line); ix++ {
					switch {
					case line[ix] == ' ':
						_, _ = d.buf.WriteString(bg)
					case d.lit(code, line[ix]):
						_, _ = d.buf.WriteString(on)
					default:
						_, _ = d.buf.WriteString(off)
					}
				}
				_, _ = d.buf.WriteString(bg)
			}
			_, _ = d.buf.WriteString("\033[0m\n")
		}
	}
	d.painted = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ segment.Controller = &Dev{}
var _ fmt.Stringer = &Dev{}
