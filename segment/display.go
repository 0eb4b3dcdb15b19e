// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/d2r2/go-logger"
)

var lg = logger.NewPackageLogger("segment", logger.InfoLevel)

// Opts holds the wiring dependent options of a Display. A nil *Opts selects
// the zero value: normal index order, full frame update, active high
// segments.
type Opts struct {
	// ReverseIndex is set when position 0 of the controller is the
	// rightmost position of the display.
	ReverseIndex bool
	// PartialUpdate writes each position with Controller.SetChar instead
	// of sending the whole frame.
	PartialUpdate bool
	// InverseLogic is set for displays whose segments light when driven
	// low, such as common anode displays on a shift register.
	InverseLogic bool
	// Align positions text on partial update displays whose highest
	// position is the leftmost one. The column offset is then ignored.
	Align Align
	// NonPrintable is the set of segments shown for characters the family
	// cannot draw. Empty selects the family default.
	NonPrintable string
	// Fill blanks the positions after the text instead of leaving their
	// previous content. Aligned displays ignore it.
	Fill bool

	_ struct{}
}

// MAX7219Opts returns the options of an 8 digit MAX7219 module, whose digit
// 0 is on the right.
func MAX7219Opts() *Opts {
	return &Opts{PartialUpdate: true, Align: AlignLeft}
}

// ShiftRegisterOpts returns the options of a common anode display driven by
// chained 74HC595. The last byte shifted out is the leftmost position.
func ShiftRegisterOpts() *Opts {
	return &Opts{InverseLogic: true, ReverseIndex: true}
}

// TM1652Opts returns the options of a TM1652 digital tube module.
func TM1652Opts() *Opts {
	return &Opts{Fill: true}
}

// VK16K33Opts returns the options of a VK16K33 or HT16K33 14 segment
// backpack.
func VK16K33Opts() *Opts {
	return &Opts{PartialUpdate: true}
}

// Props are the properties of a Display. They don't change after New.
type Props struct {
	Columns       int
	Rows          int
	ReverseIndex  bool
	PartialUpdate bool
	InverseLogic  bool
	Align         Align
	NonPrintable  string
	Fill          bool
}

// Display renders text on a segment display through a Controller.
//
// A Display is not safe for concurrent use.
type Display struct {
	ctrl  Controller
	fam   Family
	props Props
	blank uint16
	// frames holds the last code written to each position, one slice per
	// row.
	frames [][]uint16
}

// New returns a Display that draws with fam on the already initialized
// controller ctrl.
func New(ctrl Controller, fam Family, opts *Opts) (*Display, error) {
	if opts == nil {
		opts = &Opts{}
	}
	p := Props{
		Columns:       ctrl.Columns(),
		Rows:          ctrl.Rows(),
		ReverseIndex:  opts.ReverseIndex,
		PartialUpdate: opts.PartialUpdate,
		InverseLogic:  opts.InverseLogic,
		Align:         opts.Align,
		NonPrintable:  opts.NonPrintable,
		Fill:          opts.Fill,
	}
	if p.Columns <= 0 {
		return nil, ConfigError("columns", p.Columns)
	}
	if p.Rows <= 0 {
		return nil, ConfigError("rows", p.Rows)
	}
	if !p.PartialUpdate && p.Rows > 1 {
		return nil, fmt.Errorf("%w: full frame update supports a single row, got %d", ErrInvalidConfiguration, p.Rows)
	}
	if p.Align < AlignNone || p.Align > AlignRight {
		return nil, ConfigError("align", p.Align)
	}
	if p.NonPrintable == "" {
		p.NonPrintable = fam.NonPrintable()
	}
	if _, err := SegmentsToRaw(p.NonPrintable, fam, false); err != nil {
		return nil, err
	}
	blank, err := SegmentsToRaw("", fam, p.InverseLogic)
	if err != nil {
		return nil, err
	}
	d := &Display{ctrl: ctrl, fam: fam, props: p, blank: blank, frames: make([][]uint16, p.Rows)}
	for row := range d.frames {
		d.frames[row] = slices.Repeat([]uint16{blank}, p.Columns)
	}
	lg.Debugf("new %dx%d display, family %s, %+v", p.Columns, p.Rows, fam.Name(), p)
	return d, nil
}

// Props returns the properties of the display.
func (d *Display) Props() Props {
	return d.props
}

// Family returns the family used to encode glyphs.
func (d *Display) Family() Family {
	return d.fam
}

// Controller returns the controller the display writes to.
func (d *Display) Controller() Controller {
	return d.ctrl
}

// Encode returns the raw code of g as it is sent to this display.
func (d *Display) Encode(g Glyph) (uint16, error) {
	return Encode(g, d.fam, d.props.NonPrintable, d.props.InverseLogic)
}

// Frame returns a copy of the codes last written to row 0.
func (d *Display) Frame() []uint16 {
	return slices.Clone(d.frames[0])
}

// Show displays s starting at the leftmost position of the first row.
func (d *Display) Show(s string) error {
	return d.ShowAt(s, 0, 0)
}

// ShowAt displays s with its first glyph at column x of row y. Glyphs that
// don't fit are dropped without error.
//
// Partial update displays are written one position at a time. Other
// displays get the complete frame in a single Controller.SetAll call, and
// an error leaves the frame unchanged.
func (d *Display) ShowAt(s string, x, y int) error {
	if s == "" {
		return nil
	}
	count := 0
	if d.props.Align != AlignNone {
		count = GlyphCount(s)
	}
	return d.render(Merge(s), count, x, y)
}

// Clear blanks every position of the display.
func (d *Display) Clear() error {
	blanks := strings.Repeat(" ", d.props.Columns)
	for row := range d.props.Rows {
		if err := d.ShowAt(blanks, 0, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteInt displays value right justified on the first row.
func (d *Display) WriteInt(value int) error {
	return d.Show(fmt.Sprintf("%*d", d.props.Columns, value))
}

// Scroll moves s from right to left across the first row, one position
// every interval, until the last glyph has left the display. Text that fits
// is shown once without scrolling. interval must be positive.
func (d *Display) Scroll(ctx context.Context, s string, interval time.Duration) error {
	if interval <= 0 {
		return ConfigError("interval", interval)
	}
	glyphs := slices.Collect(Merge(s))
	cols := d.props.Columns
	if len(glyphs) <= cols {
		return d.Show(s)
	}
	blank := Glyph{Char: ' '}
	padded := slices.Concat(glyphs, slices.Repeat([]Glyph{blank}, cols))
	t := time.NewTicker(interval)
	defer t.Stop()
	for start := 0; start <= len(glyphs); start++ {
		window := padded[start : start+cols]
		if err := d.render(slices.Values(window), len(window), 0, 0); err != nil {
			return err
		}
		if start == len(glyphs) {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

// render writes glyphs to row y. count is the number of glyphs in the
// sequence, only needed by aligned displays.
func (d *Display) render(glyphs iter.Seq[Glyph], count, x, y int) error {
	if y < 0 || y >= d.props.Rows {
		lg.Debugf("row %d outside of display, nothing written", y)
		return nil
	}
	if d.props.PartialUpdate {
		if d.props.Align != AlignNone {
			return d.renderAligned(glyphs, count, y)
		}
		return d.renderPartial(glyphs, x, y)
	}
	return d.renderFrame(glyphs, x)
}

func (d *Display) renderAligned(glyphs iter.Seq[Glyph], count, y int) error {
	cols := d.props.Columns
	rank := 0
	for g := range glyphs {
		rank++
		index := AlignedIndex(rank, count, cols, d.props.Align)
		if index < 0 || index >= cols {
			lg.Debugf("glyph %d at position %d is off the display", rank, index)
			break
		}
		if err := d.setChar(g, index, y); err != nil {
			return err
		}
	}
	return nil
}

func (d *Display) renderPartial(glyphs iter.Seq[Glyph], x, y int) error {
	indexes := Indexes(x, d.props.Columns, d.props.ReverseIndex)
	n := 0
	for g := range glyphs {
		if n == len(indexes) {
			lg.Debugf("text truncated after %d glyphs", n)
			break
		}
		if err := d.setChar(g, indexes[n], y); err != nil {
			return err
		}
		n++
	}
	if d.props.Fill {
		for ; n < len(indexes); n++ {
			if err := d.setChar(Glyph{Char: ' '}, indexes[n], y); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Display) setChar(g Glyph, index, y int) error {
	code, err := d.Encode(g)
	if err != nil {
		return err
	}
	if err = d.ctrl.SetChar(code, index, y); err != nil {
		return err
	}
	d.frames[y][index] = code
	return nil
}

// renderFrame builds the complete frame of row 0 and commits it with one
// SetAll call.
func (d *Display) renderFrame(glyphs iter.Seq[Glyph], x int) error {
	indexes := Indexes(x, d.props.Columns, d.props.ReverseIndex)
	frame := slices.Clone(d.frames[0])
	n := 0
	for g := range glyphs {
		if n == len(indexes) {
			lg.Debugf("text truncated after %d glyphs", n)
			break
		}
		code, err := d.Encode(g)
		if err != nil {
			return err
		}
		frame[indexes[n]] = code
		n++
	}
	if d.props.Fill {
		for ; n < len(indexes); n++ {
			frame[indexes[n]] = d.blank
		}
	}
	if err := d.ctrl.SetAll(frame); err != nil {
		return err
	}
	d.frames[0] = frame
	return nil
}
