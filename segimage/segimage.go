// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segimage implements an off-screen segment display. Each update
// redraws an in-memory image that can be saved as a PNG, which makes it
// handy for documentation and for checking layouts without hardware.
package segimage

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/display"
)

const (
	// Size of one position in unscaled units.
	cellWidth  = 60
	cellHeight = 100
	// Height reserved under the positions for the caption.
	captionHeight = 30

	lineWidth = 6
	// Distance removed from both ends of a segment to separate it from
	// its neighbors.
	inset    = 3
	dpRadius = 4
)

type stroke struct {
	x1, y1, x2, y2 float64
}

// geometry holds the position of every segment a family may name, in
// unscaled units relative to the top left corner of a position. Families
// only draw the segments they have a bit for.
var geometry = map[byte]stroke{
	'a': {10, 10, 50, 10},
	'b': {50, 10, 50, 50},
	'c': {50, 50, 50, 90},
	'd': {10, 90, 50, 90},
	'e': {10, 50, 10, 90},
	'f': {10, 10, 10, 50},
	'g': {10, 50, 50, 50},
	'1': {10, 50, 30, 50},
	'2': {30, 50, 50, 50},
	'h': {10, 10, 30, 50},
	'i': {30, 10, 30, 50},
	'j': {50, 10, 30, 50},
	'm': {10, 90, 30, 50},
	'l': {30, 50, 30, 90},
	'k': {50, 90, 30, 50},
}

// Position of the decimal point.
const dpX, dpY = 56, 90

// Opts represents the options available for this display.
type Opts struct {
	// Family decodes the raw codes. Defaults to segment.SevenSegmentMAX7219.
	Family segment.Family
	// InverseLogic is set when a cleared bit lights the segment.
	InverseLogic bool
	// Scale multiplies every dimension. Defaults to 1, a position is then
	// 60x100 pixels.
	Scale float64
	// On, Off and Background are the colors of lit segments, unlit segments
	// and the space around them.
	On         color.Color
	Off        color.Color
	Background color.Color
	// Caption is drawn under the positions when not empty.
	Caption string
	// Sink, when set, receives the image after every update, for example
	// a graphic OLED that stands in for the segment display.
	Sink display.Drawer
	// ReverseColumns draws column 0 on the right, like a MAX7219 module
	// whose digit 0 is the rightmost one. Without it the image shows such a
	// display mirrored.
	ReverseColumns bool

	_ struct{}
}

const packageName = "segimage"

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// Dev is an in-memory segment display.
type Dev struct {
	fam      segment.Family
	inverse  bool
	reverse  bool
	scale    float64
	on       color.Color
	off      color.Color
	bg       color.Color
	caption  string
	face     font.Face
	sink     display.Drawer
	level    int
	shutdown bool
	test     bool

	columns int
	rows    int
	codes   [][]uint16
	dc      *gg.Context
}

// New returns an off-screen display. Init must be called before the display
// is used.
func New(opts *Opts) (*Dev, error) {
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	d := &Dev{
		fam:     o.Family,
		inverse: o.InverseLogic,
		reverse: o.ReverseColumns,
		scale:   o.Scale,
		on:      o.On,
		off:     o.Off,
		bg:      o.Background,
		caption: o.Caption,
		sink:    o.Sink,
		level:   15,
	}
	if d.fam == nil {
		d.fam = segment.SevenSegmentMAX7219
	}
	if d.scale <= 0 {
		d.scale = 1
	}
	if d.on == nil {
		d.on = color.NRGBA{R: 255, A: 255}
	}
	if d.off == nil {
		d.off = color.NRGBA{R: 48, A: 255}
	}
	if d.bg == nil {
		d.bg = color.Black
	}
	if d.caption != "" {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, wrap(err)
		}
		d.face = truetype.NewFace(f, &truetype.Options{Size: 16 * d.scale})
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("SegImage{%s, %dx%d}", d.fam.Name(), d.columns, d.rows)
}

// Init allocates the image and draws every position blank. mode is unused.
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
	h := rows * cellHeight
	if d.caption != "" {
		h += captionHeight
	}
	d.dc = gg.NewContext(int(float64(columns*cellWidth)*d.scale), int(float64(h)*d.scale))
	return d.redraw()
}

// SetChar changes one position and redraws the image.
func (d *Dev) SetChar(code uint16, column, row int) error {
	if row < 0 || row >= d.rows || column < 0 || column >= d.columns {
		return wrap(fmt.Errorf("position %d,%d outside of %dx%d", column, row, d.columns, d.rows))
	}
	d.codes[row][column] = code
	return d.redraw()
}

// SetAll replaces the first row and redraws the image.
func (d *Dev) SetAll(codes []uint16) error {
	if d.rows == 0 || len(codes) != d.columns {
		return wrap(fmt.Errorf("expected %d codes, got %d", d.columns, len(codes)))
	}
	copy(d.codes[0], codes)
	return d.redraw()
}

// SetBrightness dims lit segments, 0 to 15.
func (d *Dev) SetBrightness(level int) error {
	if level < 0 || level > 15 {
		return wrap(segment.ConfigError("brightness", level))
	}
	d.level = level
	return d.redraw()
}

// SetShutdown draws every segment unlit while off is true.
func (d *Dev) SetShutdown(off bool) error {
	d.shutdown = off
	return d.redraw()
}

// SetDisplayTest draws every segment lit while on is true.
func (d *Dev) SetDisplayTest(on bool) error {
	d.test = on
	return d.redraw()
}

// Columns returns the number of positions per row.
func (d *Dev) Columns() int {
	return d.columns
}

// Rows returns the number of rows.
func (d *Dev) Rows() int {
	return d.rows
}

// Image returns the current image. It is overwritten by later updates.
func (d *Dev) Image() image.Image {
	return d.dc.Image()
}

// EncodePNG writes the current image to w.
func (d *Dev) EncodePNG(w io.Writer) error {
	return d.dc.EncodePNG(w)
}

// SavePNG writes the current image to the file path.
func (d *Dev) SavePNG(path string) error {
	return d.dc.SavePNG(path)
}

// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) lit(code uint16, bit uint) bool {
	if d.test {
		return true
	}
	if d.shutdown {
		return false
	}
	return ((code>>bit)&1 == 1) != d.inverse
}

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

// shorten moves both ends of s toward each other by inset.
func shorten(s stroke) stroke {
	dx, dy := s.x2-s.x1, s.y2-s.y1
	l := math.Hypot(dx, dy)
	ux, uy := dx/l*inset, dy/l*inset
	return stroke{s.x1 + ux, s.y1 + uy, s.x2 - ux, s.y2 - uy}
}

// redraw paints the whole image and forwards it to the sink.
func (d *Dev) redraw() error {
	dc := d.dc
	dc.SetColor(d.bg)
	dc.Clear()
	dc.SetLineWidth(lineWidth * d.scale)
	dc.SetLineCapRound()
	on := d.dimmed()
	// Unlit segments first so lit ones are drawn over shared corners.
	for _, pass := range []bool{false, true} {
		c := d.off
		if pass {
			c = on
		}
		dc.SetColor(c)
		for row, codes := range d.codes {
			for col, code := range codes {
				if d.reverse {
					col = len(codes) - 1 - col
				}
				ox := float64(col * cellWidth)
				oy := float64(row * cellHeight)
				for seg, s := range geometry {
					bit, ok := d.fam.Bit(seg)
					if !ok || d.lit(code, bit) != pass {
						continue
					}
					s = shorten(s)
					dc.DrawLine((ox+s.x1)*d.scale, (oy+s.y1)*d.scale, (ox+s.x2)*d.scale, (oy+s.y2)*d.scale)
					dc.Stroke()
				}
				if bit, ok := d.fam.Bit('p'); ok && d.lit(code, bit) == pass {
					dc.DrawCircle((ox+dpX)*d.scale, (oy+dpY)*d.scale, dpRadius*d.scale)
					dc.Fill()
				}
			}
		}
	}
	if d.face != nil {
		dc.SetFontFace(d.face)
		dc.SetColor(d.on)
		w := float64(d.columns*cellWidth) * d.scale
		y := float64(d.rows*cellHeight+captionHeight/2) * d.scale
		dc.DrawStringAnchored(d.caption, w/2, y, 0.5, 0.5)
	}
	if d.sink == nil {
		return nil
	}
	if err := d.sink.Draw(d.sink.Bounds(), dc.Image(), image.Point{}); err != nil {
		return wrap(err)
	}
	return nil
}

var _ segment.Controller = &Dev{}
var _ fmt.Stringer = &Dev{}
