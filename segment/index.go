// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import "fmt"

// Align positions text on displays that address every position on each
// write, regardless of the column offset.
type Align int

const (
	// AlignNone places the first glyph at the column offset.
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Indexes returns the physical positions to fill, in the order glyphs are
// read from left to right, starting at the logical column offset. count is
// the number of positions of the display.
//
// When reverse is false position 0 holds the leftmost glyph and the result
// is offset..count-1. When reverse is true the bus order is the opposite,
// and the result is count-offset-1 down to 0.
func Indexes(offset, count int, reverse bool) []int {
	if offset < 0 {
		offset = 0
	}
	if count <= 0 || offset >= count {
		return []int{}
	}
	result := make([]int, 0, count-offset)
	if reverse {
		for ix := count - offset - 1; ix >= 0; ix-- {
			result = append(result, ix)
		}
	} else {
		for ix := offset; ix < count; ix++ {
			result = append(result, ix)
		}
	}
	return result
}

// AlignedIndex returns the physical position of the glyph of 1-based rank in
// a text of glyphs glyphs, for displays whose highest position is the
// leftmost one. The result may fall outside [0, columns), which ends
// rendering.
//
// AlignNone is treated as AlignLeft.
func AlignedIndex(rank, glyphs, columns int, a Align) int {
	if glyphs > columns {
		glyphs = columns
	}
	switch a {
	case AlignRight:
		return glyphs - rank
	case AlignCenter:
		return columns - rank - (columns-glyphs)/2
	default:
		return columns - rank
	}
}
