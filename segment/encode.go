// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import (
	"fmt"
	"unicode"
)

// dpSegment is the name of the decimal point segment in every family.
const dpSegment = 'p'

// widthMask returns the mask of the valid bits of a raw code.
func widthMask(width int) uint16 {
	if width >= 16 {
		return 0xffff
	}
	return uint16(1)<<width - 1
}

// SegmentsToRaw ORs together the bits of the named segments. If inverse is
// true, the segments are driven low (common anode wiring) and the code is
// complemented within the family's width.
func SegmentsToRaw(segments string, fam Family, inverse bool) (uint16, error) {
	var code uint16
	for ix := 0; ix < len(segments); ix++ {
		bit, ok := fam.Bit(segments[ix])
		if !ok {
			return 0, fmt.Errorf("%w: segment %q is not part of %s", ErrInvalidConfiguration, segments[ix], fam.Name())
		}
		code |= 1 << bit
	}
	if inverse {
		code = ^code & widthMask(fam.Width())
	}
	return code, nil
}

// lookup returns the segments that draw r, or nonPrintable.
func lookup(r rune, fam Family, nonPrintable string) string {
	if s, ok := fam.Segments(r); ok {
		return s
	}
	if fam.FoldCase() && unicode.IsLetter(r) {
		other := unicode.ToUpper(r)
		if unicode.IsUpper(r) {
			other = unicode.ToLower(r)
		}
		if s, ok := fam.Segments(other); ok {
			return s
		}
	}
	return nonPrintable
}

// Encode returns the raw code of glyph g. Characters the family cannot draw
// are replaced by the segments in nonPrintable. The result only depends on
// the arguments.
func Encode(g Glyph, fam Family, nonPrintable string, inverse bool) (uint16, error) {
	segments := lookup(g.Char, fam, nonPrintable)
	if g.DP {
		segments += string(dpSegment)
	}
	return SegmentsToRaw(segments, fam, inverse)
}

// EncodeString parses the textual glyph s, as produced by Glyph.String, and
// encodes it.
func EncodeString(s string, fam Family, nonPrintable string, inverse bool) (uint16, error) {
	g, err := ParseGlyph(s)
	if err != nil {
		return 0, err
	}
	return Encode(g, fam, nonPrintable, inverse)
}
