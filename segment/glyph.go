// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// DecimalPoint is the character that attaches to the preceding character.
const DecimalPoint = '.'

// Glyph is one displayable unit: a character that occupies one position,
// with or without the decimal point of that position lit.
type Glyph struct {
	Char rune
	DP   bool
}

// ParseGlyph converts the textual form of a glyph ("A" or "A.") into a Glyph.
func ParseGlyph(s string) (Glyph, error) {
	var g Glyph
	n := utf8.RuneCountInString(s)
	if n == 0 || n > 2 {
		return g, fmt.Errorf("%w: %q has %d characters", ErrInvalidGlyph, s, n)
	}
	r, size := utf8.DecodeRuneInString(s)
	g.Char = r
	if n == 2 {
		if s[size:] != string(DecimalPoint) {
			return Glyph{}, fmt.Errorf("%w: %q second character must be '.'", ErrInvalidGlyph, s)
		}
		g.DP = true
	}
	return g, nil
}

// String returns the textual form of the glyph.
func (g Glyph) String() string {
	if g.DP {
		return string([]rune{g.Char, DecimalPoint})
	}
	return string(g.Char)
}

// Merge returns the glyphs of s in order. A '.' that follows a character
// other than '.' is merged into that character's glyph. A '.' at the start
// of s, or following another standalone '.', is a glyph of its own.
//
// The sequence is evaluated lazily and may be ranged over any number of
// times.
func Merge(s string) iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		var buf [2]rune
		count := 0
		for _, r := range s {
			buf[count] = r
			count++
			if count < 2 {
				continue
			}
			switch {
			case buf[0] == DecimalPoint:
				if !yield(Glyph{Char: DecimalPoint}) {
					return
				}
				buf[0] = buf[1]
				count = 1
			case buf[1] == DecimalPoint:
				if !yield(Glyph{Char: buf[0], DP: true}) {
					return
				}
				count = 0
			default:
				if !yield(Glyph{Char: buf[0]}) {
					return
				}
				buf[0] = buf[1]
				count = 1
			}
		}
		if count == 1 {
			yield(Glyph{Char: buf[0]})
		}
	}
}

// GlyphCount returns the number of glyphs Merge produces for s.
func GlyphCount(s string) int {
	n := 0
	for range Merge(s) {
		n++
	}
	return n
}
