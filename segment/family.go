// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

import (
	"fmt"
	"strings"
)

// Family describes how characters are drawn on one kind of segment display
// and how its segments are wired to the bits of a raw code.
type Family interface {
	// Name identifies the family, usually by the chip that drives it.
	Name() string
	// Width is the number of bits in a raw code, 8 or 16.
	Width() int
	// Bit returns the bit position that drives segment seg.
	Bit(seg byte) (uint, bool)
	// Segments returns the names of the segments that draw r.
	Segments(r rune) (string, bool)
	// NonPrintable returns the segments shown for characters that have no
	// recognizable rendering.
	NonPrintable() string
	// FoldCase reports whether a letter missing from the tables is retried
	// in the opposite case before falling back to NonPrintable.
	FoldCase() bool
}

// Language selects the alphabet table of families that can draw letters of
// more than one language.
type Language int

const (
	English Language = iota
	Russian
)

func (l Language) String() string {
	switch l {
	case English:
		return "en"
	case Russian:
		return "ru"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// sevenSegment is a family of 7 segment displays. order holds the segment
// name driven by each bit, starting from bit 0.
type sevenSegment struct {
	name  string
	order string
}

var (
	// SevenSegmentMAX7219 is a 7 segment display driven in no-decode mode by
	// a MAX7219/MAX7221. Bit 0 is segment g, bit 6 is a and bit 7 is DP.
	SevenSegmentMAX7219 Family = &sevenSegment{name: "MAX7219", order: "gfedcbap"}
	// SevenSegmentShiftRegister is a 7 segment display whose segments are
	// wired to the outputs of a 74HC595 shift register, Q0 to segment a.
	SevenSegmentShiftRegister Family = &sevenSegment{name: "74HC595", order: "abcdefgp"}
	// SevenSegmentTM1652 is a 7 segment display driven by a TM1652, such as
	// the WeAct digital tube module.
	SevenSegmentTM1652 Family = &sevenSegment{name: "TM1652", order: "abcdefgp"}
)

func (f *sevenSegment) Name() string { return f.name }

func (f *sevenSegment) Width() int { return 8 }

func (f *sevenSegment) Bit(seg byte) (uint, bool) {
	ix := strings.IndexByte(f.order, seg)
	if ix < 0 {
		return 0, false
	}
	return uint(ix), true
}

func (f *sevenSegment) Segments(r rune) (string, bool) {
	if r >= '0' && r <= '9' {
		return sevenSegmentDigits[r-'0'], true
	}
	s, ok := sevenSegmentSymbols[r]
	return s, ok
}

func (f *sevenSegment) NonPrintable() string { return "adg" }

func (f *sevenSegment) FoldCase() bool { return false }

func (f *sevenSegment) String() string { return f.name }

// fourteenSegment is the 14 segment alphanumeric family. The two halves of
// the middle bar are named 1 and 2.
type fourteenSegment struct {
	name    string
	order   string
	lang    Language
	letters map[rune]string
}

// FourteenSegmentVK16K33 returns the family of 14 segment displays driven by
// a VK16K33 or HT16K33. Segments abcdef12 are the low byte of the raw code,
// hijmlk and the decimal point the high byte.
func FourteenSegmentVK16K33(lang Language) Family {
	f := &fourteenSegment{name: "VK16K33", order: "abcdef12hijmlkp", lang: lang}
	switch lang {
	case Russian:
		f.letters = russianLetters
	default:
		f.letters = englishLetters
	}
	return f
}

func (f *fourteenSegment) Name() string { return f.name }

func (f *fourteenSegment) Width() int { return 16 }

func (f *fourteenSegment) Bit(seg byte) (uint, bool) {
	ix := strings.IndexByte(f.order, seg)
	if ix < 0 {
		return 0, false
	}
	return uint(ix), true
}

func (f *fourteenSegment) Segments(r rune) (string, bool) {
	if r >= '0' && r <= '9' {
		return fourteenSegmentDigits[r-'0'], true
	}
	if s, ok := fourteenSegmentSymbols[r]; ok {
		return s, true
	}
	s, ok := f.letters[r]
	return s, ok
}

// NonPrintable lights the bottom bar and the three lower inner segments,
// raw code 0x3808.
func (f *fourteenSegment) NonPrintable() string { return "dklm" }

func (f *fourteenSegment) FoldCase() bool { return true }

func (f *fourteenSegment) String() string {
	return f.name + "/" + f.lang.String()
}
