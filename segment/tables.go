// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segment

// The tables below hold segment names, not bits, so that one table serves
// every chip of a family regardless of how the segments are wired.

var sevenSegmentDigits = [10]string{
	"abcdef",
	"bc",
	"abged",
	"abgcd",
	"fgbc",
	"afgcd",
	"afgcde",
	"abc",
	"abcdefg",
	"abcdfg",
}

// Only characters that read unambiguously on seven segments are listed.
var sevenSegmentSymbols = map[rune]string{
	'A':  "abcefg",
	'b':  "cdefg",
	'C':  "adef",
	'c':  "deg",
	'd':  "bcdeg",
	'E':  "agdef",
	'F':  "aefg",
	'G':  "acdef",
	'H':  "bcefg",
	'h':  "cefg",
	'J':  "bcd",
	'L':  "def",
	'n':  "ceg",
	'o':  "cdeg",
	'r':  "eg",
	'P':  "abefg",
	't':  "defg",
	'U':  "bcdef",
	'u':  "cde",
	'y':  "bcdfg",
	'-':  "g",
	'.':  "p",
	'_':  "d",
	'=':  "gd",
	' ':  "",
	'|':  "ef",
	'[':  "defa",
	']':  "abcd",
	'\'': "b",
	'"':  "bf",
	'°':  "abgf",
}

var fourteenSegmentDigits = [10]string{
	"abcdefjm",
	"bcj",
	"ab2md",
	"abcd2",
	"f12bc",
	"af12cd",
	"acdef12",
	"ajm12",
	"abcdef12",
	"abcdf12",
}

var fourteenSegmentSymbols = map[rune]string{
	'.':  "p",
	' ':  "",
	'+':  "12il",
	'-':  "12",
	'_':  "d",
	'=':  "12d",
	'|':  "fe",
	'/':  "mj",
	'\\': "hk",
	'?':  "12abe",
	'[':  "adef",
	']':  "abcd",
	'(':  "jk",
	')':  "hm",
	'$':  "af12cdil",
	'%':  "mj1fh2cl",
	'^':  "fh",
	'*':  "12hijklm",
	'<':  "jk",
	'>':  "hm",
	'\'': "i",
	'"':  "fi",
	'°':  "ahj",
}

// Lower case letters are found through case folding.
var englishLetters = map[rune]string{
	'A': "abcef12",
	'B': "abcd2il",
	'C': "adef",
	'D': "abcdil",
	'E': "adef12",
	'F': "aef1",
	'G': "acdef2",
	'H': "bcef12",
	'I': "adil",
	'J': "bcde",
	'K': "ef1jk",
	'L': "def",
	'M': "bcefhj",
	'N': "bcefhk",
	'O': "abcdef",
	'P': "abef12",
	'Q': "abcdefk",
	'R': "abef12k",
	'S': "acdf12",
	'T': "ail",
	'U': "bcdef",
	'V': "efjm",
	'W': "bcefkm",
	'X': "hjkm",
	'Y': "hjl",
	'Z': "adjm",
}

var russianLetters = map[rune]string{
	'А': "abcef12",
	'Б': "acdef12",
	'В': "abcd2il",
	'Г': "aef",
	'Д': "bcd2jm",
	'Е': "adef12",
	'Ё': "adef12",
	'Ж': "hijklm",
	'З': "abcd2",
	'И': "bcefjm",
	'Й': "abcefjm",
	'К': "ef1jk",
	'Л': "abcm",
	'М': "bcefhj",
	'Н': "bcef12",
	'О': "abcdef",
	'П': "abcef",
	'Р': "abef12",
	'С': "adef",
	'Т': "ail",
	'У': "bcdf12",
	'Ф': "abf12il",
	'Х': "hjkm",
	'Ц': "bcdefl",
	'Ч': "bcf12",
	'Ш': "bcdefil",
	'Щ': "bcdefilk",
	'Ь': "cdef12",
	'Э': "abcd2",
	'Ю': "bcdefi1",
	'Я': "abcf12m",
}
