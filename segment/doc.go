// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segment turns text into raw segment codes for 7 and 14 segment
// character displays, and lays those codes out on the display positions.
//
// A string is first split into glyphs by Merge. A glyph is one character,
// optionally followed by a decimal point which lights the DP segment of the
// same position instead of taking a position of its own. Each glyph is then
// encoded by a Family, which knows which segments form a character and which
// bit drives each segment on a given chip. Finally a Display maps the glyphs
// onto physical positions and hands the codes to a Controller, either one
// position at a time or as one complete frame.
//
// The chip drivers in this module (max7219, nxp74hc595, vk16k33, tm1652) and
// the emulators (segterm, segimage) all implement Controller.
//
// Segment names:
//
//	     --a--              --a--
//	    |     |            |\ | /|
//	   f|     |b          f| h i j |b
//	    |--g--|            |-1- -2-|
//	   e|     |c          e| m l k |c
//	    |     |            |/ | \|
//	     --d--  .p          --d--  .p
package segment
