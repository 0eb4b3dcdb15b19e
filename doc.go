// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segdisplay is a container for segment display drivers.
//
// Package segment holds the text layout engine shared by every driver. The
// chip drivers are max7219, nxp74hc595, tm1652 and vk16k33, and segterm and
// segimage emulate a display on the terminal or in an image.
package segdisplay
