// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tm1652_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/GermanBionicSystems/segdisplay/tm1652"
	"go.bug.st/serial"
)

// Show the time on a 4 digit tube clock module.
func Example() {
	port, err := serial.Open("/dev/ttyUSB0", &serial.Mode{
		BaudRate: 19200,
		DataBits: 8,
		Parity:   serial.OddParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()

	dev := tm1652.New(port, nil)
	if err = dev.Init(4, 1, 0); err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()
	d, err := segment.New(dev, segment.SevenSegmentTM1652, segment.TM1652Opts())
	if err != nil {
		log.Fatal(err)
	}
	for level := range tm1652.MaxBrightness + 1 {
		_ = dev.SetBrightness(level)
		_ = d.WriteInt(level)
		time.Sleep(500 * time.Millisecond)
	}
	for range 60 {
		t := time.Now()
		_ = d.Show(t.Format("15.04"))
		time.Sleep(time.Second)
	}
}
