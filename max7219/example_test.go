// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/segdisplay/max7219"
	"github.com/GermanBionicSystems/segdisplay/segment"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Count from -128 to 127, then display a clock on an 8 digit module.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	s, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	dev, err := max7219.NewSPI(s)
	if err != nil {
		log.Fatal(err)
	}
	if err = dev.Init(8, 1, int(max7219.DecodeNone)); err != nil {
		log.Fatal(err)
	}

	_ = dev.SetDisplayTest(true)
	time.Sleep(time.Second * 1)
	_ = dev.SetDisplayTest(false)
	_ = dev.SetBrightness(1)

	d, err := segment.New(dev, segment.SevenSegmentMAX7219, segment.MAX7219Opts())
	if err != nil {
		log.Fatal(err)
	}
	for i := -128; i < 128; i++ {
		_ = d.WriteInt(i)
		time.Sleep(100 * time.Millisecond)
	}
	// Continuously display a clock
	for {
		t := time.Now()
		_ = d.Show(t.Format("15.04.05"))
		// Try to get the iteration exactly on time.
		dNext := time.Duration(1000-(t.UnixMilli()%1000)) * time.Millisecond
		time.Sleep(dNext)
	}
}
