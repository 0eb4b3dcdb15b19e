// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package vk16k33_test

import (
	"log"
	"time"

	"github.com/GermanBionicSystems/segdisplay/segment"
	"github.com/GermanBionicSystems/segdisplay/vk16k33"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Show words on a 4 character 14 segment backpack, then blink them.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := vk16k33.NewI2C(bus, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err = dev.Init(4, 1, 0); err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()
	_ = dev.SetBrightness(4)

	fam := segment.FourteenSegmentVK16K33(segment.English)
	d, err := segment.New(dev, fam, segment.VK16K33Opts())
	if err != nil {
		log.Fatal(err)
	}
	for _, word := range []string{"GO", "TEST", "3.14", "H.E.L.P."} {
		_ = d.Clear()
		_ = d.Show(word)
		time.Sleep(2 * time.Second)
	}
	_ = dev.SetBlink(vk16k33.Blink1Hz)
	time.Sleep(5 * time.Second)
	_ = dev.SetBlink(vk16k33.BlinkOff)
}
