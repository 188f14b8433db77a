//go:build linux

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rpihal/hal"
	"rpihal/i2c"
)

var (
	delayMs = flag.Uint64("delay-ms", 100, "Delay to measure, in milliseconds")
	timerMs = flag.Uint64("timer-ms", 50, "Countdown deadline to poll, in milliseconds")
	i2cBus  = flag.Int("i2c-bus", -1, "I2C bus number to probe (-1 = skip)")
)

func main() {
	flag.Parse()

	fmt.Println("rpihal-probe - timing primitive check")

	// Measure blocking delay slack against the wall clock
	d := hal.NewDelay()
	before := time.Now()
	d.DelayMs(*delayMs)
	elapsed := time.Since(before)
	slack := elapsed - time.Duration(*delayMs)*time.Millisecond
	fmt.Printf("DelayMs(%d): slept %v (slack %v)\n", *delayMs, elapsed, slack)

	// Poll a countdown timer to completion
	t := hal.NewTimer()
	t.Start(hal.Millisecond(*timerMs))
	polls := 0
	for t.Wait() == hal.ErrWouldBlock {
		polls++
		d.DelayUs(500)
	}
	fmt.Printf("Timer(%dms): elapsed after %d polls\n", *timerMs, polls)

	if *i2cBus >= 0 {
		bus, err := i2c.New(uint8(*i2cBus))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer bus.Close()
		fmt.Printf("I2C bus %d opened\n", bus.Bus())
	}
}
