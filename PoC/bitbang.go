//go:build rp2040

// Proof of concept: answer the console's probe with nothing but a GPIO and
// busy loops. Timing this way is marginal - a missed deadline mid-byte
// desyncs the whole exchange - which is why the real codec moved the bit
// clock into the PIO block. Kept around for bring-up on new board spins:
// if this answers a probe, the wiring and pull-up are good.
package main

import (
	"machine"
	"time"
)

const dataPin = machine.GPIO0

func main() {
	time.Sleep(2 * time.Second)
	release()
	println("Bit-bang probe responder on GPIO0")

	for {
		cmd := readByte()
		skipStopBit()

		if cmd != 0x00 && cmd != 0xFF {
			// Some longer command we cannot keep up with; let the rest
			// of the frame pass and listen again.
			spin(100 * time.Microsecond)
			continue
		}

		spin(4 * time.Microsecond)
		sendFrame(0x09, 0x00, 0x03)
	}
}

// readByte clocks in eight bits, sampling two microseconds after each
// falling edge.
func readByte() byte {
	var b byte
	for i := 0; i < 8; i++ {
		for dataPin.Get() {
		}
		spin(2 * time.Microsecond)
		b <<= 1
		if dataPin.Get() {
			b |= 1
		}
		for !dataPin.Get() {
		}
	}
	return b
}

// skipStopBit consumes the sender's stop bit, one more low pulse.
func skipStopBit() {
	for dataPin.Get() {
	}
	for !dataPin.Get() {
	}
}

// sendFrame drives the data bits and the stop bit, then releases the line.
func sendFrame(data ...byte) {
	dataPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dataPin.High()

	for _, b := range data {
		for i := 7; i >= 0; i-- {
			if b>>uint(i)&1 == 1 {
				pulse(1*time.Microsecond, 3*time.Microsecond)
			} else {
				pulse(3*time.Microsecond, 1*time.Microsecond)
			}
		}
	}
	pulse(1*time.Microsecond, 2*time.Microsecond)
	release()
}

func pulse(low, high time.Duration) {
	dataPin.Low()
	spin(low)
	dataPin.High()
	spin(high)
}

// release hands the line back to the console's pull-up.
func release() {
	dataPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
}

func spin(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}
